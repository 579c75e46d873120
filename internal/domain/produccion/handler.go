package produccion

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"finca-lechera/internal/domain/animales"
	"finca-lechera/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, uc *RegistrarProduccion, svc *Service, animalesRepo AnimalRepository, log logger.Logger) {
	r.Route("/animales/{animalID}/producciones", func(pr chi.Router) {
		pr.Post("/", registrarHandler(uc, log))
		pr.Get("/", listProduccionesHandler(svc, animalesRepo))
		pr.Get("/resumen", resumenHandler(svc, animalesRepo))
	})
}

// registrarRequest es el cuerpo para registrar un ordeñe.
type registrarRequest struct {
	Cantidad *float64 `json:"cantidad"`
	Fecha    string   `json:"fecha"` // RFC3339, opcional (default: ahora)
}

// produccionResponse representa un registro de producción devuelto por la API.
type produccionResponse struct {
	ID           string    `json:"id"`
	AnimalID     int64     `json:"animal_id"`
	Cantidad     float64   `json:"cantidad"`
	Fecha        time.Time `json:"fecha"`
	RegistradoEn time.Time `json:"registrado_en"`
}

type resumenResponse struct {
	AnimalID  int64      `json:"animal_id"`
	Registros int        `json:"registros"`
	Total     float64    `json:"total"`
	Promedio  float64    `json:"promedio"`
	Desde     *time.Time `json:"desde,omitempty"`
	Hasta     *time.Time `json:"hasta,omitempty"`
}

// registrarHandler godoc
// @Summary Registrar producción de leche
// @Description Registra un ordeñe para un animal existente. Si no se envía `fecha` se usa la hora actual del servidor.
// @Tags producciones
// @Accept json
// @Produce json
// @Param animalID path int true "ID del animal"
// @Param payload body registrarRequest true "cantidad en litros; fecha en RFC3339 (opcional)"
// @Success 201 {object} produccionResponse
// @Failure 400 {string} string "invalid json / cantidad inválida / fecha inválida"
// @Failure 404 {string} string "animal not found"
// @Failure 422 {string} string "produccion rechazada"
// @Failure 500 {string} string "internal error"
// @Router /animales/{animalID}/producciones [post]
func registrarHandler(uc *RegistrarProduccion, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		animalID, ok := animales.ParseID(chi.URLParam(r, "animalID"))
		if !ok {
			http.Error(w, "invalid animal id", http.StatusBadRequest)
			return
		}

		var req registrarRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if req.Cantidad == nil {
			http.Error(w, "cantidad is required", http.StatusBadRequest)
			return
		}

		in := RegistrarInput{AnimalID: animalID, Cantidad: *req.Cantidad}
		if v := strings.TrimSpace(req.Fecha); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				http.Error(w, "fecha must be RFC3339", http.StatusBadRequest)
				return
			}
			in.Fecha = &t
		}

		res, err := uc.Execute(r.Context(), in)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Error("registrar produccion failed", map[string]any{
				"animal_id": animalID,
				"estado":    res.Estado.String(),
				"err":       err.Error(),
			})
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		switch res.Estado {
		case EstadoRegistrada:
			writeJSON(w, http.StatusCreated, toProduccionResponse(res.Produccion))
		case EstadoAnimalNoEncontrado:
			http.Error(w, "animal not found", http.StatusNotFound)
		case EstadoRechazada:
			http.Error(w, "produccion rechazada", http.StatusUnprocessableEntity)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

// listProduccionesHandler godoc
// @Summary Listar producciones de un animal
// @Description Lista los registros de producción, más recientes primero.
// @Tags producciones
// @Produce json
// @Param animalID path int true "ID del animal"
// @Param limit query int false "Máximo de registros (1-200). Por defecto 50"
// @Param from query string false "Fecha mínima (RFC3339)"
// @Param to query string false "Fecha máxima (RFC3339)"
// @Success 200 {array} produccionResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 404 {string} string "animal not found"
// @Failure 500 {string} string "internal error"
// @Router /animales/{animalID}/producciones [get]
func listProduccionesHandler(svc *Service, animalesRepo AnimalRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		animalID, ok := requireAnimal(w, r, animalesRepo)
		if !ok {
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByAnimal(r.Context(), animalID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]produccionResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toProduccionResponse(p))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// resumenHandler godoc
// @Summary Resumen de producción
// @Description Total, cantidad de registros y promedio de litros en el rango indicado.
// @Tags producciones
// @Produce json
// @Param animalID path int true "ID del animal"
// @Param from query string false "Fecha mínima (RFC3339)"
// @Param to query string false "Fecha máxima (RFC3339)"
// @Success 200 {object} resumenResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 404 {string} string "animal not found"
// @Failure 500 {string} string "internal error"
// @Router /animales/{animalID}/producciones/resumen [get]
func resumenHandler(svc *Service, animalesRepo AnimalRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		animalID, ok := requireAnimal(w, r, animalesRepo)
		if !ok {
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		res, err := svc.Resumen(r.Context(), animalID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, resumenResponse{
			AnimalID:  res.AnimalID,
			Registros: res.Registros,
			Total:     res.Total,
			Promedio:  res.Promedio,
			Desde:     res.Desde,
			Hasta:     res.Hasta,
		})
	}
}

// requireAnimal escribe la respuesta de error y devuelve false si el animal no sirve.
func requireAnimal(w http.ResponseWriter, r *http.Request, animalesRepo AnimalRepository) (int64, bool) {
	animalID, ok := animales.ParseID(chi.URLParam(r, "animalID"))
	if !ok {
		http.Error(w, "invalid animal id", http.StatusBadRequest)
		return 0, false
	}

	_, found, err := animalesRepo.GetByID(r.Context(), animalID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return 0, false
	}
	if !found {
		http.Error(w, "animal not found", http.StatusNotFound)
		return 0, false
	}
	return animalID, true
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	filter := ListFilter{Limit: DefaultLimit}

	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= MaxLimit {
			filter.Limit = n
		}
	}

	if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return ListFilter{}, errors.New("from must be RFC3339")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return ListFilter{}, errors.New("to must be RFC3339")
		}
		filter.To = &t
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return ListFilter{}, errors.New("to must not be before from")
	}

	return filter, nil
}

func toProduccionResponse(p Produccion) produccionResponse {
	return produccionResponse{
		ID:           p.ID,
		AnimalID:     p.AnimalID,
		Cantidad:     p.Cantidad,
		Fecha:        p.Fecha,
		RegistradoEn: p.RegistradoEn,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
