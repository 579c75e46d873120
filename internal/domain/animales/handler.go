package animales

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animales", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalesHandler(svc))
		ar.Get("/{animalID}", getAnimalHandler(svc))
		ar.Patch("/{animalID}", updateAnimalHandler(svc))
	})
}

// createAnimalRequest es el cuerpo para registrar un animal en la finca.
type createAnimalRequest struct {
	Especie         string      `json:"especie"`
	Raza            string      `json:"raza"`
	FechaNacimiento string      `json:"fecha_nacimiento"` // YYYY-MM-DD
	Peso            float64     `json:"peso"`
	EstadoSalud     EstadoSalud `json:"estado_salud" enums:"sano,enfermo,en_tratamiento,en_observacion"`
}

type updateAnimalRequest struct {
	Peso        *float64     `json:"peso"`
	EstadoSalud *EstadoSalud `json:"estado_salud"`
}

// animalResponse representa un animal devuelto por la API.
type animalResponse struct {
	ID              int64       `json:"id"`
	Especie         string      `json:"especie"`
	Raza            string      `json:"raza"`
	FechaNacimiento string      `json:"fecha_nacimiento"`
	Peso            float64     `json:"peso"`
	EstadoSalud     EstadoSalud `json:"estado_salud"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// createAnimalHandler godoc
// @Summary Registrar animal
// @Description Registra un animal en la finca. estado_salud por defecto es `sano`.
// @Tags animales
// @Accept json
// @Produce json
// @Param payload body createAnimalRequest true "Datos del animal; fecha_nacimiento en formato YYYY-MM-DD"
// @Success 201 {object} animalResponse
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 500 {string} string "internal error"
// @Router /animales [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		fn, err := time.Parse("2006-01-02", strings.TrimSpace(req.FechaNacimiento))
		if err != nil {
			http.Error(w, "fecha_nacimiento must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Especie:         req.Especie,
			Raza:            req.Raza,
			FechaNacimiento: fn,
			Peso:            req.Peso,
			EstadoSalud:     req.EstadoSalud,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// listAnimalesHandler godoc
// @Summary Listar animales
// @Tags animales
// @Produce json
// @Success 200 {array} animalResponse
// @Failure 500 {string} string "internal error"
// @Router /animales [get]
func listAnimalesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Obtener animal
// @Tags animales
// @Produce json
// @Param animalID path int true "ID del animal"
// @Success 200 {object} animalResponse
// @Failure 400 {string} string "invalid animal id"
// @Failure 404 {string} string "animal not found"
// @Failure 500 {string} string "internal error"
// @Router /animales/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := ParseID(chi.URLParam(r, "animalID"))
		if !ok {
			http.Error(w, "invalid animal id", http.StatusBadRequest)
			return
		}

		a, found, err := svc.GetByID(r.Context(), id)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !found {
			http.Error(w, "animal not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// updateAnimalHandler godoc
// @Summary Actualizar peso / estado de salud
// @Description Actualiza parcialmente el animal. Campos ausentes no se tocan.
// @Tags animales
// @Accept json
// @Produce json
// @Param animalID path int true "ID del animal"
// @Param payload body updateAnimalRequest true "peso y/o estado_salud"
// @Success 200 {object} animalResponse
// @Failure 400 {string} string "invalid json / datos inválidos"
// @Failure 404 {string} string "animal not found"
// @Failure 500 {string} string "internal error"
// @Router /animales/{animalID} [patch]
func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := ParseID(chi.URLParam(r, "animalID"))
		if !ok {
			http.Error(w, "invalid animal id", http.StatusBadRequest)
			return
		}

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req updateAnimalRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.UpdateSalud(r.Context(), id, UpdateInput{
			Peso:        req.Peso,
			EstadoSalud: req.EstadoSalud,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "animal not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(updated))
	}
}

// ParseID interpreta el {animalID} de la URL. Solo acepta enteros positivos.
func ParseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:              a.ID,
		Especie:         a.Especie,
		Raza:            a.Raza,
		FechaNacimiento: a.FechaNacimiento.Format("2006-01-02"),
		Peso:            a.Peso,
		EstadoSalud:     a.EstadoSalud,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// writeJSON está duplicado en handlers de animales/produccion
// para no crear un paquete de helpers compartidos todavía.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
