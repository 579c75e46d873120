package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"finca-lechera/internal/domain/produccion"
)

type produccionRepo struct {
	mu   sync.RWMutex
	byID map[string]produccion.Produccion
}

func NewProduccionRepo() produccion.Repository {
	return &produccionRepo{
		byID: make(map[string]produccion.Produccion),
	}
}

// Add rechaza (false, nil) lo que una tabla con constraints rechazaría:
// id vacío o repetido y cantidad negativa.
func (r *produccionRepo) Add(ctx context.Context, p produccion.Produccion) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" || p.Cantidad < 0 {
		return false, nil
	}
	if _, exists := r.byID[p.ID]; exists {
		return false, nil
	}
	r.byID[p.ID] = p
	return true, nil
}

func (r *produccionRepo) ListByAnimal(ctx context.Context, animalID int64, filter produccion.ListFilter) ([]produccion.Produccion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]produccion.Produccion, 0)
	for _, p := range r.byID {
		if inRange(p, animalID, filter.From, filter.To) {
			out = append(out, p)
		}
	}

	// Más reciente primero; desempate por ID para orden estable.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Fecha.Equal(out[j].Fecha) {
			return out[i].ID < out[j].ID
		}
		return out[i].Fecha.After(out[j].Fecha)
	})

	if limit := filter.EffectiveLimit(); len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *produccionRepo) Resumen(ctx context.Context, animalID int64, from, to *time.Time) (produccion.Resumen, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := produccion.Resumen{AnimalID: animalID}
	var desde, hasta time.Time
	for _, p := range r.byID {
		if !inRange(p, animalID, from, to) {
			continue
		}
		if out.Registros == 0 || p.Fecha.Before(desde) {
			desde = p.Fecha
		}
		if out.Registros == 0 || p.Fecha.After(hasta) {
			hasta = p.Fecha
		}
		out.Registros++
		out.Total += p.Cantidad
	}

	if out.Registros > 0 {
		out.Desde = &desde
		out.Hasta = &hasta
	}
	return out, nil
}

// inRange: rango inclusivo sobre Fecha.
func inRange(p produccion.Produccion, animalID int64, from, to *time.Time) bool {
	if p.AnimalID != animalID {
		return false
	}
	if from != nil && p.Fecha.Before(*from) {
		return false
	}
	if to != nil && p.Fecha.After(*to) {
		return false
	}
	return true
}
