package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"finca-lechera/internal/domain/animales"
)

type animalRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]animales.Animal
}

func NewAnimalRepo() animales.Repository {
	return &animalRepo{
		byID: make(map[int64]animales.Animal),
	}
}

// Create asigna el siguiente ID de la secuencia (como un BIGSERIAL).
func (r *animalRepo) Create(ctx context.Context, a animales.Animal) (animales.Animal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.ID != 0 {
		return animales.Animal{}, errors.New("animal id is assigned by the repository")
	}
	r.nextID++
	a.ID = r.nextID
	r.byID[a.ID] = a
	return a, nil
}

func (r *animalRepo) Update(ctx context.Context, a animales.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return animales.ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *animalRepo) GetByID(ctx context.Context, id int64) (animales.Animal, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	return a, ok, nil
}

func (r *animalRepo) List(ctx context.Context) ([]animales.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animales.Animal, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}
