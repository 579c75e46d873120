package produccion

import (
	"context"
	"time"

	"finca-lechera/internal/domain/animales"
)

// AnimalRepository es lo único que el caso de uso necesita de animales.
// Cualquier animales.Repository lo satisface.
type AnimalRepository interface {
	GetByID(ctx context.Context, id int64) (animales.Animal, bool, error)
}

// Repository persiste producciones.
// Add devuelve (false, nil) cuando el almacenamiento rechaza el registro
// y un error solo ante fallas de infraestructura.
type Repository interface {
	Add(ctx context.Context, p Produccion) (bool, error)
	ListByAnimal(ctx context.Context, animalID int64, filter ListFilter) ([]Produccion, error)
	// Resumen agrega todo el rango [from, to]; no aplica límite.
	Resumen(ctx context.Context, animalID int64, from, to *time.Time) (Resumen, error)
}

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type ListFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}

// EffectiveLimit normaliza Limit a [1, MaxLimit].
func (f ListFilter) EffectiveLimit() int {
	switch {
	case f.Limit <= 0:
		return DefaultLimit
	case f.Limit > MaxLimit:
		return MaxLimit
	default:
		return f.Limit
	}
}
