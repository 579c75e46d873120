package animales

import "context"

// Repository persiste animales.
// GetByID devuelve found=false (sin error) cuando el animal no existe;
// el error queda reservado para fallas de infraestructura.
type Repository interface {
	Create(ctx context.Context, a Animal) (Animal, error)
	Update(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id int64) (Animal, bool, error)
	List(ctx context.Context) ([]Animal, error)
}
