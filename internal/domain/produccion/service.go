package produccion

import "context"

// Service cubre las lecturas; el alta pasa por RegistrarProduccion.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByAnimal(ctx context.Context, animalID int64, filter ListFilter) ([]Produccion, error) {
	return s.repo.ListByAnimal(ctx, animalID, filter)
}

// Resumen totaliza las producciones del rango. filter.Limit no aplica.
func (s *Service) Resumen(ctx context.Context, animalID int64, filter ListFilter) (Resumen, error) {
	out, err := s.repo.Resumen(ctx, animalID, filter.From, filter.To)
	if err != nil {
		return Resumen{}, err
	}
	out.AnimalID = animalID
	if out.Registros > 0 {
		out.Promedio = out.Total / float64(out.Registros)
	}
	return out, nil
}
