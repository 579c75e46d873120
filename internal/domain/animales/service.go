package animales

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("animal not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Especie         string
	Raza            string
	FechaNacimiento time.Time
	Peso            float64
	EstadoSalud     EstadoSalud // vacío => sano
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	especie := strings.TrimSpace(in.Especie)
	if especie == "" {
		return Animal{}, ErrInvalidInput
	}
	if !validPeso(in.Peso) {
		return Animal{}, ErrInvalidInput
	}

	now := s.now()
	if in.FechaNacimiento.IsZero() || in.FechaNacimiento.After(now) {
		return Animal{}, ErrInvalidInput
	}

	estado := EstadoSalud(strings.TrimSpace(string(in.EstadoSalud)))
	if estado == "" {
		estado = EstadoSano
	}
	if !estado.Valid() {
		return Animal{}, ErrInvalidInput
	}

	a := Animal{
		Especie:         especie,
		Raza:            strings.TrimSpace(in.Raza),
		FechaNacimiento: dateOnly(in.FechaNacimiento),
		Peso:            in.Peso,
		EstadoSalud:     estado,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return Animal{}, fmt.Errorf("create animal: %w", err)
	}
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Animal, bool, error) {
	if id <= 0 {
		return Animal{}, false, nil
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	return s.repo.List(ctx)
}

// UpdateInput usa punteros para PATCH real: nil = no tocar.
type UpdateInput struct {
	Peso        *float64
	EstadoSalud *EstadoSalud
}

// UpdateSalud actualiza peso y/o estado de salud. Es el único camino de mutación del animal.
func (s *Service) UpdateSalud(ctx context.Context, id int64, in UpdateInput) (Animal, error) {
	if in.Peso != nil && !validPeso(*in.Peso) {
		return Animal{}, ErrInvalidInput
	}
	if in.EstadoSalud != nil && !in.EstadoSalud.Valid() {
		return Animal{}, ErrInvalidInput
	}

	current, found, err := s.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}
	if !found {
		return Animal{}, ErrNotFound
	}

	if in.Peso == nil && in.EstadoSalud == nil {
		return current, nil
	}

	if in.Peso != nil {
		current.Peso = *in.Peso
	}
	if in.EstadoSalud != nil {
		current.EstadoSalud = *in.EstadoSalud
	}
	current.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, current); err != nil {
		return Animal{}, err
	}
	return current, nil
}

func validPeso(p float64) bool {
	return p >= 0 && !math.IsNaN(p) && !math.IsInf(p, 0)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
