package produccion

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Estado es el desenlace de RegistrarProduccion.Execute.
type Estado int

const (
	EstadoRegistrada Estado = iota + 1
	EstadoAnimalNoEncontrado
	EstadoRechazada
	EstadoFalloInfraestructura
)

func (e Estado) String() string {
	switch e {
	case EstadoRegistrada:
		return "registrada"
	case EstadoAnimalNoEncontrado:
		return "animal_no_encontrado"
	case EstadoRechazada:
		return "rechazada"
	case EstadoFalloInfraestructura:
		return "fallo_infraestructura"
	default:
		return "desconocido"
	}
}

// Resultado distingue por qué falló un registro.
// Produccion solo viene cargada cuando Estado == EstadoRegistrada.
type Resultado struct {
	Estado     Estado
	Produccion Produccion
}

// OK es el contrato booleano original: true solo si quedó persistido.
func (r Resultado) OK() bool {
	return r.Estado == EstadoRegistrada
}

type RegistrarInput struct {
	AnimalID int64
	Cantidad float64    // litros
	Fecha    *time.Time // nil => ahora
}

// RegistrarProduccion registra la producción de leche de un animal existente.
// Es el único lugar que garantiza que AnimalID referencia un animal real;
// los repositorios no saben nada uno del otro.
type RegistrarProduccion struct {
	animales     AnimalRepository
	producciones Repository
	now          func() time.Time
	newID        func() string
}

// NewRegistrarProduccion arma el caso de uso. now == nil usa time.Now.
func NewRegistrarProduccion(animales AnimalRepository, producciones Repository, now func() time.Time) *RegistrarProduccion {
	if now == nil {
		now = time.Now
	}
	return &RegistrarProduccion{
		animales:     animales,
		producciones: producciones,
		now:          now,
		newID:        uuid.NewString,
	}
}

func (uc *RegistrarProduccion) Execute(ctx context.Context, in RegistrarInput) (Resultado, error) {
	if in.Cantidad < 0 || math.IsNaN(in.Cantidad) || math.IsInf(in.Cantidad, 0) {
		return Resultado{}, ErrInvalidInput
	}

	_, found, err := uc.animales.GetByID(ctx, in.AnimalID)
	if err != nil {
		return Resultado{Estado: EstadoFalloInfraestructura}, fmt.Errorf("lookup animal %d: %w", in.AnimalID, err)
	}
	if !found {
		return Resultado{Estado: EstadoAnimalNoEncontrado}, nil
	}

	// Un "ahora" por invocación, nunca memorizado.
	now := uc.now()
	fecha := now
	if in.Fecha != nil {
		fecha = *in.Fecha
	}

	p := Produccion{
		ID:           uc.newID(),
		AnimalID:     in.AnimalID,
		Cantidad:     in.Cantidad,
		Fecha:        fecha,
		RegistradoEn: now,
	}

	ok, err := uc.producciones.Add(ctx, p)
	if err != nil {
		return Resultado{Estado: EstadoFalloInfraestructura}, fmt.Errorf("add produccion: %w", err)
	}
	if !ok {
		return Resultado{Estado: EstadoRechazada}, nil
	}
	return Resultado{Estado: EstadoRegistrada, Produccion: p}, nil
}
