package animales

import "time"

// EstadoSalud es el estado sanitario actual del animal.
// @Enum sano, enfermo, en_tratamiento, en_observacion
type EstadoSalud string

const (
	EstadoSano          EstadoSalud = "sano"
	EstadoEnfermo       EstadoSalud = "enfermo"
	EstadoEnTratamiento EstadoSalud = "en_tratamiento"
	EstadoEnObservacion EstadoSalud = "en_observacion"
)

func (e EstadoSalud) Valid() bool {
	switch e {
	case EstadoSano, EstadoEnfermo, EstadoEnTratamiento, EstadoEnObservacion:
		return true
	default:
		return false
	}
}

// Animal representa un animal registrado en la finca.
type Animal struct {
	ID int64 // asignado por el repositorio, inmutable

	Especie string // ej: "Bovino"
	Raza    string

	FechaNacimiento time.Time // solo fecha
	Peso            float64   // kg, >= 0
	EstadoSalud     EstadoSalud

	CreatedAt time.Time
	UpdatedAt time.Time
}
