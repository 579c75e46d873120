package produccion

import "time"

// Produccion es un evento de producción de leche de un animal.
// Inmutable: una corrección se registra como un registro nuevo.
type Produccion struct {
	ID       string
	AnimalID int64

	Cantidad float64 // litros, >= 0

	Fecha        time.Time // cuándo ocurrió el ordeñe
	RegistradoEn time.Time
}

// Resumen agrega las producciones de un animal en un rango.
type Resumen struct {
	AnimalID  int64
	Registros int
	Total     float64
	Promedio  float64
	Desde     *time.Time // Fecha más antigua incluida
	Hasta     *time.Time // Fecha más reciente incluida
}
