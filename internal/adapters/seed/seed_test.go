package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"finca-lechera/internal/domain/animales"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rodeo = `
animales:
  - especie: Bovino
    raza: Holstein
    fecha_nacimiento: "2020-01-01"
    peso: 450.0
    estado_salud: sano
  - especie: Bovino
    raza: Jersey
    fecha_nacimiento: "2021-06-15"
    peso: 380
`

func TestParse(t *testing.T) {
	items, err := Parse(strings.NewReader(rodeo))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Bovino", items[0].Especie)
	assert.Equal(t, "Holstein", items[0].Raza)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), items[0].FechaNacimiento)
	assert.Equal(t, 450.0, items[0].Peso)
	assert.Equal(t, animales.EstadoSano, items[0].EstadoSalud)
	assert.Equal(t, animales.EstadoSalud(""), items[1].EstadoSalud)
}

func TestParse_Empty(t *testing.T) {
	items, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(strings.NewReader("animales:\n  - especie: Bovino\n    fecha_nacimiento: 01/01/2020\n"))
	assert.ErrorContains(t, err, "animales[0].fecha_nacimiento")

	_, err = Parse(strings.NewReader("animales:\n  - especie: Bovino\n    colour: black\n"))
	assert.Error(t, err, "unknown fields must be rejected")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rodeo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(rodeo), 0o600))

	items, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
