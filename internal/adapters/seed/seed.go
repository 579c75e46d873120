// Package seed carga el rodeo inicial desde un archivo YAML (ANIMALES_SEED_FILE).
//
//	animales:
//	  - especie: Bovino
//	    raza: Holstein
//	    fecha_nacimiento: "2020-01-01"
//	    peso: 450
//	    estado_salud: sano
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"finca-lechera/internal/domain/animales"

	"gopkg.in/yaml.v3"
)

type file struct {
	Animales []animal `yaml:"animales"`
}

type animal struct {
	Especie         string  `yaml:"especie"`
	Raza            string  `yaml:"raza"`
	FechaNacimiento string  `yaml:"fecha_nacimiento"`
	Peso            float64 `yaml:"peso"`
	EstadoSalud     string  `yaml:"estado_salud"`
}

func LoadFile(path string) ([]animales.CreateInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodifica el YAML. Campos desconocidos son error para detectar typos.
// La validación de negocio queda en animales.Service.Create.
func Parse(r io.Reader) ([]animales.CreateInput, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc file
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	out := make([]animales.CreateInput, 0, len(doc.Animales))
	for i, a := range doc.Animales {
		fn, err := time.Parse("2006-01-02", strings.TrimSpace(a.FechaNacimiento))
		if err != nil {
			return nil, fmt.Errorf("animales[%d].fecha_nacimiento must be YYYY-MM-DD: %w", i, err)
		}
		out = append(out, animales.CreateInput{
			Especie:         a.Especie,
			Raza:            a.Raza,
			FechaNacimiento: fn,
			Peso:            a.Peso,
			EstadoSalud:     animales.EstadoSalud(strings.TrimSpace(a.EstadoSalud)),
		})
	}
	return out, nil
}
