package postgres

import (
	"context"
	"database/sql"
	"errors"

	"finca-lechera/internal/domain/animales"
)

type AnimalesRepo struct {
	db *sql.DB
}

func NewAnimalesRepo(db *sql.DB) *AnimalesRepo {
	return &AnimalesRepo{db: db}
}

const animalColumns = `
	id,
	especie, raza,
	fecha_nacimiento, peso, estado_salud,
	created_at, updated_at
`

func (r *AnimalesRepo) Create(ctx context.Context, a animales.Animal) (animales.Animal, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO animales (
			especie, raza,
			fecha_nacimiento, peso, estado_salud,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`,
		a.Especie,
		a.Raza,
		a.FechaNacimiento,
		a.Peso,
		string(a.EstadoSalud),
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err := row.Scan(&a.ID); err != nil {
		return animales.Animal{}, err
	}
	return a, nil
}

func (r *AnimalesRepo) Update(ctx context.Context, a animales.Animal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animales
		SET
			peso = $2,
			estado_salud = $3,
			updated_at = $4
		WHERE id = $1
	`,
		a.ID,
		a.Peso,
		string(a.EstadoSalud),
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animales.ErrNotFound
	}
	return nil
}

func (r *AnimalesRepo) GetByID(ctx context.Context, id int64) (animales.Animal, bool, error) {
	if id <= 0 {
		return animales.Animal{}, false, nil
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+animalColumns+` FROM animales WHERE id = $1`, id)

	a, err := scanAnimal(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return animales.Animal{}, false, nil
		}
		return animales.Animal{}, false, err
	}
	return a, true, nil
}

func (r *AnimalesRepo) List(ctx context.Context) ([]animales.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+animalColumns+` FROM animales ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animales.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnimal(s scanner) (animales.Animal, error) {
	var a animales.Animal
	var estado string
	if err := s.Scan(
		&a.ID,
		&a.Especie,
		&a.Raza,
		&a.FechaNacimiento, // date: pgx lo mapea a time.Time medianoche UTC
		&a.Peso,
		&estado,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return animales.Animal{}, err
	}
	a.EstadoSalud = animales.EstadoSalud(estado)
	return a, nil
}
