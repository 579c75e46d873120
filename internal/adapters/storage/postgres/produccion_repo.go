package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"finca-lechera/internal/domain/produccion"
)

type ProduccionRepo struct {
	db *sql.DB
}

func NewProduccionRepo(db *sql.DB) *ProduccionRepo {
	return &ProduccionRepo{db: db}
}

// Add: violaciones de FK/unique/check => (false, nil). Cualquier otro error es falla de infraestructura.
func (r *ProduccionRepo) Add(ctx context.Context, p produccion.Produccion) (bool, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO producciones (
			id, animal_id,
			cantidad, fecha, registrado_en
		) VALUES ($1,$2,$3,$4,$5)
	`,
		p.ID,
		p.AnimalID,
		p.Cantidad,
		p.Fecha,
		p.RegistradoEn,
	)
	if err != nil {
		if isRejection(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *ProduccionRepo) ListByAnimal(ctx context.Context, animalID int64, filter produccion.ListFilter) ([]produccion.Produccion, error) {
	query, args := buildListQuery(animalID, filter)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]produccion.Produccion, 0)
	for rows.Next() {
		var p produccion.Produccion
		if err := rows.Scan(
			&p.ID,
			&p.AnimalID,
			&p.Cantidad,
			&p.Fecha,
			&p.RegistradoEn,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProduccionRepo) Resumen(ctx context.Context, animalID int64, from, to *time.Time) (produccion.Resumen, error) {
	query, args := buildResumenQuery(animalID, from, to)

	var (
		out          = produccion.Resumen{AnimalID: animalID}
		desde, hasta sql.NullTime
	)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&out.Registros,
		&out.Total,
		&desde,
		&hasta,
	); err != nil {
		return produccion.Resumen{}, err
	}

	if desde.Valid {
		out.Desde = &desde.Time
	}
	if hasta.Valid {
		out.Hasta = &hasta.Time
	}
	return out, nil
}

func buildListQuery(animalID int64, filter produccion.ListFilter) (string, []any) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT
			id, animal_id,
			cantidad, fecha, registrado_en
		FROM producciones`)

	where, args := buildWhere(animalID, filter.From, filter.To)
	sb.WriteString(where)

	sb.WriteString(" ORDER BY fecha DESC, id ASC")
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)+1))
	args = append(args, filter.EffectiveLimit())

	return sb.String(), args
}

func buildResumenQuery(animalID int64, from, to *time.Time) (string, []any) {
	where, args := buildWhere(animalID, from, to)
	return `
		SELECT
			COUNT(*), COALESCE(SUM(cantidad), 0)::double precision,
			MIN(fecha), MAX(fecha)
		FROM producciones` + where, args
}

// buildWhere arma el filtro común a listado y resumen. Rango inclusivo.
func buildWhere(animalID int64, from, to *time.Time) (string, []any) {
	sb := strings.Builder{}
	sb.WriteString(" WHERE animal_id = $1")

	args := []any{animalID}
	argN := 2

	if from != nil {
		sb.WriteString(fmt.Sprintf(" AND fecha >= $%d", argN))
		args = append(args, *from)
		argN++
	}
	if to != nil {
		sb.WriteString(fmt.Sprintf(" AND fecha <= $%d", argN))
		args = append(args, *to)
	}

	return sb.String(), args
}
