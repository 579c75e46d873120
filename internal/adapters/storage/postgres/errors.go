package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
)

// isRejection indica que Postgres rechazó la fila por una constraint
// (el registro está mal formado para el estado actual), no que la base falló.
func isRejection(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch pgErr.Code {
	case codeForeignKeyViolation, codeUniqueViolation, codeCheckViolation:
		return true
	default:
		return false
	}
}
