package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// constraintCode devuelve el SQLSTATE si err es una violación de restricción
// de integridad (clase 23: foreign_key_violation 23503, unique_violation 23505).
func constraintCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "23") {
		return pgErr.Code, true
	}
	return "", false
}
