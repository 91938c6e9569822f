package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error code for foreign_key_violation
const pgFKViolation = "23503"

// isForeignKeyViolation reports whether err is a Postgres foreign key
// violation, e.g. a join row referencing a product that does not exist
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgFKViolation
}
