// internal/repository/repository.go
package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/verifield/credplane/internal/domain"
)

// uniqueViolation is the postgres error code raised when an insert breaks a
// unique constraint. Repositories translate it into the domain error that the
// violated constraint protects, so the race-window between a service's
// duplicate check and its insert is closed by the database, not by luck.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// storageErr wraps unexpected database failures so callers classify them as
// STORAGE_ERROR without seeing driver internals.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStorage, err)
}
