package employee

import (
	"errors"
	"net/http"
	"strings"

	employeeerrors "github.com/georgembugua00/manager-leave/internal/employee/errors"
	"github.com/georgembugua00/manager-leave/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError normalizes storage failures at one translation point
// so callers see NOT_FOUND or SERVICE_UNAVAILABLE instead of driver errors.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && !strings.HasPrefix(pgErr.Code, "08") {
		// a postgres error that is not a connection failure is a bug on
		// our side, not an outage
		return apperror.Wrap(err,
			apperror.CodeInternalError,
			"An unexpected error occurred",
			http.StatusInternalServerError,
		)
	}

	return apperror.Wrap(err,
		apperror.CodeServiceUnavailable,
		"Storage is temporarily unavailable",
		http.StatusServiceUnavailable,
	)
}
