package leave

import (
	"errors"
	"net/http"
	"strings"

	leaveerrors "github.com/georgembugua00/manager-leave/internal/leave/errors"
	"github.com/georgembugua00/manager-leave/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError is the single translation point between the storage
// layer and the typed error taxonomy. Callers never see gorm or pgx errors.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == "23503":
			// foreign key violation: the employee reference is dangling
			return leaveerrors.ErrEmployeeNotFound
		case strings.HasPrefix(pgErr.Code, "08"):
			// class 08: connection exception
			return apperror.Wrap(err,
				apperror.CodeServiceUnavailable,
				"Storage is temporarily unavailable",
				http.StatusServiceUnavailable,
			)
		default:
			return apperror.Wrap(err,
				apperror.CodeInternalError,
				"An unexpected error occurred",
				http.StatusInternalServerError,
			)
		}
	}

	return apperror.Wrap(err,
		apperror.CodeServiceUnavailable,
		"Storage is temporarily unavailable",
		http.StatusServiceUnavailable,
	)
}
