package employeeerrors

import (
	"net/http"

	"github.com/georgembugua00/manager-leave/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrEmployeeNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"employee name is required",
		http.StatusBadRequest,
	)
)
