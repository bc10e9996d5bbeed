package entitlementerrors

import (
	"net/http"

	"github.com/georgembugua00/manager-leave/internal/shared/apperror"
)

var (
	ErrEntitlementNotFound = apperror.New(
		apperror.CodeNotFound,
		"entitlement not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
)
