package personnelerrors

import (
	"net/http"

	"go-fieldops/internal/shared/apperror"
)

var (
	ErrPersonnelNotFound = apperror.New(
		apperror.CodeNotFound,
		"Personnel record not found",
		http.StatusNotFound,
	)

	ErrRutAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"A personnel record with this RUT already exists",
		http.StatusConflict,
	)

	ErrInvalidRut = apperror.New(
		apperror.CodeInvalidInput,
		"The provided RUT is not valid",
		http.StatusBadRequest,
	)

	ErrDriverNotFound = apperror.New(
		apperror.CodeNotFound,
		"Driver record not found",
		http.StatusNotFound,
	)

	ErrDriverAlreadyLinked = apperror.New(
		apperror.CodeConflict,
		"This driver is already linked to a personnel record",
		http.StatusConflict,
	)
)
