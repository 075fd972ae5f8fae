package errors

import (
	"net/http"

	"go-fieldops/internal/shared/apperror"
)

var (
	ErrDriverNotFound = apperror.New(
		apperror.CodeNotFound,
		"driver not found",
		http.StatusNotFound,
	)

	ErrInvalidDriverRut = apperror.New(
		apperror.CodeInvalidInput,
		"driver RUT is not valid",
		http.StatusBadRequest,
	)

	ErrDriverRutAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"a driver with this RUT is already registered",
		http.StatusConflict,
	)

	ErrDriverInactive = apperror.New(
		apperror.CodeInvalidInput,
		"driver is inactive and cannot be assigned",
		http.StatusBadRequest,
	)

	ErrDriverAlreadyAssigned = apperror.New(
		apperror.CodeConflict,
		"driver is already assigned to another mobile unit",
		http.StatusConflict,
	)

	ErrMobileUnitNotFound = apperror.New(
		apperror.CodeNotFound,
		"mobile unit not found",
		http.StatusNotFound,
	)

	ErrCodeAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"a mobile unit with this code already exists",
		http.StatusConflict,
	)

	ErrPlateAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"a mobile unit with this plate already exists",
		http.StatusConflict,
	)
)
