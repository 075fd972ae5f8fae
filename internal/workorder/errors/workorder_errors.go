package errors

import (
	"net/http"

	"go-fieldops/internal/shared/apperror"
)

var (
	ErrWorkOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"work order not found",
		http.StatusNotFound,
	)

	ErrNumberAlreadyUsed = apperror.New(
		apperror.CodeConflict,
		"a work order with this number already exists",
		http.StatusConflict,
	)

	ErrUnknownStatus = apperror.New(
		apperror.CodeInvalidInput,
		"unknown work order status",
		http.StatusBadRequest,
	)

	ErrInvalidTransition = apperror.New(
		apperror.CodeConflict,
		"work order status transition not allowed",
		http.StatusConflict,
	)

	ErrMobileUnitNotFound = apperror.New(
		apperror.CodeNotFound,
		"mobile unit not found",
		http.StatusNotFound,
	)

	ErrOrderClosed = apperror.New(
		apperror.CodeConflict,
		"work order is completed or cancelled and can no longer change",
		http.StatusConflict,
	)
)
