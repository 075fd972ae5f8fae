package errors

import (
	"net/http"

	"go-fieldops/internal/shared/apperror"
)

var (
	ErrItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"item not found",
		http.StatusNotFound,
	)

	ErrSkuAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"an item with this SKU already exists",
		http.StatusConflict,
	)

	ErrInvalidQuantity = apperror.New(
		apperror.CodeInvalidInput,
		"quantity must be a positive integer",
		http.StatusBadRequest,
	)

	ErrInvalidStock = apperror.New(
		apperror.CodeInvalidInput,
		"stock must not be negative",
		http.StatusBadRequest,
	)

	ErrInsufficientStock = apperror.New(
		apperror.CodeConflict,
		"not enough stock to consume the requested quantity",
		http.StatusConflict,
	)

	ErrWorkOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"work order not found",
		http.StatusNotFound,
	)
)
