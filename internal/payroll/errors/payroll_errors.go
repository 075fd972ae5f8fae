package payrollerrors

import (
	"net/http"

	"go-fieldops/internal/shared/apperror"
)

var (
	ErrAccountNotFound = apperror.New(
		apperror.CodeNotFound,
		"No payroll account exists for this personnel record",
		http.StatusNotFound,
	)

	ErrAccountAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A payroll account already exists for this personnel record",
		http.StatusConflict,
	)

	ErrInvalidBaseSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Base salary must be a positive amount",
		http.StatusBadRequest,
	)

	ErrZeroAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Transaction amount must be a non-zero integer",
		http.StatusBadRequest,
	)

	ErrInvalidTransactionType = apperror.New(
		apperror.CodeInvalidInput,
		"Unrecognized transaction type",
		http.StatusBadRequest,
	)

	ErrInvalidTransactionDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid transaction date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrBankingInfoNotFound = apperror.New(
		apperror.CodeNotFound,
		"No banking info exists for this personnel record",
		http.StatusNotFound,
	)

	ErrBankingInfoAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Banking info already exists for this personnel record",
		http.StatusConflict,
	)

	ErrRutMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Holder RUT does not match the personnel RUT",
		http.StatusBadRequest,
	)

	ErrUnknownBank = apperror.New(
		apperror.CodeInvalidInput,
		"Unrecognized bank name",
		http.StatusBadRequest,
	)

	ErrInvalidAccountType = apperror.New(
		apperror.CodeInvalidInput,
		"Unrecognized bank account type",
		http.StatusBadRequest,
	)

	ErrInvalidAccountNumber = apperror.New(
		apperror.CodeInvalidInput,
		"Account number must contain digits only",
		http.StatusBadRequest,
	)

	// A transfer run with zero payable employees almost always means
	// upstream data is missing, so it is surfaced as a server-side
	// configuration problem instead of an empty success.
	ErrNoEligibleEmployees = apperror.New(
		apperror.CodeConfiguration,
		"No eligible employees found for bank transfer export",
		http.StatusInternalServerError,
	)
)
