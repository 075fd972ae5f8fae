package payroll

import (
	"errors"
	"strings"

	payrollerrors "go-fieldops/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError surfaces the unique constraints as domain conflicts.
// The one-account-per-personnel rule lives in the database; the loser of a
// concurrent create observes a Conflict here, never a second row.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_payroll_accounts_personnel":
			return payrollerrors.ErrAccountAlreadyExists
		case "uq_banking_infos_personnel":
			return payrollerrors.ErrBankingInfoAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		if strings.Contains(errMsg, "uq_payroll_accounts_personnel") {
			return payrollerrors.ErrAccountAlreadyExists
		}
		if strings.Contains(errMsg, "uq_banking_infos_personnel") {
			return payrollerrors.ErrBankingInfoAlreadyExists
		}
	}

	return err
}
