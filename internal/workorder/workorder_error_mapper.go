package workorder

import (
	"errors"
	"strings"

	workordererrors "go-fieldops/internal/workorder/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return workordererrors.ErrWorkOrderNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_work_orders_number" {
			return workordererrors.ErrNumberAlreadyUsed
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_work_orders_number") {
		return workordererrors.ErrNumberAlreadyUsed
	}

	return err
}
