package fleet

import (
	"errors"
	"strings"

	fleeterrors "go-fieldops/internal/fleet/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var uniqueViolations = map[string]error{
	"uq_drivers_rut":        fleeterrors.ErrDriverRutAlreadyRegistered,
	"uq_mobile_units_code":  fleeterrors.ErrCodeAlreadyRegistered,
	"uq_mobile_units_plate": fleeterrors.ErrPlateAlreadyRegistered,
	"uq_mobile_units_driver": fleeterrors.ErrDriverAlreadyAssigned,
}

func mapDriverError(err error) error {
	return mapError(err, fleeterrors.ErrDriverNotFound)
}

func mapMobileUnitError(err error) error {
	return mapError(err, fleeterrors.ErrMobileUnitNotFound)
}

func mapError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if mapped, ok := uniqueViolations[pgErr.ConstraintName]; ok {
			return mapped
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		for constraint, mapped := range uniqueViolations {
			if strings.Contains(errMsg, constraint) {
				return mapped
			}
		}
	}

	return err
}
