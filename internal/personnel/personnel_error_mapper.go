package personnel

import (
	"errors"
	"strings"

	personnelerrors "go-fieldops/internal/personnel/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return personnelerrors.ErrPersonnelNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_personnel_rut" {
			return personnelerrors.ErrRutAlreadyRegistered
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_personnel_rut") {
		return personnelerrors.ErrRutAlreadyRegistered
	}

	return err
}
