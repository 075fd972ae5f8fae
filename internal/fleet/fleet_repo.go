package fleet

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=fleet_repo.go -destination=mock/fleet_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateDriver(ctx context.Context, driver *Driver) error
	FindAllDrivers(ctx context.Context) ([]Driver, error)
	FindDriverByID(ctx context.Context, id string) (*Driver, error)
	UpdateDriver(ctx context.Context, driver *Driver) error
	DeleteDriver(ctx context.Context, id string) error

	CreateMobileUnit(ctx context.Context, unit *MobileUnit) error
	FindAllMobileUnits(ctx context.Context) ([]MobileUnitResponse, error)
	FindMobileUnitByID(ctx context.Context, id string) (*MobileUnit, error)
	FindMobileUnitByDriver(ctx context.Context, driverID string) (*MobileUnit, error)
	UpdateMobileUnit(ctx context.Context, unit *MobileUnit) error
	DeleteMobileUnit(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) CreateDriver(ctx context.Context, driver *Driver) error {
	return r.db.WithContext(ctx).Create(driver).Error
}

func (r *repository) FindAllDrivers(ctx context.Context) ([]Driver, error) {
	var drivers []Driver
	err := r.db.WithContext(ctx).
		Order("full_name ASC").
		Find(&drivers).Error
	return drivers, err
}

func (r *repository) FindDriverByID(ctx context.Context, id string) (*Driver, error) {
	var driver Driver
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&driver).Error
	if err != nil {
		return nil, err
	}
	return &driver, nil
}

func (r *repository) UpdateDriver(ctx context.Context, driver *Driver) error {
	return r.db.WithContext(ctx).Save(driver).Error
}

func (r *repository) DeleteDriver(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&Driver{}).Error
}

func (r *repository) CreateMobileUnit(ctx context.Context, unit *MobileUnit) error {
	return r.db.WithContext(ctx).Create(unit).Error
}

// FindAllMobileUnits resolves the assigned driver name in one query so the
// listing does not fan out into per-unit lookups.
func (r *repository) FindAllMobileUnits(ctx context.Context) ([]MobileUnitResponse, error) {
	var units []MobileUnitResponse
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			mu.id,
			mu.code,
			mu.plate,
			mu.brand,
			mu.model,
			mu.year,
			mu.driver_id,
			d.full_name AS driver_name
		FROM mobile_units mu
		LEFT JOIN drivers d ON d.id = mu.driver_id AND d.deleted_at IS NULL
		WHERE mu.deleted_at IS NULL
		ORDER BY mu.code ASC
	`).Scan(&units).Error
	return units, err
}

func (r *repository) FindMobileUnitByID(ctx context.Context, id string) (*MobileUnit, error) {
	var unit MobileUnit
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&unit).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *repository) FindMobileUnitByDriver(ctx context.Context, driverID string) (*MobileUnit, error) {
	var unit MobileUnit
	err := r.db.WithContext(ctx).
		Where("driver_id = ?", driverID).
		First(&unit).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *repository) UpdateMobileUnit(ctx context.Context, unit *MobileUnit) error {
	return r.db.WithContext(ctx).Save(unit).Error
}

func (r *repository) DeleteMobileUnit(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&MobileUnit{}).Error
}
