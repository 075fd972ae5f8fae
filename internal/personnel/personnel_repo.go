package personnel

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=personnel_repo.go -destination=mock/personnel_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *Personnel) error
	FindAll(ctx context.Context, activeOnly bool) ([]Personnel, error)
	FindByID(ctx context.Context, id string) (*Personnel, error)
	FindByRut(ctx context.Context, rut string) (*Personnel, error)
	Update(ctx context.Context, p *Personnel) error
	DriverExists(ctx context.Context, driverID string) (bool, error)
	FindDriverIdentity(ctx context.Context, driverID string) (fullName, rut string, err error)
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

func (r *repository) Create(ctx context.Context, p *Personnel) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAll(ctx context.Context, activeOnly bool) ([]Personnel, error) {
	var people []Personnel
	db := r.db.WithContext(ctx).Order("full_name ASC")
	if activeOnly {
		db = db.Where("is_active = ?", true)
	}
	err := db.Find(&people).Error
	return people, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Personnel, error) {
	var p Personnel
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindByRut(ctx context.Context, rut string) (*Personnel, error) {
	var p Personnel
	err := r.db.WithContext(ctx).First(&p, "rut = ?", rut).Error
	return &p, err
}

func (r *repository) Update(ctx context.Context, p *Personnel) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) DriverExists(ctx context.Context, driverID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("drivers").
		Where("id = ?", driverID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindDriverIdentity(ctx context.Context, driverID string) (string, string, error) {
	var row struct {
		FullName string
		Rut      string
	}
	err := r.db.WithContext(ctx).
		Table("drivers").
		Select("full_name, rut").
		Where("id = ?", driverID).
		Take(&row).Error
	return row.FullName, row.Rut, err
}
