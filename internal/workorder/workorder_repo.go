package workorder

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=workorder_repo.go -destination=mock/workorder_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	Create(ctx context.Context, order *WorkOrder) error
	NextNumber(ctx context.Context) (int64, error)
	FindAll(ctx context.Context, status string) ([]WorkOrderListItem, error)
	FindByID(ctx context.Context, id string) (*WorkOrder, error)
	Update(ctx context.Context, order *WorkOrder) error
	Delete(ctx context.Context, id string) error
	MobileUnitExists(ctx context.Context, id string) (bool, error)
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

func (r *repository) Create(ctx context.Context, order *WorkOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// NextNumber hands out the next printable OT number. Soft-deleted orders keep
// their number, so the count is over all rows.
func (r *repository) NextNumber(ctx context.Context) (int64, error) {
	var next int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(number), 0) + 1 FROM work_orders
	`).Scan(&next).Error
	return next, err
}

func (r *repository) FindAll(ctx context.Context, status string) ([]WorkOrderListItem, error) {
	query := `
		SELECT
			wo.id,
			wo.number,
			wo.client_name,
			wo.address,
			wo.commune,
			wo.status,
			mu.code AS mobile_unit_code,
			wo.scheduled_date,
			wo.completed_at
		FROM work_orders wo
		LEFT JOIN mobile_units mu ON mu.id = wo.mobile_unit_id AND mu.deleted_at IS NULL
		WHERE wo.deleted_at IS NULL
	`
	args := []interface{}{}
	if status != "" {
		query += " AND wo.status = ?"
		args = append(args, status)
	}
	query += " ORDER BY wo.number DESC"

	var orders []WorkOrderListItem
	err := r.db.WithContext(ctx).Raw(query, args...).Scan(&orders).Error
	return orders, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*WorkOrder, error) {
	var order WorkOrder
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *repository) Update(ctx context.Context, order *WorkOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&WorkOrder{}).Error
}

func (r *repository) MobileUnitExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("mobile_units").
		Where("id = ? AND deleted_at IS NULL", id).
		Count(&count).Error
	return count > 0, err
}
