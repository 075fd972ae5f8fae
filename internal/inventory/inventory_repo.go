package inventory

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=inventory_repo.go -destination=mock/inventory_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateItem(ctx context.Context, item *Item) error
	FindAllItems(ctx context.Context) ([]Item, error)
	FindItemByID(ctx context.Context, id string) (*Item, error)
	UpdateItem(ctx context.Context, item *Item) error
	DeleteItem(ctx context.Context, id string) error

	WorkOrderExists(ctx context.Context, id string) (bool, error)
	DecrementStock(ctx context.Context, itemID string, quantity int64) (bool, error)
	CreateConsumption(ctx context.Context, row *WorkOrderItem) error
	FindConsumptionByWorkOrder(ctx context.Context, workOrderID string) ([]ConsumptionRow, error)
}

type repository struct {
	gdb *gorm.DB
	db  *sql.DB
	tx  *sql.Tx
}

func NewRepository(gdb *gorm.DB, db *sql.DB) Repository {
	return &repository{gdb: gdb, db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{gdb: r.gdb, db: r.db, tx: tx}
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func (r *repository) execer() execer {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func (r *repository) CreateItem(ctx context.Context, item *Item) error {
	return r.gdb.WithContext(ctx).Create(item).Error
}

func (r *repository) FindAllItems(ctx context.Context) ([]Item, error) {
	var items []Item
	err := r.gdb.WithContext(ctx).
		Order("sku ASC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindItemByID(ctx context.Context, id string) (*Item, error) {
	var item Item
	err := r.gdb.WithContext(ctx).
		Where("id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *repository) UpdateItem(ctx context.Context, item *Item) error {
	return r.gdb.WithContext(ctx).Save(item).Error
}

func (r *repository) DeleteItem(ctx context.Context, id string) error {
	return r.gdb.WithContext(ctx).
		Where("id = ?", id).
		Delete(&Item{}).Error
}

func (r *repository) WorkOrderExists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.gdb.WithContext(ctx).
		Table("work_orders").
		Where("id = ? AND deleted_at IS NULL", id).
		Count(&count).Error
	return count > 0, err
}

// DecrementStock takes stock atomically: the WHERE guard makes the update a
// no-op when stock would go negative, and the caller reads that as
// insufficient stock. Runs through execer so it joins the consumption tx.
func (r *repository) DecrementStock(ctx context.Context, itemID string, quantity int64) (bool, error) {
	result, err := r.execer().ExecContext(ctx, `
		UPDATE items
		SET stock = stock - $1, updated_at = NOW()
		WHERE id = $2 AND deleted_at IS NULL AND stock >= $1
	`, quantity, itemID)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

func (r *repository) CreateConsumption(ctx context.Context, row *WorkOrderItem) error {
	_, err := r.execer().ExecContext(ctx, `
		INSERT INTO work_order_items (
			id, work_order_id, item_id, quantity, used_at, created_by, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`, row.ID, row.WorkOrderID, row.ItemID, row.Quantity, row.UsedAt, row.CreatedBy)
	return err
}

func (r *repository) FindConsumptionByWorkOrder(ctx context.Context, workOrderID string) ([]ConsumptionRow, error) {
	var rows []ConsumptionRow
	err := r.gdb.WithContext(ctx).Raw(`
		SELECT
			woi.id,
			woi.item_id,
			i.sku,
			i.name AS item_name,
			i.unit,
			woi.quantity,
			woi.used_at
		FROM work_order_items woi
		JOIN items i ON i.id = woi.item_id
		WHERE woi.work_order_id = ?
		ORDER BY woi.used_at DESC, woi.created_at DESC
	`, workOrderID).Scan(&rows).Error
	return rows, err
}
