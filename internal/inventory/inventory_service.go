package inventory

import (
	"context"
	"database/sql"
	"strings"
	"time"

	inventoryerrors "go-fieldops/internal/inventory/errors"
	"go-fieldops/internal/shared/contextutil"

	"github.com/google/uuid"
)

//go:generate mockgen -source=inventory_service.go -destination=mock/inventory_service_mock.go -package=mock
type Service interface {
	CreateItem(ctx context.Context, req CreateItemRequest) (*Item, error)
	GetAllItems(ctx context.Context) ([]Item, error)
	GetItemByID(ctx context.Context, id string) (*Item, error)
	UpdateItem(ctx context.Context, id string, req UpdateItemRequest) (*Item, error)
	DeleteItem(ctx context.Context, id string) error

	ConsumeForWorkOrder(ctx context.Context, workOrderID string, req ConsumeRequest) (*WorkOrderItem, error)
	GetConsumptionByWorkOrder(ctx context.Context, workOrderID string) ([]ConsumptionRow, error)
}

type service struct {
	db   *sql.DB
	repo Repository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

func (s *service) CreateItem(ctx context.Context, req CreateItemRequest) (*Item, error) {
	if req.Stock < 0 {
		return nil, inventoryerrors.ErrInvalidStock
	}

	unit := strings.ToUpper(req.Unit)
	if unit == "" {
		unit = "UN"
	}

	item := &Item{
		ID:    uuid.New(),
		Sku:   strings.ToUpper(req.Sku),
		Name:  req.Name,
		Unit:  unit,
		Stock: req.Stock,
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, mapRepositoryError(err)
	}
	return item, nil
}

func (s *service) GetAllItems(ctx context.Context) ([]Item, error) {
	items, err := s.repo.FindAllItems(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return items, nil
}

func (s *service) GetItemByID(ctx context.Context, id string) (*Item, error) {
	item, err := s.repo.FindItemByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return item, nil
}

func (s *service) UpdateItem(ctx context.Context, id string, req UpdateItemRequest) (*Item, error) {
	item, err := s.repo.FindItemByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	item.Name = req.Name
	if req.Unit != "" {
		item.Unit = strings.ToUpper(req.Unit)
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, inventoryerrors.ErrInvalidStock
		}
		item.Stock = *req.Stock
	}

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, mapRepositoryError(err)
	}
	return item, nil
}

func (s *service) DeleteItem(ctx context.Context, id string) error {
	if _, err := s.repo.FindItemByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	return nil
}

// ConsumeForWorkOrder decrements stock and records the consumption in one
// transaction, so a crash between the two cannot leak stock.
func (s *service) ConsumeForWorkOrder(ctx context.Context, workOrderID string, req ConsumeRequest) (*WorkOrderItem, error) {
	if req.Quantity <= 0 {
		return nil, inventoryerrors.ErrInvalidQuantity
	}

	exists, err := s.repo.WorkOrderExists(ctx, workOrderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, inventoryerrors.ErrWorkOrderNotFound
	}

	item, err := s.repo.FindItemByID(ctx, req.ItemID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	orderID, err := uuid.Parse(workOrderID)
	if err != nil {
		return nil, inventoryerrors.ErrWorkOrderNotFound
	}

	usedAt := time.Now()
	if req.UsedAt != nil {
		usedAt = *req.UsedAt
	}

	row := &WorkOrderItem{
		ID:          uuid.New(),
		WorkOrderID: orderID,
		ItemID:      item.ID,
		Quantity:    req.Quantity,
		UsedAt:      usedAt,
	}
	if userID := contextutil.GetUserID(ctx); userID != "" {
		if uid, parseErr := uuid.Parse(userID); parseErr == nil {
			row.CreatedBy = &uid
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	txRepo := s.repo.WithTx(tx)

	ok, err := txRepo.DecrementStock(ctx, req.ItemID, req.Quantity)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, inventoryerrors.ErrInsufficientStock
	}

	if err := txRepo.CreateConsumption(ctx, row); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return row, nil
}

func (s *service) GetConsumptionByWorkOrder(ctx context.Context, workOrderID string) ([]ConsumptionRow, error) {
	exists, err := s.repo.WorkOrderExists(ctx, workOrderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, inventoryerrors.ErrWorkOrderNotFound
	}

	rows, err := s.repo.FindConsumptionByWorkOrder(ctx, workOrderID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return rows, nil
}
