package workorder_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-fieldops/internal/workorder"
	workordererrors "go-fieldops/internal/workorder/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepository struct {
	createFn           func(ctx context.Context, order *workorder.WorkOrder) error
	nextNumberFn       func(ctx context.Context) (int64, error)
	findAllFn          func(ctx context.Context, status string) ([]workorder.WorkOrderListItem, error)
	findByIDFn         func(ctx context.Context, id string) (*workorder.WorkOrder, error)
	updateFn           func(ctx context.Context, order *workorder.WorkOrder) error
	deleteFn           func(ctx context.Context, id string) error
	mobileUnitExistsFn func(ctx context.Context, id string) (bool, error)
}

func (f *fakeRepository) WithTx(tx *sql.Tx) workorder.Repository { return f }

func (f *fakeRepository) Create(ctx context.Context, order *workorder.WorkOrder) error {
	if f.createFn != nil {
		return f.createFn(ctx, order)
	}
	return nil
}

func (f *fakeRepository) NextNumber(ctx context.Context) (int64, error) {
	if f.nextNumberFn != nil {
		return f.nextNumberFn(ctx)
	}
	return 1, nil
}

func (f *fakeRepository) FindAll(ctx context.Context, status string) ([]workorder.WorkOrderListItem, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, status)
	}
	return nil, nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id string) (*workorder.WorkOrder, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) Update(ctx context.Context, order *workorder.WorkOrder) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, order)
	}
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeRepository) MobileUnitExists(ctx context.Context, id string) (bool, error) {
	if f.mobileUnitExistsFn != nil {
		return f.mobileUnitExistsFn(ctx, id)
	}
	return false, nil
}

func orderWithStatus(status string) *workorder.WorkOrder {
	return &workorder.WorkOrder{
		ID:            uuid.New(),
		Number:        42,
		ClientName:    "Aguas del Valle",
		Address:       "Av. Libertad 1200",
		Status:        status,
		ScheduledDate: time.Now(),
	}
}

func TestWorkOrderService_Create(t *testing.T) {
	repo := &fakeRepository{}
	svc := workorder.NewService(repo)

	repo.nextNumberFn = func(ctx context.Context) (int64, error) { return 101, nil }

	var created *workorder.WorkOrder
	repo.createFn = func(ctx context.Context, order *workorder.WorkOrder) error {
		created = order
		return nil
	}

	order, err := svc.Create(context.Background(), workorder.CreateWorkOrderRequest{
		ClientName:    "Aguas del Valle",
		Address:       "Av. Libertad 1200",
		Commune:       "Viña del Mar",
		ScheduledDate: time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(101), order.Number)
	assert.Equal(t, workorder.StatusPending, order.Status)
	assert.NotNil(t, created)
}

func TestWorkOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("completing an in-progress order stamps completed_at", func(t *testing.T) {
		repo := &fakeRepository{}
		svc := workorder.NewService(repo)

		repo.findByIDFn = func(ctx context.Context, id string) (*workorder.WorkOrder, error) {
			return orderWithStatus(workorder.StatusInProgress), nil
		}

		order, err := svc.UpdateStatus(ctx, uuid.New().String(), "completada")

		assert.NoError(t, err)
		assert.Equal(t, workorder.StatusCompleted, order.Status)
		assert.NotNil(t, order.CompletedAt)
	})

	t.Run("a completed order is final", func(t *testing.T) {
		repo := &fakeRepository{}
		svc := workorder.NewService(repo)

		repo.findByIDFn = func(ctx context.Context, id string) (*workorder.WorkOrder, error) {
			return orderWithStatus(workorder.StatusCompleted), nil
		}

		_, err := svc.UpdateStatus(ctx, uuid.New().String(), workorder.StatusInProgress)
		assert.ErrorIs(t, err, workordererrors.ErrInvalidTransition)
	})

	t.Run("pending cannot jump straight to in progress", func(t *testing.T) {
		repo := &fakeRepository{}
		svc := workorder.NewService(repo)

		repo.findByIDFn = func(ctx context.Context, id string) (*workorder.WorkOrder, error) {
			return orderWithStatus(workorder.StatusPending), nil
		}

		_, err := svc.UpdateStatus(ctx, uuid.New().String(), workorder.StatusInProgress)
		assert.ErrorIs(t, err, workordererrors.ErrInvalidTransition)
	})

	t.Run("unknown status label", func(t *testing.T) {
		repo := &fakeRepository{}
		svc := workorder.NewService(repo)

		_, err := svc.UpdateStatus(ctx, uuid.New().String(), "TERMINADA")
		assert.ErrorIs(t, err, workordererrors.ErrUnknownStatus)
	})
}

func TestWorkOrderService_AssignMobileUnit(t *testing.T) {
	ctx := context.Background()
	unitID := uuid.New()

	t.Run("assignment moves a pending order to assigned", func(t *testing.T) {
		repo := &fakeRepository{}
		svc := workorder.NewService(repo)

		repo.findByIDFn = func(ctx context.Context, id string) (*workorder.WorkOrder, error) {
			return orderWithStatus(workorder.StatusPending), nil
		}
		repo.mobileUnitExistsFn = func(ctx context.Context, id string) (bool, error) {
			return true, nil
		}

		order, err := svc.AssignMobileUnit(ctx, uuid.New().String(), unitID.String())

		assert.NoError(t, err)
		assert.Equal(t, workorder.StatusAssigned, order.Status)
		if assert.NotNil(t, order.MobileUnitID) {
			assert.Equal(t, unitID, *order.MobileUnitID)
		}
	})

	t.Run("unknown unit", func(t *testing.T) {
		repo := &fakeRepository{}
		svc := workorder.NewService(repo)

		repo.findByIDFn = func(ctx context.Context, id string) (*workorder.WorkOrder, error) {
			return orderWithStatus(workorder.StatusPending), nil
		}

		_, err := svc.AssignMobileUnit(ctx, uuid.New().String(), unitID.String())
		assert.ErrorIs(t, err, workordererrors.ErrMobileUnitNotFound)
	})

	t.Run("cancelled orders cannot be dispatched", func(t *testing.T) {
		repo := &fakeRepository{}
		svc := workorder.NewService(repo)

		repo.findByIDFn = func(ctx context.Context, id string) (*workorder.WorkOrder, error) {
			return orderWithStatus(workorder.StatusCancelled), nil
		}

		_, err := svc.AssignMobileUnit(ctx, uuid.New().String(), unitID.String())
		assert.ErrorIs(t, err, workordererrors.ErrOrderClosed)
	})
}

func TestWorkOrderService_GetAll_StatusFilter(t *testing.T) {
	repo := &fakeRepository{}
	svc := workorder.NewService(repo)

	var gotStatus string
	repo.findAllFn = func(ctx context.Context, status string) ([]workorder.WorkOrderListItem, error) {
		gotStatus = status
		return []workorder.WorkOrderListItem{{Number: 7, Status: status}}, nil
	}

	orders, err := svc.GetAll(context.Background(), "pendiente")

	assert.NoError(t, err)
	assert.Equal(t, workorder.StatusPending, gotStatus)
	assert.Len(t, orders, 1)

	_, err = svc.GetAll(context.Background(), "BORRADOR")
	assert.ErrorIs(t, err, workordererrors.ErrUnknownStatus)
}
