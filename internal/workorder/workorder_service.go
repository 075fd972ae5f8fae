package workorder

import (
	"context"
	"strings"
	"time"

	"go-fieldops/internal/shared/contextutil"
	workordererrors "go-fieldops/internal/workorder/errors"

	"github.com/google/uuid"
)

//go:generate mockgen -source=workorder_service.go -destination=mock/workorder_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateWorkOrderRequest) (*WorkOrder, error)
	GetAll(ctx context.Context, status string) ([]WorkOrderListItem, error)
	GetByID(ctx context.Context, id string) (*WorkOrder, error)
	Update(ctx context.Context, id string, req UpdateWorkOrderRequest) (*WorkOrder, error)
	AssignMobileUnit(ctx context.Context, id string, mobileUnitID string) (*WorkOrder, error)
	UpdateStatus(ctx context.Context, id string, status string) (*WorkOrder, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateWorkOrderRequest) (*WorkOrder, error) {
	number, err := s.repo.NextNumber(ctx)
	if err != nil {
		return nil, err
	}

	order := &WorkOrder{
		ID:            uuid.New(),
		Number:        number,
		ClientName:    req.ClientName,
		Address:       req.Address,
		Commune:       req.Commune,
		Description:   req.Description,
		Status:        StatusPending,
		ScheduledDate: req.ScheduledDate,
	}

	if userID := contextutil.GetUserID(ctx); userID != "" {
		if uid, parseErr := uuid.Parse(userID); parseErr == nil {
			order.CreatedBy = &uid
		}
	}

	// Concurrent creates can race on NextNumber; the unique index on number
	// turns the loser into a Conflict the client can retry.
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, mapRepositoryError(err)
	}
	return order, nil
}

func (s *service) GetAll(ctx context.Context, status string) ([]WorkOrderListItem, error) {
	if status != "" {
		status = strings.ToUpper(status)
		if _, ok := Statuses[status]; !ok {
			return nil, workordererrors.ErrUnknownStatus
		}
	}

	orders, err := s.repo.FindAll(ctx, status)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return orders, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*WorkOrder, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return order, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateWorkOrderRequest) (*WorkOrder, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if order.Status == StatusCompleted || order.Status == StatusCancelled {
		return nil, workordererrors.ErrOrderClosed
	}

	order.ClientName = req.ClientName
	order.Address = req.Address
	order.Commune = req.Commune
	order.Description = req.Description
	order.ScheduledDate = req.ScheduledDate

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, mapRepositoryError(err)
	}
	return order, nil
}

func (s *service) AssignMobileUnit(ctx context.Context, id string, mobileUnitID string) (*WorkOrder, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if order.Status == StatusCompleted || order.Status == StatusCancelled {
		return nil, workordererrors.ErrOrderClosed
	}

	exists, err := s.repo.MobileUnitExists(ctx, mobileUnitID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, workordererrors.ErrMobileUnitNotFound
	}

	unitID, err := uuid.Parse(mobileUnitID)
	if err != nil {
		return nil, workordererrors.ErrMobileUnitNotFound
	}

	order.MobileUnitID = &unitID
	if order.Status == StatusPending {
		order.Status = StatusAssigned
	}

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, mapRepositoryError(err)
	}
	return order, nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, status string) (*WorkOrder, error) {
	status = strings.ToUpper(status)
	if _, ok := Statuses[status]; !ok {
		return nil, workordererrors.ErrUnknownStatus
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	if !transitionAllowed(order.Status, status) {
		return nil, workordererrors.ErrInvalidTransition
	}

	order.Status = status
	if status == StatusCompleted {
		now := time.Now()
		order.CompletedAt = &now
	}

	if err := s.repo.Update(ctx, order); err != nil {
		return nil, mapRepositoryError(err)
	}
	return order, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if order.Status == StatusInProgress {
		return workordererrors.ErrInvalidTransition
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	return nil
}

func transitionAllowed(from string, to string) bool {
	for _, next := range Statuses[from] {
		if next == to {
			return true
		}
	}
	return false
}
