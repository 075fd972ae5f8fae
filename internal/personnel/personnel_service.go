package personnel

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"go-fieldops/internal/events"
	"go-fieldops/internal/messaging/kafka"
	personnelerrors "go-fieldops/internal/personnel/errors"
	"go-fieldops/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=personnel_service.go -destination=mock/personnel_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePersonnelRequest) (PersonnelResponse, error)
	GetAll(ctx context.Context, activeOnly bool) ([]PersonnelResponse, error)
	GetByID(ctx context.Context, id string) (PersonnelResponse, error)
	Update(ctx context.Context, id string, req UpdatePersonnelRequest) (PersonnelResponse, error)
	Deactivate(ctx context.Context, id string) error
	BackfillFromDriver(ctx context.Context, req BackfillFromDriverRequest) (PersonnelResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	outboxRepo kafka.OutboxRepository
}

func NewService(db *sql.DB, repo Repository) Service {
	return &service{db: db, repo: repo}
}

// NewServiceWithOutbox additionally publishes lifecycle events through the
// transactional outbox.
func NewServiceWithOutbox(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository) Service {
	return &service{db: db, repo: repo, outboxRepo: outboxRepo}
}

func (s *service) Create(ctx context.Context, req CreatePersonnelRequest) (PersonnelResponse, error) {
	if err := ValidateRut(req.Rut); err != nil {
		return PersonnelResponse{}, personnelerrors.ErrInvalidRut
	}

	p := &Personnel{
		ID: uuid.New(),
		FullName: req.FullName,
		// RUT is stored in the dotted canonical form so exports and the
		// banking holder check compare like with like.
		Rut:       FormatRut(req.Rut),
		RoleLabel: req.RoleLabel,
		IsActive:  true,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return PersonnelResponse{}, mapRepositoryError(err)
	}

	s.publishCreated(ctx, p)

	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context, activeOnly bool) ([]PersonnelResponse, error) {
	people, err := s.repo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]PersonnelResponse, len(people))
	for i, p := range people {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (PersonnelResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PersonnelResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePersonnelRequest) (PersonnelResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PersonnelResponse{}, mapRepositoryError(err)
	}

	p.FullName = req.FullName
	p.RoleLabel = req.RoleLabel
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return PersonnelResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*p), nil
}

// Deactivate is the only removal path: personnel rows are never hard-deleted.
func (s *service) Deactivate(ctx context.Context, id string) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	p.IsActive = false
	if err := s.repo.Update(ctx, p); err != nil {
		return mapRepositoryError(err)
	}
	return nil
}

func (s *service) BackfillFromDriver(ctx context.Context, req BackfillFromDriverRequest) (PersonnelResponse, error) {
	fullName, rut, err := s.repo.FindDriverIdentity(ctx, req.DriverID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return PersonnelResponse{}, personnelerrors.ErrDriverNotFound
		}
		return PersonnelResponse{}, err
	}

	if err := ValidateRut(rut); err != nil {
		return PersonnelResponse{}, personnelerrors.ErrInvalidRut
	}

	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		return PersonnelResponse{}, personnelerrors.ErrDriverNotFound
	}

	roleLabel := req.RoleLabel
	if roleLabel == "" {
		roleLabel = "conductor"
	}

	p := &Personnel{
		ID:        uuid.New(),
		FullName:  fullName,
		Rut:       FormatRut(rut),
		RoleLabel: roleLabel,
		DriverID:  &driverID,
		IsActive:  true,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return PersonnelResponse{}, mapRepositoryError(err)
	}

	s.publishCreated(ctx, p)

	return mapToResponse(*p), nil
}

// publishCreated enqueues the lifecycle event; a lost event is logged, not
// fatal, since the personnel row is already committed.
func (s *service) publishCreated(ctx context.Context, p *Personnel) {
	if s.outboxRepo == nil {
		return
	}

	event := events.PersonnelCreatedEvent{
		EventType:   "personnel.created",
		PersonnelID: p.ID.String(),
		Rut:         p.Rut,
		OccurredAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}

	outboxEvent := kafka.NewEvent(ctx, "personnel", p.ID.String(), event.EventType, events.PersonnelCreatedTopic, payload)
	if err := s.outboxRepo.Create(ctx, outboxEvent); err != nil {
		contextutil.GetLogger(ctx, zap.L()).Warn("personnel created event not enqueued", zap.Error(err))
	}
}

func mapToResponse(p Personnel) PersonnelResponse {
	resp := PersonnelResponse{
		ID:        p.ID.String(),
		FullName:  p.FullName,
		Rut:       p.Rut,
		RoleLabel: p.RoleLabel,
		IsActive:  p.IsActive,
	}
	if p.DriverID != nil {
		v := p.DriverID.String()
		resp.DriverID = &v
	}
	return resp
}
