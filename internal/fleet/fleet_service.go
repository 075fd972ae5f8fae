package fleet

import (
	"context"
	"errors"
	"strings"

	fleeterrors "go-fieldops/internal/fleet/errors"
	"go-fieldops/internal/personnel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=fleet_service.go -destination=mock/fleet_service_mock.go -package=mock
type Service interface {
	CreateDriver(ctx context.Context, req CreateDriverRequest) (*Driver, error)
	GetAllDrivers(ctx context.Context) ([]Driver, error)
	GetDriverByID(ctx context.Context, id string) (*Driver, error)
	UpdateDriver(ctx context.Context, id string, req UpdateDriverRequest) (*Driver, error)
	DeleteDriver(ctx context.Context, id string) error

	CreateMobileUnit(ctx context.Context, req CreateMobileUnitRequest) (*MobileUnit, error)
	GetAllMobileUnits(ctx context.Context) ([]MobileUnitResponse, error)
	GetMobileUnitByID(ctx context.Context, id string) (*MobileUnit, error)
	UpdateMobileUnit(ctx context.Context, id string, req UpdateMobileUnitRequest) (*MobileUnit, error)
	DeleteMobileUnit(ctx context.Context, id string) error
	AssignDriver(ctx context.Context, unitID string, driverID string) (*MobileUnit, error)
	UnassignDriver(ctx context.Context, unitID string) (*MobileUnit, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateDriver(ctx context.Context, req CreateDriverRequest) (*Driver, error) {
	if err := personnel.ValidateRut(req.Rut); err != nil {
		return nil, fleeterrors.ErrInvalidDriverRut
	}

	driver := &Driver{
		ID:            uuid.New(),
		FullName:      req.FullName,
		Rut:           personnel.FormatRut(req.Rut),
		LicenseClass:  strings.ToUpper(req.LicenseClass),
		LicenseExpiry: req.LicenseExpiry,
		Phone:         req.Phone,
		IsActive:      true,
	}

	if err := s.repo.CreateDriver(ctx, driver); err != nil {
		return nil, mapDriverError(err)
	}
	return driver, nil
}

func (s *service) GetAllDrivers(ctx context.Context) ([]Driver, error) {
	drivers, err := s.repo.FindAllDrivers(ctx)
	if err != nil {
		return nil, mapDriverError(err)
	}
	return drivers, nil
}

func (s *service) GetDriverByID(ctx context.Context, id string) (*Driver, error) {
	driver, err := s.repo.FindDriverByID(ctx, id)
	if err != nil {
		return nil, mapDriverError(err)
	}
	return driver, nil
}

func (s *service) UpdateDriver(ctx context.Context, id string, req UpdateDriverRequest) (*Driver, error) {
	driver, err := s.repo.FindDriverByID(ctx, id)
	if err != nil {
		return nil, mapDriverError(err)
	}

	driver.FullName = req.FullName
	driver.LicenseClass = strings.ToUpper(req.LicenseClass)
	driver.LicenseExpiry = req.LicenseExpiry
	driver.Phone = req.Phone
	if req.IsActive != nil {
		driver.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateDriver(ctx, driver); err != nil {
		return nil, mapDriverError(err)
	}
	return driver, nil
}

// DeleteDriver soft-deletes the driver and releases any unit assignment so
// the vehicle stays available for dispatch.
func (s *service) DeleteDriver(ctx context.Context, id string) error {
	driver, err := s.repo.FindDriverByID(ctx, id)
	if err != nil {
		return mapDriverError(err)
	}

	unit, err := s.repo.FindMobileUnitByDriver(ctx, driver.ID.String())
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return mapMobileUnitError(err)
	}
	if unit != nil {
		unit.DriverID = nil
		if err := s.repo.UpdateMobileUnit(ctx, unit); err != nil {
			return mapMobileUnitError(err)
		}
	}

	if err := s.repo.DeleteDriver(ctx, id); err != nil {
		return mapDriverError(err)
	}
	return nil
}

func (s *service) CreateMobileUnit(ctx context.Context, req CreateMobileUnitRequest) (*MobileUnit, error) {
	unit := &MobileUnit{
		ID:    uuid.New(),
		Code:  strings.ToUpper(req.Code),
		Plate: strings.ToUpper(req.Plate),
		Brand: req.Brand,
		Model: req.Model,
		Year:  req.Year,
	}

	if err := s.repo.CreateMobileUnit(ctx, unit); err != nil {
		return nil, mapMobileUnitError(err)
	}
	return unit, nil
}

func (s *service) GetAllMobileUnits(ctx context.Context) ([]MobileUnitResponse, error) {
	units, err := s.repo.FindAllMobileUnits(ctx)
	if err != nil {
		return nil, mapMobileUnitError(err)
	}
	return units, nil
}

func (s *service) GetMobileUnitByID(ctx context.Context, id string) (*MobileUnit, error) {
	unit, err := s.repo.FindMobileUnitByID(ctx, id)
	if err != nil {
		return nil, mapMobileUnitError(err)
	}
	return unit, nil
}

func (s *service) UpdateMobileUnit(ctx context.Context, id string, req UpdateMobileUnitRequest) (*MobileUnit, error) {
	unit, err := s.repo.FindMobileUnitByID(ctx, id)
	if err != nil {
		return nil, mapMobileUnitError(err)
	}

	unit.Code = strings.ToUpper(req.Code)
	unit.Plate = strings.ToUpper(req.Plate)
	unit.Brand = req.Brand
	unit.Model = req.Model
	unit.Year = req.Year

	if err := s.repo.UpdateMobileUnit(ctx, unit); err != nil {
		return nil, mapMobileUnitError(err)
	}
	return unit, nil
}

func (s *service) DeleteMobileUnit(ctx context.Context, id string) error {
	if _, err := s.repo.FindMobileUnitByID(ctx, id); err != nil {
		return mapMobileUnitError(err)
	}
	if err := s.repo.DeleteMobileUnit(ctx, id); err != nil {
		return mapMobileUnitError(err)
	}
	return nil
}

func (s *service) AssignDriver(ctx context.Context, unitID string, driverID string) (*MobileUnit, error) {
	unit, err := s.repo.FindMobileUnitByID(ctx, unitID)
	if err != nil {
		return nil, mapMobileUnitError(err)
	}

	driver, err := s.repo.FindDriverByID(ctx, driverID)
	if err != nil {
		return nil, mapDriverError(err)
	}
	if !driver.IsActive {
		return nil, fleeterrors.ErrDriverInactive
	}

	current, err := s.repo.FindMobileUnitByDriver(ctx, driverID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, mapMobileUnitError(err)
	}
	if current != nil && current.ID != unit.ID {
		return nil, fleeterrors.ErrDriverAlreadyAssigned
	}

	unit.DriverID = &driver.ID
	if err := s.repo.UpdateMobileUnit(ctx, unit); err != nil {
		// uq_mobile_units_driver also backstops concurrent assigns.
		return nil, mapMobileUnitError(err)
	}
	return unit, nil
}

func (s *service) UnassignDriver(ctx context.Context, unitID string) (*MobileUnit, error) {
	unit, err := s.repo.FindMobileUnitByID(ctx, unitID)
	if err != nil {
		return nil, mapMobileUnitError(err)
	}

	unit.DriverID = nil
	if err := s.repo.UpdateMobileUnit(ctx, unit); err != nil {
		return nil, mapMobileUnitError(err)
	}
	return unit, nil
}
