package fleet

import "time"

type CreateDriverRequest struct {
	FullName      string     `json:"full_name" binding:"required"`
	Rut           string     `json:"rut" binding:"required"`
	LicenseClass  string     `json:"license_class" binding:"required"`
	LicenseExpiry *time.Time `json:"license_expiry"`
	Phone         string     `json:"phone"`
}

type UpdateDriverRequest struct {
	FullName      string     `json:"full_name" binding:"required"`
	LicenseClass  string     `json:"license_class" binding:"required"`
	LicenseExpiry *time.Time `json:"license_expiry"`
	Phone         string     `json:"phone"`
	IsActive      *bool      `json:"is_active"`
}

type CreateMobileUnitRequest struct {
	Code  string `json:"code" binding:"required"`
	Plate string `json:"plate" binding:"required"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

type UpdateMobileUnitRequest struct {
	Code  string `json:"code" binding:"required"`
	Plate string `json:"plate" binding:"required"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

type AssignDriverRequest struct {
	DriverID string `json:"driver_id" binding:"required,uuid"`
}

type MobileUnitResponse struct {
	ID         string  `json:"id"`
	Code       string  `json:"code"`
	Plate      string  `json:"plate"`
	Brand      string  `json:"brand"`
	Model      string  `json:"model"`
	Year       int     `json:"year"`
	DriverID   *string `json:"driver_id,omitempty"`
	DriverName *string `json:"driver_name,omitempty"`
}
