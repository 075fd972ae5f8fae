package personnel

type CreatePersonnelRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	Rut       string `json:"rut" binding:"required"`
	RoleLabel string `json:"role_label"`
}

type UpdatePersonnelRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	RoleLabel string `json:"role_label"`
	IsActive  *bool  `json:"is_active"`
}

type BackfillFromDriverRequest struct {
	DriverID  string `json:"driver_id" binding:"required,uuid"`
	RoleLabel string `json:"role_label"`
}

type PersonnelResponse struct {
	ID        string  `json:"id"`
	FullName  string  `json:"full_name"`
	Rut       string  `json:"rut"`
	RoleLabel string  `json:"role_label"`
	DriverID  *string `json:"driver_id,omitempty"`
	IsActive  bool    `json:"is_active"`
}
