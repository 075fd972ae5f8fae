package fleet

import (
	"net/http"

	"go-fieldops/internal/shared/apperror"
	"go-fieldops/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) CreateDriver(c *gin.Context) {
	var req CreateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	driver, err := h.service.CreateDriver(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, driver, nil)
}

func (h *Handler) GetAllDrivers(c *gin.Context) {
	drivers, err := h.service.GetAllDrivers(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, drivers, nil)
}

func (h *Handler) GetDriverById(c *gin.Context) {
	driver, err := h.service.GetDriverByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, driver, nil)
}

func (h *Handler) UpdateDriver(c *gin.Context) {
	var req UpdateDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	driver, err := h.service.UpdateDriver(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, driver, nil)
}

func (h *Handler) DeleteDriver(c *gin.Context) {
	if err := h.service.DeleteDriver(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) CreateMobileUnit(c *gin.Context) {
	var req CreateMobileUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	unit, err := h.service.CreateMobileUnit(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, unit, nil)
}

func (h *Handler) GetAllMobileUnits(c *gin.Context) {
	units, err := h.service.GetAllMobileUnits(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, units, nil)
}

func (h *Handler) GetMobileUnitById(c *gin.Context) {
	unit, err := h.service.GetMobileUnitByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, unit, nil)
}

func (h *Handler) UpdateMobileUnit(c *gin.Context) {
	var req UpdateMobileUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	unit, err := h.service.UpdateMobileUnit(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, unit, nil)
}

func (h *Handler) DeleteMobileUnit(c *gin.Context) {
	if err := h.service.DeleteMobileUnit(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) AssignDriver(c *gin.Context) {
	var req AssignDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	unit, err := h.service.AssignDriver(c.Request.Context(), c.Param("id"), req.DriverID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, unit, nil)
}

func (h *Handler) UnassignDriver(c *gin.Context) {
	unit, err := h.service.UnassignDriver(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, unit, nil)
}
