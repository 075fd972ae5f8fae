package audit

import (
	"net/http"
	"strconv"
	"time"

	"go-fieldops/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type AuditLogResponse struct {
	ID          string         `json:"id"`
	ActorID     *string        `json:"actor_id,omitempty"`
	Action      string         `json:"action"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	IPAddress   string         `json:"ip_address"`
	UserAgent   string         `json:"user_agent"`
	CreatedAt   string         `json:"created_at"`
}

func (h *Handler) GetRecent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 500 {
		limit = 50
	}

	entries, err := h.repo.FindRecent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load audit log", nil)
		return
	}

	resp := make([]AuditLogResponse, len(entries))
	for i, e := range entries {
		resp[i] = AuditLogResponse{
			ID:          e.ID.String(),
			Action:      e.Action,
			Description: e.Description,
			Metadata:    e.Metadata,
			IPAddress:   e.IPAddress,
			UserAgent:   e.UserAgent,
			CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		}
		if e.ActorID != nil {
			v := e.ActorID.String()
			resp[i].ActorID = &v
		}
	}

	response.Success(c, http.StatusOK, resp, nil)
}
