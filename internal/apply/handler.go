package apply

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerai-backend/internal/llm"
	"careerai-backend/internal/match"
	"careerai-backend/internal/shared/server/middleware"
	"careerai-backend/internal/shared/server/respond"
	"careerai-backend/internal/tailor"
)

type Handler struct {
	Service *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Service: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/apply-smart", h.applySmart)
}

type applyRequest struct {
	Resume  string `json:"resume"`
	JD      string `json:"jd"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
}

func (h *Handler) applySmart(c *gin.Context) {
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	userID := ""
	if !middleware.IsGuest(c) {
		userID = middleware.UserIDFromContext(c)
	}

	result, err := h.Service.Apply(c.Request.Context(), userID, req.Resume, req.JD, req.Role, req.Company, req.Phone)
	if err != nil {
		switch {
		case errors.Is(err, match.ErrEmptyInput):
			respond.Error(c, http.StatusUnprocessableEntity, "validation_error", "Both resume and job description are required.", nil)
		case errors.Is(err, llm.ErrRateLimited):
			respond.Error(c, http.StatusTooManyRequests, "rate_limited", "LLM quota exhausted, retry later", nil)
		case errors.Is(err, tailor.ErrTailoringFailed):
			respond.Error(c, http.StatusBadGateway, "tailoring_failed", "tailoring produced no usable resume", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to complete apply pipeline", nil)
		}
		return
	}

	respond.OK(c, result)
}
