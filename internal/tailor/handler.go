package tailor

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerai-backend/internal/llm"
	"careerai-backend/internal/match"
	"careerai-backend/internal/shared/server/middleware"
	"careerai-backend/internal/shared/server/respond"
)

type Handler struct {
	Service *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Service: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/tailor-resume", h.tailorResume)
}

type tailorRequest struct {
	Resume  string `json:"resume"`
	JD      string `json:"jd"`
	Role    string `json:"role"`
	Company string `json:"company"`
}

func (h *Handler) tailorResume(c *gin.Context) {
	var req tailorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	userID := ""
	if !middleware.IsGuest(c) {
		userID = middleware.UserIDFromContext(c)
	}

	result, err := h.Service.Tailor(c.Request.Context(), userID, req.Resume, req.JD, req.Role, req.Company)
	if err != nil {
		switch {
		case errors.Is(err, match.ErrEmptyInput):
			respond.Error(c, http.StatusUnprocessableEntity, "validation_error", "Both resume and job description are required.", nil)
		case errors.Is(err, llm.ErrRateLimited):
			respond.Error(c, http.StatusTooManyRequests, "rate_limited", "LLM quota exhausted, retry later", nil)
		case errors.Is(err, ErrTailoringFailed):
			respond.Error(c, http.StatusBadGateway, "tailoring_failed", "tailoring produced no usable resume", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to tailor resume", nil)
		}
		return
	}

	respond.OK(c, result)
}
