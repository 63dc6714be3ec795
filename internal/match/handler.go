package match

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerai-backend/internal/llm"
	"careerai-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the match aggregator.
type Handler struct {
	Aggregator *Aggregator
}

// NewHandler constructs a Handler.
func NewHandler(agg *Aggregator) *Handler {
	return &Handler{Aggregator: agg}
}

// RegisterRoutes attaches match routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/match", h.match)
}

type matchRequest struct {
	Resume string `json:"resume"`
	JD     string `json:"jd"`
}

func (h *Handler) match(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, err := h.Aggregator.Compute(c.Request.Context(), req.Resume, req.JD)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyInput):
			respond.Error(c, http.StatusUnprocessableEntity, "validation_error", "Both resume and job description are required.", nil)
		case errors.Is(err, llm.ErrRateLimited):
			respond.Error(c, http.StatusTooManyRequests, "rate_limited", "LLM quota exhausted, retry later", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute resume match", nil)
		}
		return
	}

	respond.OK(c, result)
}
