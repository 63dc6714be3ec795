package interview

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"careerai-backend/internal/llm"
	"careerai-backend/internal/shared/server/respond"
)

type Handler struct {
	Service *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Service: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/start-interview", h.startInterview)
	rg.POST("/evaluate", h.evaluate)
}

type startRequest struct {
	Resume string `json:"resume"`
	JD     string `json:"jd"`
	Round  string `json:"round"`
}

func (h *Handler) startInterview(c *gin.Context) {
	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	result, err := h.Service.Start(c.Request.Context(), req.Resume, req.JD, req.Round)
	if err != nil {
		if errors.Is(err, llm.ErrRateLimited) {
			respond.Error(c, http.StatusTooManyRequests, "rate_limited", "LLM quota exhausted, retry later", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to start interview", nil)
		return
	}
	respond.OK(c, result)
}

type evaluateRequest struct {
	Answer string `json:"answer"`
	JD     string `json:"jd"`
}

func (h *Handler) evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Answer) == "" || strings.TrimSpace(req.JD) == "" {
		respond.Error(c, http.StatusUnprocessableEntity, "validation_error", "answer and job description are required", nil)
		return
	}

	feedback, err := h.Service.Evaluate(c.Request.Context(), req.Answer, req.JD)
	if err != nil {
		if errors.Is(err, llm.ErrRateLimited) {
			respond.Error(c, http.StatusTooManyRequests, "rate_limited", "LLM quota exhausted, retry later", nil)
			return
		}
		respond.Error(c, http.StatusBadGateway, "provider_failure", "failed to evaluate answer", nil)
		return
	}
	respond.OK(c, gin.H{"feedback": feedback})
}
