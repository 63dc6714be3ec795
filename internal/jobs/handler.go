package jobs

import (
	"errors"
	"net/http"
	"strconv"

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
	rg.POST("/jobs", h.searchJobs)
	rg.POST("/jobs/:id", h.jobDetail)
}

type jobsRequest struct {
	Resume string `json:"resume"`
}

func (h *Handler) searchJobs(c *gin.Context) {
	var req jobsRequest
	// Body is optional; an empty or absent body means unscored listings.
	_ = c.ShouldBindJSON(&req)

	topN, _ := strconv.Atoi(c.DefaultQuery("top_n", "10"))
	filters := Filters{
		H1BOnly:      queryBool(c, "h1b_only"),
		RemoteOnly:   queryBool(c, "remote_only"),
		FulltimeOnly: queryBool(c, "fulltime_only"),
	}

	postings, err := h.Service.Search(c.Request.Context(), c.Query("keyword"), req.Resume, filters, topN)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond.OK(c, gin.H{"jobs": postings})
}

func (h *Handler) jobDetail(c *gin.Context) {
	var req jobsRequest
	_ = c.ShouldBindJSON(&req)

	posting, explanation, err := h.Service.Detail(c.Request.Context(), c.Query("keyword"), c.Param("id"), req.Resume)
	if err != nil {
		h.respondError(c, err)
		return
	}
	respond.OK(c, gin.H{"job": posting, "match_explanation": explanation})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNoJobs):
		respond.Error(c, http.StatusBadGateway, "no_jobs_available", "no job listings available for this search", nil)
	case errors.Is(err, ErrJobNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "job not found", nil)
	case errors.Is(err, llm.ErrRateLimited):
		respond.Error(c, http.StatusTooManyRequests, "rate_limited", "LLM quota exhausted, retry later", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to search jobs", nil)
	}
}

func queryBool(c *gin.Context, name string) bool {
	v, _ := strconv.ParseBool(c.DefaultQuery(name, "false"))
	return v
}
