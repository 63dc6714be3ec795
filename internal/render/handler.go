package render

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"careerai-backend/internal/shared/server/respond"
)

const mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/download-resume", h.downloadResume)
}

type downloadRequest struct {
	Resume string `json:"resume"`
	Format string `json:"format"`
}

func (h *Handler) downloadResume(c *gin.Context) {
	var req downloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Resume) == "" {
		respond.Error(c, http.StatusUnprocessableEntity, "validation_error", "resume text is required", nil)
		return
	}

	switch strings.ToLower(strings.TrimSpace(req.Format)) {
	case "docx":
		data, err := DOCX(req.Resume)
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render resume", nil)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="resume.docx"`)
		c.Data(http.StatusOK, mimeDOCX, data)
	case "", "pdf":
		data, err := PDF(req.Resume)
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render resume", nil)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="resume.pdf"`)
		c.Data(http.StatusOK, "application/pdf", data)
	default:
		respond.Error(c, http.StatusUnprocessableEntity, "validation_error", "format must be pdf or docx", nil)
	}
}
