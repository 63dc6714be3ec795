package extract

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerai-backend/internal/shared/server/middleware"
	"careerai-backend/internal/shared/server/respond"
	"careerai-backend/internal/shared/telemetry"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// ResumeSaver persists extracted text onto the caller's user row.
type ResumeSaver interface {
	SaveResumeText(ctx context.Context, userID, text string) error
}

type Handler struct {
	Saver ResumeSaver
}

func NewHandler(saver ResumeSaver) *Handler {
	return &Handler{Saver: saver}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload-resume", h.uploadResume)
}

func (h *Handler) uploadResume(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "multipart field 'file' is required", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", "file too large", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to read upload", nil)
		return
	}

	text, err := TextFromBytes(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		if errors.Is(err, ErrUnsupportedType) {
			respond.Error(c, http.StatusUnprocessableEntity, "validation_error", "only PDF, DOCX, and TXT resumes are supported", nil)
			return
		}
		respond.Error(c, http.StatusUnprocessableEntity, "validation_error", "could not extract text from file", nil)
		return
	}
	if text == "" {
		respond.Error(c, http.StatusUnprocessableEntity, "validation_error", "file contains no extractable text", nil)
		return
	}

	// Signed-in callers get the text persisted to their row; failures are
	// logged and the extraction still succeeds.
	if h.Saver != nil && !middleware.IsGuest(c) {
		if userID := middleware.UserIDFromContext(c); userID != "" {
			if err := h.Saver.SaveResumeText(c.Request.Context(), userID, text); err != nil {
				telemetry.Warn("extract.persist.failed", map[string]any{"user_id": userID, "err": err.Error()})
			}
		}
	}

	respond.OK(c, gin.H{"resume_text": text, "chars": len(text)})
}
