package vault

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerai-backend/internal/shared/server/respond"
)

type Handler struct {
	Vault *Vault
}

func NewHandler(v *Vault) *Handler {
	return &Handler{Vault: v}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/download/:filename", h.download)
	rg.GET("/artifacts", h.listArtifacts)
}

func (h *Handler) download(c *gin.Context) {
	filename := c.Param("filename")

	data, err := h.Vault.Load(filename)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "artifact not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to read artifact", nil)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *Handler) listArtifacts(c *gin.Context) {
	entries, err := h.Vault.List()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to list artifacts", nil)
		return
	}
	respond.OK(c, gin.H{"artifacts": entries})
}
