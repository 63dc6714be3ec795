package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerai-backend/internal/shared/server/middleware"
	"careerai-backend/internal/shared/server/respond"
)

type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/signup", h.signup)
	rg.POST("/auth/login", h.login)
	rg.GET("/me", h.me)
	rg.POST("/onboarding", h.onboarding)
	rg.GET("/resume", h.getResume)
	rg.POST("/resume", h.saveResume)
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

func (h *Handler) signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	session, err := h.Svc.Signup(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			respond.Error(c, http.StatusConflict, "email_taken", "email already registered", nil)
			return
		}
		respond.Error(c, http.StatusUnprocessableEntity, "validation_error", err.Error(), nil)
		return
	}
	respond.JSON(c, http.StatusCreated, session)
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	session, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrBadCredentials) {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "invalid email or password", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to log in", nil)
		return
	}
	respond.OK(c, session)
}

func (h *Handler) me(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}
	respond.OK(c, user)
}

func (h *Handler) onboarding(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}

	var prefs json.RawMessage
	if err := c.ShouldBindJSON(&prefs); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if err := h.Svc.SaveOnboarding(c.Request.Context(), userID, prefs); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
			return
		}
		respond.Error(c, http.StatusUnprocessableEntity, "validation_error", err.Error(), nil)
		return
	}
	respond.OK(c, gin.H{"saved": true})
}

func (h *Handler) getResume(c *gin.Context) {
	user, ok := h.requireUser(c)
	if !ok {
		return
	}
	respond.OK(c, gin.H{
		"resume_text":     user.ResumeText,
		"tailored_resume": user.TailoredResume,
	})
}

type saveResumeRequest struct {
	Resume string `json:"resume"`
}

func (h *Handler) saveResume(c *gin.Context) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return
	}

	var req saveResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	if err := h.Svc.SaveResumeText(c.Request.Context(), userID, req.Resume); err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
			return
		}
		respond.Error(c, http.StatusUnprocessableEntity, "validation_error", err.Error(), nil)
		return
	}
	respond.OK(c, gin.H{"saved": true})
}

func (h *Handler) requireUserID(c *gin.Context) (string, bool) {
	if middleware.IsGuest(c) {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		return "", false
	}
	userID := middleware.UserIDFromContext(c)
	if userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "login required", nil)
		return "", false
	}
	return userID, true
}

func (h *Handler) requireUser(c *gin.Context) (User, bool) {
	userID, ok := h.requireUserID(c)
	if !ok {
		return User{}, false
	}
	user, err := h.Svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "not_found", "user not found", nil)
			return User{}, false
		}
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load user", nil)
		return User{}, false
	}
	user.PasswordHash = ""
	return user, true
}
