package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
	"github.com/yatradesk/tourism-directory-backend/internal/infrastructure/gemini"
	"github.com/yatradesk/tourism-directory-backend/internal/usecase/visibility"
)

type PreferencesHandler struct {
	visibilityUseCase *visibility.UseCase
	geminiClient      *gemini.Client
}

func NewPreferencesHandler(visibilityUseCase *visibility.UseCase, geminiClient *gemini.Client) *PreferencesHandler {
	return &PreferencesHandler{
		visibilityUseCase: visibilityUseCase,
		geminiClient:      geminiClient,
	}
}

// GetPreferences handles GET /preferences/me
// @Summary Get visibility preferences
// @Description Returns stored preferences or the all-visible default
// @Tags preferences
// @Security BearerAuth
// @Produce json
// @Success 200 {object} Response
// @Router /preferences/me [get]
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	prefs, err := h.visibilityUseCase.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondOK(c, http.StatusOK, prefs)
}

// UpdatePreferences handles PUT /preferences/me
func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req domain.PreferencesUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, domain.ErrInvalidInput.Error())
		return
	}

	prefs, err := h.visibilityUseCase.SetPreferences(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondOK(c, http.StatusOK, prefs)
}

type fieldVisibilityRequest struct {
	Fields []domain.FieldVisibilityChange `json:"fields" binding:"required,min=1,dive"`
}

// SetFieldVisibility handles PUT /preferences/me/fields
// Unknown field names are ignored rather than rejected.
func (h *PreferencesHandler) SetFieldVisibility(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req fieldVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, domain.ErrInvalidInput.Error())
		return
	}

	prefs, err := h.visibilityUseCase.SetFieldVisibility(c.Request.Context(), userID, req.Fields)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondOK(c, http.StatusOK, prefs)
}

type suggestBioRequest struct {
	DisplayName string   `json:"display_name" binding:"required,min=2,max=100"`
	Highlights  []string `json:"highlights" binding:"omitempty,max=10"`
	City        string   `json:"city" binding:"omitempty,max=100"`
}

// SuggestBio handles POST /preferences/me/suggest-bio
func (h *PreferencesHandler) SuggestBio(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	if h.geminiClient == nil {
		respondError(c, http.StatusServiceUnavailable, "bio suggestions are not configured")
		return
	}

	var req suggestBioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, domain.ErrInvalidInput.Error())
		return
	}

	bios, err := h.geminiClient.SuggestListingBios(c.Request.Context(), req.DisplayName, req.Highlights, req.City)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to generate bio suggestions")
		return
	}
	respondOK(c, http.StatusOK, bios)
}
