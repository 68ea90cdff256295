package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yatradesk/tourism-directory-backend/internal/usecase/visibility"
)

type DirectoryHandler struct {
	visibilityUseCase *visibility.UseCase
}

func NewDirectoryHandler(visibilityUseCase *visibility.UseCase) *DirectoryHandler {
	return &DirectoryHandler{visibilityUseCase: visibilityUseCase}
}

// GetPublicProfile handles GET /directory/:user_id
// @Summary Get a public profile
// @Description Returns the preference-redacted public view of a directory member
// @Tags directory
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /directory/{user_id} [get]
func (h *DirectoryHandler) GetPublicProfile(c *gin.Context) {
	userID := c.Param("user_id")
	if _, err := uuid.Parse(userID); err != nil {
		respondError(c, http.StatusBadRequest, "invalid user_id")
		return
	}

	profile, err := h.visibilityUseCase.BuildPublicProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if profile == nil {
		respondError(c, http.StatusNotFound, "profile not found")
		return
	}
	respondOK(c, http.StatusOK, profile)
}
