package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
	"github.com/yatradesk/tourism-directory-backend/internal/logger"
	"github.com/yatradesk/tourism-directory-backend/internal/repository"
	"github.com/yatradesk/tourism-directory-backend/internal/usecase/eligibility"
)

type AdminHandler struct {
	eligibilityUseCase *eligibility.UseCase
	guideRepo          repository.GuideRepository
	hotelRepo          repository.HotelRepository
}

func NewAdminHandler(
	eligibilityUseCase *eligibility.UseCase,
	guideRepo repository.GuideRepository,
	hotelRepo repository.HotelRepository,
) *AdminHandler {
	return &AdminHandler{
		eligibilityUseCase: eligibilityUseCase,
		guideRepo:          guideRepo,
		hotelRepo:          hotelRepo,
	}
}

// SyncListings handles POST /admin/listings/sync
// @Summary Re-sync all directory listings
// @Description Runs the best-effort eligibility sweep over all guide and hotel records
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} Response
// @Router /admin/listings/sync [post]
func (h *AdminHandler) SyncListings(c *gin.Context) {
	report, err := h.eligibilityUseCase.SyncAllListings(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	logger.L().Info("directory sync finished",
		zap.Int("synced", report.Synced),
		zap.Int("hidden", report.Hidden),
		zap.Int("errors", len(report.Errors)),
	)
	respondOK(c, http.StatusOK, report)
}

type verifyRequest struct {
	Verified bool `json:"verified"`
}

// VerifyGuide handles PUT /admin/guides/:user_id/verify
func (h *AdminHandler) VerifyGuide(c *gin.Context) {
	h.setVerified(c, h.guideRepo.SetVerified)
}

// VerifyHotel handles PUT /admin/hotels/:user_id/verify
func (h *AdminHandler) VerifyHotel(c *gin.Context) {
	h.setVerified(c, h.hotelRepo.SetVerified)
}

func (h *AdminHandler) setVerified(c *gin.Context, set func(ctx context.Context, userID string, verified bool) error) {
	userID := c.Param("user_id")
	if _, err := uuid.Parse(userID); err != nil {
		respondError(c, http.StatusBadRequest, "invalid user_id")
		return
	}

	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, domain.ErrInvalidInput.Error())
		return
	}

	if err := set(c.Request.Context(), userID, req.Verified); err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			respondError(c, http.StatusNotFound, "profile not found")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondOK(c, http.StatusOK, gin.H{"user_id": userID, "verified": req.Verified})
}
