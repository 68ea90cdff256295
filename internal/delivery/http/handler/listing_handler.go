package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
	"github.com/yatradesk/tourism-directory-backend/internal/usecase/eligibility"
	"github.com/yatradesk/tourism-directory-backend/internal/usecase/visibility"
)

type ListingHandler struct {
	eligibilityUseCase *eligibility.UseCase
	visibilityUseCase  *visibility.UseCase
}

func NewListingHandler(eligibilityUseCase *eligibility.UseCase, visibilityUseCase *visibility.UseCase) *ListingHandler {
	return &ListingHandler{
		eligibilityUseCase: eligibilityUseCase,
		visibilityUseCase:  visibilityUseCase,
	}
}

type createListingRequest struct {
	PassionType domain.PassionType `json:"passion_type" binding:"required,passiontype"`
	Keywords    []string           `json:"keywords" binding:"omitempty,max=20"`
}

// CreateListing handles POST /listings
// @Summary Create or refresh a directory listing
// @Description Upserts the caller's (user, passion) listing once the eligibility gate passes
// @Tags listings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body createListingRequest true "Listing data"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Failure 422 {object} Response
// @Router /listings [post]
func (h *ListingHandler) CreateListing(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, domain.ErrInvalidInput.Error())
		return
	}
	if !req.PassionType.Listable() {
		respondError(c, http.StatusBadRequest, "passion type cannot be listed")
		return
	}

	listing, err := h.eligibilityUseCase.CreateListing(c.Request.Context(), userID, req.PassionType, req.Keywords)
	if err != nil {
		if errors.Is(err, domain.ErrIncompleteRegistration) {
			respondError(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		if errors.Is(err, domain.ErrUnknownPassionType) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondOK(c, http.StatusCreated, listing)
}

// GetMyListings handles GET /listings/me
func (h *ListingHandler) GetMyListings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	listings, err := h.visibilityUseCase.GetListings(c.Request.Context(), userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	visible := false
	for _, listing := range listings {
		if listing.IsVisible {
			visible = true
			break
		}
	}
	respondOK(c, http.StatusOK, gin.H{"listings": listings, "is_visible": visible})
}

type setVisibilityRequest struct {
	Visible     bool                `json:"visible"`
	PassionType *domain.PassionType `json:"passion_type"`
}

// SetVisibility handles PUT /listings/visibility
func (h *ListingHandler) SetVisibility(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req setVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, domain.ErrInvalidInput.Error())
		return
	}

	listings, err := h.visibilityUseCase.SetListingVisibility(c.Request.Context(), userID, req.Visible, req.PassionType)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			respondError(c, http.StatusNotFound, "listing not found")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondOK(c, http.StatusOK, listings)
}

// DeactivateAccount handles POST /account/deactivate
func (h *ListingHandler) DeactivateAccount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.visibilityUseCase.DeactivateAccount(c.Request.Context(), userID); err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondOK(c, http.StatusOK, gin.H{"deactivated": true})
}
