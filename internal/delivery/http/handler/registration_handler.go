package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
	"github.com/yatradesk/tourism-directory-backend/internal/usecase/registration"
)

type RegistrationHandler struct {
	registrationUseCase *registration.UseCase
}

func NewRegistrationHandler(registrationUseCase *registration.UseCase) *RegistrationHandler {
	return &RegistrationHandler{registrationUseCase: registrationUseCase}
}

// CreateGuideProfile handles POST /profiles/guide
func (h *RegistrationHandler) CreateGuideProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req registration.CreateGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, domain.ErrInvalidInput.Error())
		return
	}

	guide, err := h.registrationUseCase.CreateGuide(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondOK(c, http.StatusCreated, guide)
}

// UpdateGuideProfile handles PUT /profiles/guide
func (h *RegistrationHandler) UpdateGuideProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req registration.UpdateGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, domain.ErrInvalidInput.Error())
		return
	}

	guide, err := h.registrationUseCase.UpdateGuide(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			respondError(c, http.StatusNotFound, "profile not found")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondOK(c, http.StatusOK, guide)
}

// CreateHotelProfile handles POST /profiles/hotel
func (h *RegistrationHandler) CreateHotelProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req registration.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, domain.ErrInvalidInput.Error())
		return
	}

	hotel, err := h.registrationUseCase.CreateHotel(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondOK(c, http.StatusCreated, hotel)
}

// UpdateHotelProfile handles PUT /profiles/hotel
func (h *RegistrationHandler) UpdateHotelProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req registration.UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, domain.ErrInvalidInput.Error())
		return
	}

	hotel, err := h.registrationUseCase.UpdateHotel(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			respondError(c, http.StatusNotFound, "profile not found")
			return
		}
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondOK(c, http.StatusOK, hotel)
}

// CreateTouristProfile handles POST /profiles/tourist
func (h *RegistrationHandler) CreateTouristProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req registration.CreateTouristRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, domain.ErrInvalidInput.Error())
		return
	}

	tourist, err := h.registrationUseCase.CreateTourist(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}
	respondOK(c, http.StatusCreated, tourist)
}
