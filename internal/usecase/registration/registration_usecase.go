package registration

import (
	"context"
	"fmt"

	"github.com/yatradesk/tourism-directory-backend/internal/domain"
	"github.com/yatradesk/tourism-directory-backend/internal/repository"
)

// UseCase owns creation and edits of role-specific profile records. Listing
// eligibility is decided elsewhere; registration only stores what the user
// submitted and records the passion.
type UseCase struct {
	guideRepo   repository.GuideRepository
	hotelRepo   repository.HotelRepository
	touristRepo repository.TouristRepository
	passionRepo repository.PassionRepository
}

func NewUseCase(
	guideRepo repository.GuideRepository,
	hotelRepo repository.HotelRepository,
	touristRepo repository.TouristRepository,
	passionRepo repository.PassionRepository,
) *UseCase {
	return &UseCase{
		guideRepo:   guideRepo,
		hotelRepo:   hotelRepo,
		touristRepo: touristRepo,
		passionRepo: passionRepo,
	}
}

// CreateGuideRequest carries the tour guide registration form fields.
type CreateGuideRequest struct {
	FullName        string   `json:"full_name" binding:"required,min=2,max=100"`
	Phone           string   `json:"phone" binding:"required,max=20"`
	Email           *string  `json:"email" binding:"omitempty,email"`
	Website         *string  `json:"website" binding:"omitempty,url"`
	Bio             *string  `json:"bio" binding:"omitempty,max=2000"`
	Address         string   `json:"address" binding:"required,max=300"`
	City            *string  `json:"city" binding:"omitempty,max=100"`
	State           *string  `json:"state" binding:"omitempty,max=100"`
	Specialties     []string `json:"specialties" binding:"omitempty,max=20"`
	Languages       []string `json:"languages" binding:"omitempty,max=20"`
	Certifications  []string `json:"certifications" binding:"omitempty,max=20"`
	HourlyRate      *float64 `json:"hourly_rate" binding:"omitempty,min=0"`
	ExperienceYears *int     `json:"experience_years" binding:"omitempty,min=0,max=80"`
}

func (uc *UseCase) CreateGuide(ctx context.Context, userID string, req *CreateGuideRequest) (*domain.TourGuide, error) {
	guide := &domain.TourGuide{
		UserID:          userID,
		FullName:        req.FullName,
		Phone:           req.Phone,
		Email:           req.Email,
		Website:         req.Website,
		Bio:             req.Bio,
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		Specialties:     req.Specialties,
		Languages:       req.Languages,
		Certifications:  req.Certifications,
		HourlyRate:      req.HourlyRate,
		ExperienceYears: req.ExperienceYears,
		IsActive:        true,
	}
	if err := uc.guideRepo.Create(ctx, guide); err != nil {
		return nil, fmt.Errorf("failed to create guide profile: %w", err)
	}
	if err := uc.passionRepo.Add(ctx, userID, domain.PassionTourGuide); err != nil {
		return nil, fmt.Errorf("failed to record passion: %w", err)
	}
	return guide, nil
}

// UpdateGuideRequest updates only the supplied fields.
type UpdateGuideRequest struct {
	FullName        *string   `json:"full_name" binding:"omitempty,min=2,max=100"`
	Phone           *string   `json:"phone" binding:"omitempty,max=20"`
	Email           *string   `json:"email" binding:"omitempty,email"`
	Website         *string   `json:"website" binding:"omitempty,url"`
	Bio             *string   `json:"bio" binding:"omitempty,max=2000"`
	Address         *string   `json:"address" binding:"omitempty,max=300"`
	City            *string   `json:"city" binding:"omitempty,max=100"`
	State           *string   `json:"state" binding:"omitempty,max=100"`
	Specialties     *[]string `json:"specialties" binding:"omitempty,max=20"`
	Languages       *[]string `json:"languages" binding:"omitempty,max=20"`
	Certifications  *[]string `json:"certifications" binding:"omitempty,max=20"`
	HourlyRate      *float64  `json:"hourly_rate" binding:"omitempty,min=0"`
	ExperienceYears *int      `json:"experience_years" binding:"omitempty,min=0,max=80"`
}

func (uc *UseCase) UpdateGuide(ctx context.Context, userID string, req *UpdateGuideRequest) (*domain.TourGuide, error) {
	guide, err := uc.guideRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		guide.FullName = *req.FullName
	}
	if req.Phone != nil {
		guide.Phone = *req.Phone
	}
	if req.Email != nil {
		guide.Email = req.Email
	}
	if req.Website != nil {
		guide.Website = req.Website
	}
	if req.Bio != nil {
		guide.Bio = req.Bio
	}
	if req.Address != nil {
		guide.Address = *req.Address
	}
	if req.City != nil {
		guide.City = req.City
	}
	if req.State != nil {
		guide.State = req.State
	}
	if req.Specialties != nil {
		guide.Specialties = *req.Specialties
	}
	if req.Languages != nil {
		guide.Languages = *req.Languages
	}
	if req.Certifications != nil {
		guide.Certifications = *req.Certifications
	}
	if req.HourlyRate != nil {
		guide.HourlyRate = req.HourlyRate
	}
	if req.ExperienceYears != nil {
		guide.ExperienceYears = req.ExperienceYears
	}

	if err := uc.guideRepo.Update(ctx, guide); err != nil {
		return nil, fmt.Errorf("failed to update guide profile: %w", err)
	}
	return guide, nil
}

// CreateHotelRequest carries the hotel partner registration form fields.
type CreateHotelRequest struct {
	CompanyName string   `json:"company_name" binding:"required,min=2,max=150"`
	Phone       *string  `json:"phone" binding:"omitempty,max=20"`
	Email       *string  `json:"email" binding:"omitempty,email"`
	Website     *string  `json:"website" binding:"omitempty,url"`
	Bio         *string  `json:"bio" binding:"omitempty,max=2000"`
	Address     string   `json:"address" binding:"required,max=300"`
	City        *string  `json:"city" binding:"omitempty,max=100"`
	State       *string  `json:"state" binding:"omitempty,max=100"`
	HotelType   string   `json:"hotel_type" binding:"required,max=50"`
	Amenities   []string `json:"amenities" binding:"omitempty,max=50"`
	RoomTypes   []string `json:"room_types" binding:"omitempty,max=20"`
	Images      []string `json:"images" binding:"omitempty,max=20"`
	PriceMin    *float64 `json:"price_min" binding:"omitempty,min=0"`
	PriceMax    *float64 `json:"price_max" binding:"omitempty,min=0"`
}

func (uc *UseCase) CreateHotel(ctx context.Context, userID string, req *CreateHotelRequest) (*domain.HotelPartner, error) {
	hotel := &domain.HotelPartner{
		UserID:      userID,
		CompanyName: req.CompanyName,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		Bio:         req.Bio,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		HotelType:   req.HotelType,
		Amenities:   req.Amenities,
		RoomTypes:   req.RoomTypes,
		Images:      req.Images,
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		IsActive:    true,
	}
	if err := uc.hotelRepo.Create(ctx, hotel); err != nil {
		return nil, fmt.Errorf("failed to create hotel profile: %w", err)
	}
	if err := uc.passionRepo.Add(ctx, userID, domain.PassionHotelPartner); err != nil {
		return nil, fmt.Errorf("failed to record passion: %w", err)
	}
	return hotel, nil
}

// UpdateHotelRequest updates only the supplied fields.
type UpdateHotelRequest struct {
	CompanyName *string   `json:"company_name" binding:"omitempty,min=2,max=150"`
	Phone       *string   `json:"phone" binding:"omitempty,max=20"`
	Email       *string   `json:"email" binding:"omitempty,email"`
	Website     *string   `json:"website" binding:"omitempty,url"`
	Bio         *string   `json:"bio" binding:"omitempty,max=2000"`
	Address     *string   `json:"address" binding:"omitempty,max=300"`
	City        *string   `json:"city" binding:"omitempty,max=100"`
	State       *string   `json:"state" binding:"omitempty,max=100"`
	HotelType   *string   `json:"hotel_type" binding:"omitempty,max=50"`
	Amenities   *[]string `json:"amenities" binding:"omitempty,max=50"`
	RoomTypes   *[]string `json:"room_types" binding:"omitempty,max=20"`
	Images      *[]string `json:"images" binding:"omitempty,max=20"`
	PriceMin    *float64  `json:"price_min" binding:"omitempty,min=0"`
	PriceMax    *float64  `json:"price_max" binding:"omitempty,min=0"`
}

func (uc *UseCase) UpdateHotel(ctx context.Context, userID string, req *UpdateHotelRequest) (*domain.HotelPartner, error) {
	hotel, err := uc.hotelRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		hotel.CompanyName = *req.CompanyName
	}
	if req.Phone != nil {
		hotel.Phone = req.Phone
	}
	if req.Email != nil {
		hotel.Email = req.Email
	}
	if req.Website != nil {
		hotel.Website = req.Website
	}
	if req.Bio != nil {
		hotel.Bio = req.Bio
	}
	if req.Address != nil {
		hotel.Address = *req.Address
	}
	if req.City != nil {
		hotel.City = req.City
	}
	if req.State != nil {
		hotel.State = req.State
	}
	if req.HotelType != nil {
		hotel.HotelType = *req.HotelType
	}
	if req.Amenities != nil {
		hotel.Amenities = *req.Amenities
	}
	if req.RoomTypes != nil {
		hotel.RoomTypes = *req.RoomTypes
	}
	if req.Images != nil {
		hotel.Images = *req.Images
	}
	if req.PriceMin != nil {
		hotel.PriceMin = req.PriceMin
	}
	if req.PriceMax != nil {
		hotel.PriceMax = req.PriceMax
	}

	if err := uc.hotelRepo.Update(ctx, hotel); err != nil {
		return nil, fmt.Errorf("failed to update hotel profile: %w", err)
	}
	return hotel, nil
}

// CreateTouristRequest carries the tourist registration form fields.
type CreateTouristRequest struct {
	FullName  string   `json:"full_name" binding:"required,min=2,max=100"`
	Phone     *string  `json:"phone" binding:"omitempty,max=20"`
	Email     *string  `json:"email" binding:"omitempty,email"`
	City      *string  `json:"city" binding:"omitempty,max=100"`
	State     *string  `json:"state" binding:"omitempty,max=100"`
	Interests []string `json:"interests" binding:"omitempty,max=20"`
}

func (uc *UseCase) CreateTourist(ctx context.Context, userID string, req *CreateTouristRequest) (*domain.Tourist, error) {
	tourist := &domain.Tourist{
		UserID:    userID,
		FullName:  req.FullName,
		Phone:     req.Phone,
		Email:     req.Email,
		City:      req.City,
		State:     req.State,
		Interests: req.Interests,
		IsActive:  true,
	}
	if err := uc.touristRepo.Create(ctx, tourist); err != nil {
		return nil, fmt.Errorf("failed to create tourist profile: %w", err)
	}
	if err := uc.passionRepo.Add(ctx, userID, domain.PassionTourist); err != nil {
		return nil, fmt.Errorf("failed to record passion: %w", err)
	}
	return tourist, nil
}
