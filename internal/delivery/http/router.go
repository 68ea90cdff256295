package http

import (
	"github.com/gin-gonic/gin"

	"github.com/yatradesk/tourism-directory-backend/internal/delivery/http/handler"
	"github.com/yatradesk/tourism-directory-backend/internal/delivery/http/middleware"
)

type Router struct {
	searchHandler       *handler.SearchHandler
	directoryHandler    *handler.DirectoryHandler
	listingHandler      *handler.ListingHandler
	preferencesHandler  *handler.PreferencesHandler
	registrationHandler *handler.RegistrationHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
}

func NewRouter(
	searchHandler *handler.SearchHandler,
	directoryHandler *handler.DirectoryHandler,
	listingHandler *handler.ListingHandler,
	preferencesHandler *handler.PreferencesHandler,
	registrationHandler *handler.RegistrationHandler,
	adminHandler *handler.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		searchHandler:       searchHandler,
		directoryHandler:    directoryHandler,
		listingHandler:      listingHandler,
		preferencesHandler:  preferencesHandler,
		registrationHandler: registrationHandler,
		adminHandler:        adminHandler,
		authMiddleware:      authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	registerValidators()

	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Public directory surface
		search := v1.Group("/search")
		{
			search.POST("/guides", r.searchHandler.SearchGuides)
			search.POST("/hotels", r.searchHandler.SearchHotels)
			search.GET("/suggestions", r.searchHandler.GetSuggestions)
		}
		v1.GET("/directory/:user_id", r.directoryHandler.GetPublicProfile)

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			profiles := protected.Group("/profiles")
			{
				profiles.POST("/guide", r.registrationHandler.CreateGuideProfile)
				profiles.PUT("/guide", r.registrationHandler.UpdateGuideProfile)
				profiles.POST("/hotel", r.registrationHandler.CreateHotelProfile)
				profiles.PUT("/hotel", r.registrationHandler.UpdateHotelProfile)
				profiles.POST("/tourist", r.registrationHandler.CreateTouristProfile)
			}

			listings := protected.Group("/listings")
			{
				listings.POST("", r.listingHandler.CreateListing)
				listings.GET("/me", r.listingHandler.GetMyListings)
				listings.PUT("/visibility", r.listingHandler.SetVisibility)
			}

			preferences := protected.Group("/preferences")
			{
				preferences.GET("/me", r.preferencesHandler.GetPreferences)
				preferences.PUT("/me", r.preferencesHandler.UpdatePreferences)
				preferences.PUT("/me/fields", r.preferencesHandler.SetFieldVisibility)
				preferences.POST("/me/suggest-bio", r.preferencesHandler.SuggestBio)
			}

			protected.POST("/account/deactivate", r.listingHandler.DeactivateAccount)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(r.authMiddleware.RequireAdmin())
		{
			admin.POST("/listings/sync", r.adminHandler.SyncListings)
			admin.PUT("/guides/:user_id/verify", r.adminHandler.VerifyGuide)
			admin.PUT("/hotels/:user_id/verify", r.adminHandler.VerifyHotel)
		}
	}

	return router
}
