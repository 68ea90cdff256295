package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/yatradesk/tourism-directory-backend/internal/config"
	delivery "github.com/yatradesk/tourism-directory-backend/internal/delivery/http"
	"github.com/yatradesk/tourism-directory-backend/internal/delivery/http/handler"
	"github.com/yatradesk/tourism-directory-backend/internal/delivery/http/middleware"
	"github.com/yatradesk/tourism-directory-backend/internal/infrastructure/cache"
	"github.com/yatradesk/tourism-directory-backend/internal/infrastructure/database"
	"github.com/yatradesk/tourism-directory-backend/internal/infrastructure/gemini"
	"github.com/yatradesk/tourism-directory-backend/internal/infrastructure/server"
	"github.com/yatradesk/tourism-directory-backend/internal/logger"
	"github.com/yatradesk/tourism-directory-backend/internal/repository/postgres"
	"github.com/yatradesk/tourism-directory-backend/internal/usecase/eligibility"
	"github.com/yatradesk/tourism-directory-backend/internal/usecase/registration"
	"github.com/yatradesk/tourism-directory-backend/internal/usecase/search"
	"github.com/yatradesk/tourism-directory-backend/internal/usecase/visibility"
)

// Container wires the application together.
type Container struct {
	Config *config.Config
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
	Gemini *gemini.Client
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Redis backs the suggestion cache; the service runs without it.
	var suggestionCache search.SuggestionCache
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.L().Warn("redis unavailable, suggestion caching disabled", zap.Error(err))
		redisClient = nil
	} else {
		suggestionCache = cache.NewSuggestionCache(redisClient)
	}

	// Gemini powers optional bio suggestions; a missing key is tolerated.
	var geminiClient *gemini.Client
	if cfg.GeminiAPIKey != "" {
		geminiClient, err = gemini.NewClient(cfg.GeminiAPIKey)
		if err != nil {
			logger.L().Warn("gemini client unavailable, bio suggestions disabled", zap.Error(err))
			geminiClient = nil
		}
	}

	// Initialize repositories
	guideRepo := postgres.NewGuideRepository(db)
	hotelRepo := postgres.NewHotelRepository(db)
	touristRepo := postgres.NewTouristRepository(db)
	listingRepo := postgres.NewListingRepository(db)
	prefsRepo := postgres.NewPreferencesRepository(db)
	passionRepo := postgres.NewPassionRepository(db)

	// Initialize use cases
	eligibilityUseCase := eligibility.NewUseCase(guideRepo, hotelRepo, listingRepo)
	visibilityUseCase := visibility.NewUseCase(prefsRepo, listingRepo, passionRepo, guideRepo, hotelRepo, touristRepo)
	registrationUseCase := registration.NewUseCase(guideRepo, hotelRepo, touristRepo, passionRepo)
	searchEngine := search.NewEngine(guideRepo, hotelRepo, listingRepo, suggestionCache)

	// Initialize handlers
	searchHandler := handler.NewSearchHandler(searchEngine)
	directoryHandler := handler.NewDirectoryHandler(visibilityUseCase)
	listingHandler := handler.NewListingHandler(eligibilityUseCase, visibilityUseCase)
	preferencesHandler := handler.NewPreferencesHandler(visibilityUseCase, geminiClient)
	registrationHandler := handler.NewRegistrationHandler(registrationUseCase)
	adminHandler := handler.NewAdminHandler(eligibilityUseCase, guideRepo, hotelRepo)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Initialize router
	router := delivery.NewRouter(
		searchHandler,
		directoryHandler,
		listingHandler,
		preferencesHandler,
		registrationHandler,
		adminHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter)

	return &Container{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
		Gemini: geminiClient,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logger.L().Warn("error closing redis", zap.Error(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
