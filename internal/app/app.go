package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"banarts/database"
	"banarts/internal/auth"
	"banarts/internal/config"
	"banarts/internal/email"
	"banarts/internal/handlers"
	"banarts/internal/imageprocessor"
	"banarts/internal/logger"
	"banarts/internal/middleware"
	"banarts/internal/repositories"
	"banarts/internal/routes"
	"banarts/internal/services"
	"banarts/internal/storage"
	"banarts/internal/validator"
	"banarts/internal/workers"
	"banarts/pkg/apperrors"
	"banarts/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// Options are the command line overrides.
type Options struct {
	ConfigPath string
	Port       int
	Env        string
}

// App is a fully wired server. Start runs its background loops.
type App struct {
	Config   *config.Config
	DB       *gorm.DB
	Router   *gin.Engine
	Hub      *ws.Hub
	Services *services.ServiceContainer
	Sweeper  *workers.NotificationSweeper
}

func Run(opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Port != 0 {
		cfg.Server.Port = opts.Port
	}
	if opts.Env != "" {
		cfg.Server.Env = opts.Env
	}

	logger.InitWithFile(cfg.Server.Env, logger.FileOptions{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(cfg.IsDevelopment())
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gormDB); err != nil {
		return err
	}
	if err := database.SeedCategories(gormDB); err != nil {
		return err
	}
	logger.Info("Database connected")

	application, err := New(cfg, gormDB, time.Now)
	if err != nil {
		return err
	}
	if err := application.Bootstrap(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application.Start(ctx)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           application.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			stop()
			return fmt.Errorf("server startup error: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
	application.Stop()

	if sqlDB, err := gormDB.DB(); err == nil {
		sqlDB.Close()
	}
	return nil
}

// New wires repositories, services, handlers and the router around db.
// clock drives notification expiry.
func New(cfg *config.Config, db *gorm.DB, clock func() time.Time) (*App, error) {
	store, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		CloudName: cfg.Storage.Cloudinary.CloudName,
		APIKey:    cfg.Storage.Cloudinary.APIKey,
		APISecret: cfg.Storage.Cloudinary.APISecret,
		Folder:    cfg.Storage.Cloudinary.Folder,
		Endpoint:  cfg.Storage.S3.Endpoint,
		Region:    cfg.Storage.S3.Region,
		Bucket:    cfg.Storage.S3.Bucket,
		AccessKey: cfg.Storage.S3.AccessKey,
		SecretKey: cfg.Storage.S3.SecretKey,
		PublicURL: cfg.Storage.S3.PublicURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	hub := ws.NewHub()
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)

	serviceContainer := initializeServices(cfg, store, hub, tokens, clock)
	appHandlers := initializeHandlers(serviceContainer)

	guard := &handlers.RouteGuard{
		Auth:      middleware.AuthMiddleware(tokens),
		Admin:     middleware.AdminOnly(),
		Permit:    middleware.RequirePermission,
		RateLimit: middleware.RateLimitMiddleware(middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)),
	}

	ginRouter := initializeGinRouter(cfg, db)
	routes.RegisterRoutes(ginRouter, appHandlers, ws.NewWebSocketHandler(hub), guard)

	return &App{
		Config:   cfg,
		DB:       db,
		Router:   ginRouter,
		Hub:      hub,
		Services: serviceContainer,
		Sweeper:  workers.NewNotificationSweeper(db, serviceContainer.NotificationService, cfg.Notifications.SweepInterval),
	}, nil
}

// Bootstrap seeds the first admin and optionally empties the notification feed.
func (a *App) Bootstrap() error {
	if err := a.seedFirstAdmin(); err != nil {
		return fmt.Errorf("failed to seed first admin user: %w", err)
	}

	if a.Config.Notifications.ClearOnStartup {
		deleted, err := a.Services.NotificationService.ClearNotifications(a.DB)
		if err != nil {
			return fmt.Errorf("failed to clear notifications: %w", err)
		}
		logger.Info("Notifications cleared on startup", "deleted", deleted)
	}
	return nil
}

// Start launches the websocket hub and the expiry sweeper.
func (a *App) Start(ctx context.Context) {
	go a.Hub.Run(ctx)
	a.Sweeper.Start(ctx)
}

// Stop waits for the background loops after their context is cancelled and
// drains pending notifications.
func (a *App) Stop() {
	<-a.Hub.Done()
	a.Sweeper.Wait()
	a.Services.NotificationService.Wait()
}

func initializeServices(
	cfg *config.Config,
	store storage.Storage,
	hub *ws.Hub,
	tokens *auth.TokenManager,
	clock func() time.Time,
) *services.ServiceContainer {
	// --- repositories ---
	userRepo := repositories.NewUserRepository()
	notificationRepo := repositories.NewNotificationRepository()
	artistRepo := repositories.NewArtistRepository()
	artistCategoryRepo := repositories.NewArtistCategoryRepository()
	artworkRepo := repositories.NewArtworkRepository()
	artworkCategoryRepo := repositories.NewArtworkCategoryRepository()
	galleryRepo := repositories.NewGalleryRepository()
	featuredRepo := repositories.NewGalleryFeaturedArtworkRepository()
	museumRepo := repositories.NewMuseumRepository()
	artifactRepo := repositories.NewArtifactRepository()
	eventRepo := repositories.NewEventRepository()
	videoRepo := repositories.NewVideoRepository()
	collectionRepo := repositories.NewCollectionRepository()
	thumbnailRepo := repositories.NewThumbnailRepository()
	browseGalleryRepo := repositories.NewBrowseGalleryRepository()
	browseMuseumRepo := repositories.NewBrowseMuseumRepository()
	highlightRepo := repositories.NewCuratedHighlightRepository()
	featuredTileRepo := repositories.NewFeaturedArtworkRepository()
	engagementRepo := repositories.NewEngagementRepository()
	analyticsRepo := repositories.NewAnalyticsRepository()

	// --- services ---
	notificationService := services.NewNotificationService(notificationRepo, hub, services.NotificationOptions{
		RetentionWindow: cfg.Notifications.RetentionWindow,
		PageSize:        cfg.Notifications.PageSize,
		Clock:           clock,
	})
	uploadService := services.NewUploadService(
		store,
		imageprocessor.NewProcessor(cfg.Upload.ImageQuality, cfg.Upload.MaxDimension),
		services.UploadConfig{
			MaxSize:      cfg.Upload.MaxSize,
			AllowedTypes: cfg.Upload.AllowedTypes,
		},
	)

	accountMailer := email.NewAccountMailer(
		email.NewSender(email.Config{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUser,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		}),
		email.NewTemplateManager(),
		clock,
	)

	return &services.ServiceContainer{
		NotificationService: notificationService,
		UploadService:       uploadService,
		AuthService:         services.NewAuthService(userRepo, tokens, accountMailer),
		UserService:         services.NewUserService(userRepo, uploadService),
		ArtistService:       services.NewArtistService(artistRepo, artistCategoryRepo, notificationService, uploadService),
		ArtworkService:      services.NewArtworkService(artworkRepo, artworkCategoryRepo, notificationService, uploadService),
		GalleryService:      services.NewGalleryService(galleryRepo, featuredRepo, notificationService, uploadService),
		MuseumService:       services.NewMuseumService(museumRepo, artifactRepo, notificationService, uploadService),
		EventService:        services.NewEventService(eventRepo, notificationService, uploadService),
		MediaService:        services.NewMediaService(videoRepo, collectionRepo, notificationService, uploadService),
		ShowcaseService: services.NewShowcaseService(
			thumbnailRepo, browseGalleryRepo, browseMuseumRepo, highlightRepo, featuredTileRepo, uploadService,
		),
		EngagementService:   services.NewEngagementService(engagementRepo, artistRepo, artworkRepo),
		SearchService:       services.NewSearchService(artworkRepo, artistRepo, museumRepo, galleryRepo),
		AnalyticsService:    services.NewAnalyticsService(analyticsRepo),
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(validator.New())

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, services.AuthService),
		UserHandler:         handlers.NewUserHandler(baseHandler, services.UserService),
		UploadHandler:       handlers.NewUploadHandler(baseHandler, services.UserService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, services.NotificationService),
		ArtistHandler:       handlers.NewArtistHandler(baseHandler, services.ArtistService),
		ArtworkHandler:      handlers.NewArtworkHandler(baseHandler, services.ArtworkService),
		GalleryHandler:      handlers.NewGalleryHandler(baseHandler, services.GalleryService),
		MuseumHandler:       handlers.NewMuseumHandler(baseHandler, services.MuseumService),
		EventHandler:        handlers.NewEventHandler(baseHandler, services.EventService),
		MediaHandler:        handlers.NewMediaHandler(baseHandler, services.MediaService),
		ShowcaseHandler:     handlers.NewShowcaseHandler(baseHandler, services.ShowcaseService),
		EngagementHandler:   handlers.NewEngagementHandler(baseHandler, services.EngagementService),
		SearchHandler:       handlers.NewSearchHandler(baseHandler, services.SearchService),
		AnalyticsHandler:    handlers.NewAnalyticsHandler(baseHandler, services.AnalyticsService),
		SystemHandler:       handlers.NewSystemHandler(baseHandler),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = cfg.Upload.MaxSize
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))

	if cfg.Storage.Type == "" || cfg.Storage.Type == "local" {
		router.Static(cfg.Storage.BaseURL, cfg.Storage.BasePath)
	}
	return router
}

// seedFirstAdmin runs in a transaction so a half created admin never stays behind.
func (a *App) seedFirstAdmin() error {
	admin := a.Config.Admin
	if admin.Email == "" || admin.Password == "" {
		logger.Warn("admin.email or admin.password is not set. Skipping admin seeding.")
		return nil
	}

	return a.DB.Transaction(func(tx *gorm.DB) error {
		created, err := a.Services.AuthService.SeedFirstAdmin(tx, services.AdminSeed{
			Email:     admin.Email,
			Password:  admin.Password,
			FirstName: admin.FirstName,
			LastName:  admin.LastName,
		})
		if err != nil {
			return err
		}
		if created {
			logger.Info("Created first admin user", "email", admin.Email)
		} else {
			logger.Info("Admin user already exists. Skipping creation.", "email", admin.Email)
		}
		return nil
	})
}
