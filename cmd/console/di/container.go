package di

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"clinic-console/cmd/console/infrastructure"
	"clinic-console/internal/adapter/cache"
	"clinic-console/internal/adapter/directory"
	ginhandler "clinic-console/internal/adapter/gin/handler"
	"clinic-console/internal/backend"
	"clinic-console/internal/config"
	"clinic-console/internal/session"
	"clinic-console/internal/usecase/admin"
	"clinic-console/internal/usecase/visitor"
	redisclient "clinic-console/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	SessionDB   *gorm.DB
	RedisClient *redisclient.Client
	Backend     *backend.Client
	Session     *session.Store
	VisitorUC   *visitor.Usecase
	AdminUC     *admin.Usecase

	AuthHandler   *ginhandler.AuthHandler
	PublicHandler *ginhandler.PublicHandler
	AdminHandler  *ginhandler.AdminHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Initialize session database
	sessionDB, err := infrastructure.NewSessionDB(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session database: %w", err)
	}

	// Initialize Redis client
	rdb, err := infrastructure.NewRedisClient(cfg, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis: %w", err)
	}

	// Initialize backend client
	api := backend.New(backend.Config{
		BaseURL: cfg.Backend.BaseURL,
		Timeout: time.Duration(cfg.Backend.TimeoutSeconds) * time.Second,
	}, l)

	// Initialize session store
	store, err := session.NewStore(sessionDB, api, l)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}

	// Initialize cache and directory layers
	collectionCache := cache.NewRedisCollectionCache(
		rdb.Client,
		time.Duration(cfg.Redis.CacheTTL)*time.Second,
		l,
	)
	dir := directory.NewCachedDirectory(
		directory.NewBackendDirectory(api, l),
		collectionCache,
		l,
	)

	// Initialize use cases
	visitorUC := visitor.New(api, l)
	adminUC := admin.New(api, dir, l)

	// Initialize Gin handlers
	authHandler := ginhandler.NewAuthHandler(store, l)
	publicHandler := ginhandler.NewPublicHandler(visitorUC, api, l)
	adminHandler := ginhandler.NewAdminHandler(adminUC, l)

	return &Container{
		Config:        cfg,
		Logger:        l,
		SessionDB:     sessionDB,
		RedisClient:   rdb,
		Backend:       api,
		Session:       store,
		VisitorUC:     visitorUC,
		AdminUC:       adminUC,
		AuthHandler:   authHandler,
		PublicHandler: publicHandler,
		AdminHandler:  adminHandler,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	// Close session database connection
	if c.SessionDB != nil {
		if err := infrastructure.CloseSessionDB(c.SessionDB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close session database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
