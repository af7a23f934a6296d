package container

import (
	"context"
	"fmt"
	"time"

	"filmorate-backend/internal/config"
	infracache "filmorate-backend/internal/infrastructure/cache"
	"filmorate-backend/internal/infrastructure/database"
	"filmorate-backend/pkg/cache"
	"filmorate-backend/pkg/logger"

	catalogHandler "filmorate-backend/internal/domains/catalog/handler"
	catalogRepo "filmorate-backend/internal/domains/catalog/repository"
	catalogService "filmorate-backend/internal/domains/catalog/service"
	filmHandler "filmorate-backend/internal/domains/film/handler"
	filmRepo "filmorate-backend/internal/domains/film/repository"
	filmService "filmorate-backend/internal/domains/film/service"
	userHandler "filmorate-backend/internal/domains/user/handler"
	userRepo "filmorate-backend/internal/domains/user/repository"
	userService "filmorate-backend/internal/domains/user/service"
)

// Container is the root of the dependency graph. Initialization order is
// config, infrastructure, repositories, services, handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	UserRepo    userRepo.RepositoryInterface
	FilmRepo    filmRepo.RepositoryInterface
	CatalogRepo catalogRepo.RepositoryInterface

	UserService    userService.ServiceInterface
	FilmService    filmService.ServiceInterface
	CatalogService catalogService.ServiceInterface

	UserHandler    *userHandler.UserHandler
	FilmHandler    *filmHandler.FilmHandler
	CatalogHandler *catalogHandler.CatalogHandler
}

func NewContainer(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	if cfg.Storage.Driver == config.StoragePostgres {
		if err := c.initInfrastructure(); err != nil {
			return nil, err
		}
	} else {
		logger.Info("using in-memory storage, skipping database and cache", nil)
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	db := database.NewPostgresDB(&c.Config.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if c.Config.Redis.Enabled {
		redisCache, err := infracache.NewRedisCache(&c.Config.Redis)
		if err != nil {
			// Cache is an optimization; the catalog repository tolerates a
			// nil cache.
			logger.Warn("redis unavailable, continuing without cache", err)
		} else {
			c.Cache = redisCache
			logger.Info("redis cache connected", nil)
		}
	}

	return nil
}

func (c *Container) initRepositories() {
	if c.Config.Storage.Driver == config.StoragePostgres {
		c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool)
		c.FilmRepo = filmRepo.NewPostgresRepository(c.DB.Pool)
		c.CatalogRepo = catalogRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
		return
	}

	c.UserRepo = userRepo.NewMemoryRepository()
	c.FilmRepo = filmRepo.NewMemoryRepository()
	c.CatalogRepo = catalogRepo.NewMemoryRepository()
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo)
	c.FilmService = filmService.NewFilmService(c.FilmRepo, c.UserRepo, c.CatalogRepo)
	c.CatalogService = catalogService.NewCatalogService(c.CatalogRepo)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.FilmHandler = filmHandler.NewFilmHandler(c.FilmService)
	c.CatalogHandler = catalogHandler.NewCatalogHandler(c.CatalogService)
}

// HealthCheck reports readiness of the backing stores. The in-memory driver
// is always healthy.
func (c *Container) HealthCheck(ctx context.Context) error {
	if c.DB != nil {
		if err := c.DB.HealthCheck(ctx); err != nil {
			return err
		}
	}
	if c.Cache != nil {
		if err := c.Cache.Ping(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Cleanup releases infrastructure resources during shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		logger.Info("database connections closed", nil)
	}
}
