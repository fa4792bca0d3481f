package container

import (
	"sync"

	"telefono-http-service/internal/domain/services"
	"telefono-http-service/internal/infrastructure/cache"
	"telefono-http-service/internal/infrastructure/config"
	Logger "telefono-http-service/pkg/logger"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ServiceContainer builds the services once at start up and hands them to the
// controllers
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	redis  *redis.Client

	telefonoService services.InterfaceTelefonoService
	usuarioService  services.InterfaceUsuarioService
	userLookup      services.UserLookup
	jwtService      services.InterfaceJWTService

	mu sync.RWMutex
}

// NewServiceContainer creates a new service container. redisClient may be nil.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}

	if cfg == nil {
		panic("configuration is nil")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		redis:  redisClient,
	}
	container.initializeServices()
	return container
}

func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.telefonoService = services.NewTelefonoService(c.db, c.config)
	c.usuarioService = services.NewUsuarioService(c.db, c.config)
	c.jwtService = services.NewJWTService(c.config)

	if c.config.UserServiceURL != "" {
		Logger.Info("checking usuarios against remote user service %s", c.config.UserServiceURL)
		c.userLookup = services.NewUserClient(c.config.UserServiceURL, cache.NewRedisRepository(c.redis), c.config.UserCacheTTL)
	} else {
		c.userLookup = c.usuarioService
	}
}

// Telefonos returns the phone record store
func (c *ServiceContainer) Telefonos() services.InterfaceTelefonoService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.telefonoService
}

// Usuarios returns the local user service
func (c *ServiceContainer) Usuarios() services.InterfaceUsuarioService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.usuarioService
}

// UserLookup returns the user existence check used when creating phones
func (c *ServiceContainer) UserLookup() services.UserLookup {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userLookup
}

// Tokens returns the bearer token service, nil when authentication is disabled
func (c *ServiceContainer) Tokens() services.InterfaceJWTService {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.jwtService
}

// Config returns the application configuration
func (c *ServiceContainer) Config() *config.Config {
	return c.config
}

// GetDB returns the database connection
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
