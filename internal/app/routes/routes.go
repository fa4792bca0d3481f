package routes

import (
	"net/http"
	"strings"

	_ "telefono-http-service/docs"
	"telefono-http-service/internal/app/controllers"
	"telefono-http-service/internal/app/metrics"
	"telefono-http-service/internal/app/middleware"
	"telefono-http-service/internal/domain/services/container"
	"telefono-http-service/internal/error/code"
	"telefono-http-service/internal/error/response"
	"telefono-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter builds the gin engine with every route registered
func SetupRouter(db *gorm.DB, cfg *config.Config, redisClient *redis.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.Middleware())

	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route "+c.Request.URL.Path+" does not exist")
	})
	r.NoMethod(func(c *gin.Context) {
		response.FailWithMessage(c, code.ErrValidation, "method "+c.Request.Method+" is not allowed", nil)
	})

	serviceContainer := container.NewServiceContainer(db, cfg, redisClient)
	responseCache := middleware.NewResponseCache(cfg.CacheTTL, 0)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", metrics.Handler())

	registerRoutes(r, serviceContainer, responseCache)
	return r
}

// NewHandler wraps the engine with the CORS policy of the configuration
func NewHandler(engine *gin.Engine, cfg *config.Config) http.Handler {
	origins := make([]string, 0, len(cfg.CORSAllowedOrigins))
	for _, origin := range cfg.CORSAllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization", "Accept", "Origin", middleware.RequestIDHeader},
		ExposedHeaders: []string{"Location", middleware.RequestIDHeader, "Retry-After"},
	}).Handler(engine)
}

func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
	responseCache *middleware.ResponseCache,
) {
	cfg := container.Config()

	r.GET("/ping", controllers.HandleHealthFunc(container, responseCache.Stats, "ping"))
	r.GET("/health", controllers.HandleHealthFunc(container, responseCache.Stats, "status"))
	r.GET("/health/cache-stats", controllers.HandleHealthFunc(container, responseCache.Stats, "cacheStats"))

	api := r.Group("/")
	api.Use(middleware.IPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))

	read := responseCache.Middleware()
	write := []gin.HandlerFunc{
		middleware.Authenticate(container.Tokens()),
		responseCache.PurgeOnWrite(),
	}

	telefonosGroup := api.Group("/telefonos")
	{
		telefonosGroup.GET("", read, controllers.HandleTelefonoFunc(container, "getTelefonos"))
		telefonosGroup.GET("/:id", read, controllers.HandleTelefonoFunc(container, "getTelefono"))
		telefonosGroup.POST("", append(write, controllers.HandleTelefonoFunc(container, "createTelefono"))...)
		telefonosGroup.PUT("/:id", append(write, controllers.HandleTelefonoFunc(container, "updateTelefono"))...)
		telefonosGroup.DELETE("/:id", append(write, controllers.HandleTelefonoFunc(container, "deleteTelefono"))...)
	}

	usuariosGroup := api.Group("/usuarios")
	{
		usuariosGroup.GET("", read, controllers.HandleUsuarioFunc(container, "getUsuarios"))
		usuariosGroup.GET("/:id", read, controllers.HandleUsuarioFunc(container, "getUsuario"))
		usuariosGroup.POST("", append(write, controllers.HandleUsuarioFunc(container, "createUsuario"))...)
	}
}
