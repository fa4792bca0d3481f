package controllers

import (
	"runtime"

	"telefono-http-service/internal/domain/services/container"
	"telefono-http-service/internal/error/code"
	"telefono-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// HealthController serves liveness and status endpoints
type HealthController struct {
	Ctx        *gin.Context
	Container  *container.ServiceContainer
	CacheStats func() map[string]interface{}
}

// Ping answers when the process is up
func (h *HealthController) Ping() {
	response.OK(h.Ctx, "pong", gin.H{
		"status": "healthy",
	})
}

// Status pings the database and reports pool statistics
func (h *HealthController) Status() {
	sqlDB, err := h.Container.GetDB().DB()
	if err != nil {
		response.FailWithMessage(h.Ctx, code.ErrDatabase, err.Error(), nil)
		return
	}

	if err := sqlDB.PingContext(h.Ctx.Request.Context()); err != nil {
		response.FailWithMessage(h.Ctx, code.ErrDatabase, "database unreachable: "+err.Error(), nil)
		return
	}

	stats := sqlDB.Stats()
	response.OK(h.Ctx, "healthy", gin.H{
		"database": gin.H{
			"open_connections": stats.OpenConnections,
			"in_use":           stats.InUse,
			"idle":             stats.Idle,
			"wait_count":       stats.WaitCount,
		},
		"goroutines": runtime.NumGoroutine(),
	})
}

// ResponseCacheStats reports the GET response cache content
func (h *HealthController) ResponseCacheStats() {
	if h.CacheStats == nil {
		response.OK(h.Ctx, "response cache disabled", gin.H{"total_items": 0})
		return
	}
	response.OK(h.Ctx, "response cache statistics", h.CacheStats())
}

// HandleHealthFunc returns a gin handler dispatching to a health controller method
func HandleHealthFunc(container *container.ServiceContainer, cacheStats func() map[string]interface{}, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := &HealthController{
			Ctx:        ctx,
			Container:  container,
			CacheStats: cacheStats,
		}

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		case "cacheStats":
			controller.ResponseCacheStats()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method", nil)
		}
	}
}
