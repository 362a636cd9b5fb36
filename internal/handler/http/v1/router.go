package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check доступен без ключа
	api.GET("/system/health", h.healthCheck)

	secured := api.Group("")
	secured.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	// Маршрут для загрузки с геометкой
	secured.POST("/dispatch", h.dispatch)

	sectors := secured.Group("/sectors")
	{
		sectors.GET("", h.listSectors)
		sectors.GET("/resolve", h.resolveSector)
	}

	// Маршруты панели провайдера
	notifications := secured.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.GET("/stats", h.notificationStats)
		notifications.PUT("/:id/read", h.markAsRead)
		notifications.POST("/reload", h.reloadNotifications)
	}
}
