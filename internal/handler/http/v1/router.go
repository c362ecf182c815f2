package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршрут Health-check, без ключа
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("")
	protected.Use(APIKeyAuthMiddleware(h.cfg, h.logger))

	// Камеры и телеметрия
	cameras := protected.Group("/cameras")
	{
		cameras.GET("", h.listCameras)
		cameras.GET("/:id/telemetry", h.getTelemetry)
		cameras.PUT("/:id/focus", h.focusCamera)
		cameras.DELETE("/focus", h.unfocusCameras)
	}

	// Журнал инцидентов и тревоги
	protected.GET("/incidents", h.listIncidents)
	alerts := protected.Group("/alerts")
	{
		alerts.GET("/current", h.getCurrentAlert)
		alerts.POST("/current/dismiss", h.dismissAlert)
	}
	protected.GET("/threat", h.getThreat)
	protected.GET("/stats", h.getStats)

	// Расследования по номеру
	forensic := protected.Group("/forensic")
	{
		forensic.POST("/search", h.searchPlate)
		forensic.GET("/case", h.getCase)
		forensic.PUT("/selection", h.selectSighting)
		forensic.DELETE("/selection", h.deselectSighting)
	}
}
