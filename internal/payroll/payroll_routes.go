package payroll

import (
	"github.com/DevHanzala/TMS-PORTAL/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	payrolls := r.Group("/payroll")
	payrolls.Use(middleware.AuthMiddleware())
	payrolls.Use(middleware.ContextLogger(logger))
	payrolls.Use(middleware.RequireRole(middleware.RoleHR))
	{
		payrolls.POST("/generate",
			middleware.RateLimitByUser(0.2, 2),
			handler.Generate,
		)

		payrolls.GET("/runs/:file_id/:month",
			middleware.RateLimitByUser(3, 10),
			handler.GetRun,
		)
	}
}
