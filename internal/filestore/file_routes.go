package filestore

import (
	"github.com/DevHanzala/TMS-PORTAL/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	files := r.Group("/files")
	files.Use(middleware.AuthMiddleware())
	files.Use(middleware.ContextLogger(logger))
	files.Use(middleware.RequireRole(middleware.RoleHR))
	{
		files.POST("",
			middleware.RateLimitByUser(0.2, 2),
			handler.Upload,
		)

		files.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.GetAll,
		)

		files.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			handler.GetById,
		)

		files.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			handler.Delete,
		)
	}
}
