package app

import (
	"database/sql"

	"github.com/DevHanzala/TMS-PORTAL/internal/auth"
	"github.com/DevHanzala/TMS-PORTAL/internal/employee"
	"github.com/DevHanzala/TMS-PORTAL/internal/filestore"
	"github.com/DevHanzala/TMS-PORTAL/internal/messaging/kafka"
	"github.com/DevHanzala/TMS-PORTAL/internal/middleware"
	"github.com/DevHanzala/TMS-PORTAL/internal/payroll"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	fileRepo := filestore.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	authService := auth.NewService(employeeRepo)
	employeeService := employee.NewService(db, employeeRepo)
	fileService := filestore.NewService(db, fileRepo, outboxRepo)
	payrollService := payroll.NewService(db, fileRepo, employeeRepo, outboxRepo, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	fileHandler := filestore.NewHandler(fileService)
	payrollHandler := payroll.NewHandler(payrollService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, logger)
		filestore.RegisterRoutes(api, fileHandler, logger)
		payroll.RegisterRoutes(api, payrollHandler, logger)
	}

	return nil
}
