package app

import (
	"database/sql"

	"github.com/georgembugua00/manager-leave/internal/employee"
	"github.com/georgembugua00/manager-leave/internal/entitlement"
	"github.com/georgembugua00/manager-leave/internal/leave"
	"github.com/georgembugua00/manager-leave/internal/messaging/kafka"
	"github.com/georgembugua00/manager-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	entitlementRepo := entitlement.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, rdb)
	leaveService := leave.NewServiceWithOutbox(db, leaveRepo, outboxRepo)
	entitlementService := entitlement.NewService(entitlementRepo, leaveService)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	entitlementHandler := entitlement.NewHandler(entitlementService)
	leaveHandler := leave.NewHandlerWithRedis(leaveService, rdb)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(50, 100))

	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler)
		entitlement.RegisterRoutes(api, entitlementHandler)
		leave.RegisterRoutes(api, leaveHandler, rdb)
	}

	return nil
}
