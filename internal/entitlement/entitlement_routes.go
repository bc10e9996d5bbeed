package entitlement

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	entitlements := r.Group("/entitlements")
	{
		entitlements.GET("/:employeeID", handler.Get)
		entitlements.GET("/:employeeID/balance", handler.Balance)
	}
}
