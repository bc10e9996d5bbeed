package leave

import (
	"github.com/georgembugua00/manager-leave/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	leaves := r.Group("/leaves")
	{
		create := leaves.Group("")
		if rdb != nil {
			create.Use(middleware.Idempotency(rdb))
		}
		create.POST("", handler.Apply)

		leaves.GET("", handler.All)
		leaves.GET("/latest", handler.Latest)
		leaves.GET("/pending", handler.Pending)
		leaves.GET("/approved", handler.Approved)
		leaves.GET("/team", handler.Team)
		leaves.GET("/used", handler.UsedDays)
		leaves.GET("/employee/:employeeID", handler.History)

		leaves.PATCH("/:id/status", handler.UpdateStatus)
		leaves.POST("/:id/approve", handler.Approve)
		leaves.POST("/:id/decline", handler.Decline)
		leaves.POST("/:id/recall", handler.Recall)
		leaves.POST("/:id/withdraw", handler.Withdraw)
	}
}
