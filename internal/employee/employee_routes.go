package employee

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("/names", handler.Names)
		employees.GET("/by-name/:name", handler.LookupByName)
	}
}
