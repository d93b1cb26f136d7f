package router

import (
	"github.com/gin-gonic/gin"

	"restaurants/internal/controllers/city"
	"restaurants/internal/service"
)

func registerCity(router *gin.RouterGroup, srv service.Service) {
	cityGroup := router.Group("/cities")
	{
		cityController := city.NewCityController(srv)
		cityGroup.GET("", cityController.List)
		cityGroup.POST("", cityController.Create)
		cityGroup.GET("/:id", cityController.Get)
		cityGroup.PUT("/:id", cityController.Update)
		cityGroup.DELETE("/:id", cityController.Delete)
		cityGroup.GET("/:id/restaurants", cityController.Restaurants)
	}
}
