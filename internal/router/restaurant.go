package router

import (
	"github.com/gin-gonic/gin"

	"restaurants/internal/controllers/restaurant"
	"restaurants/internal/service"
)

func registerRestaurant(router *gin.RouterGroup, srv service.Service) {
	restaurantGroup := router.Group("/restaurants")
	{
		restaurantController := restaurant.NewRestaurantController(srv)
		restaurantGroup.GET("", restaurantController.List)
		restaurantGroup.POST("", restaurantController.Create)
		restaurantGroup.GET("/:id", restaurantController.Get)
		restaurantGroup.PUT("/:id", restaurantController.Update)
		restaurantGroup.DELETE("/:id", restaurantController.Delete)
	}
}
