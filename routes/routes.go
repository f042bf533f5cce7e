package routes

import (
	"canteen/controllers"
	"canteen/services"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, store *services.CartStore) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	menuCtrl := controllers.NewMenuController()
	cartCtrl := controllers.NewCartController(store)
	orderCtrl := controllers.NewOrderController(store)

	r.GET("/menu", menuCtrl.List)

	cart := r.Group("/cart")
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.POST("/items/customized", cartCtrl.AddCustomized)
		cart.PATCH("/items/qty", cartCtrl.UpdateQty)
		cart.DELETE("/items", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
	}

	orders := r.Group("/orders")
	{
		orders.POST("", orderCtrl.Place)
		orders.GET("", orderCtrl.List)
		orders.GET("/:orderId", orderCtrl.Detail)
		orders.PATCH("/:orderId/status", orderCtrl.UpdateStatus)
		orders.PATCH("/:orderId/cancel", orderCtrl.Cancel)
		orders.POST("/:orderId/reorder", orderCtrl.Reorder)
		orders.POST("/:orderId/rating", orderCtrl.Rate)
		orders.PATCH("/:orderId/received", orderCtrl.Received)
	}
}
