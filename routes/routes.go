package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pizza-shop/controllers"
	"pizza-shop/middleware"
)

func SetupRoutes(router *gin.Engine) {
	authCtrl := controllers.NewAuthController()
	menuCtrl := controllers.NewMenuController()
	orderCtrl := controllers.NewOrderController()
	orderItemCtrl := controllers.NewOrderItemController()
	chargeCtrl := controllers.NewChargeController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	router.GET("/menuitems", menuCtrl.GetAllMenuItems)
	router.GET("/menuitems/:id", menuCtrl.GetMenuItemByID)
	router.GET("/toppings", menuCtrl.GetAllToppings)
	router.GET("/toppings/:id", menuCtrl.GetToppingByID)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)

		auth.GET("/orders", orderCtrl.GetOrders)
		auth.GET("/orders/:id", orderCtrl.GetOrderByID)
		auth.POST("/orders", orderCtrl.CreateOrder)
		auth.PATCH("/orders/:id", orderCtrl.UpdateOrder)

		auth.GET("/orderitems", orderItemCtrl.GetOrderItems)
		auth.GET("/orderitems/:id", orderItemCtrl.GetOrderItemByID)
		auth.POST("/orderitems", orderItemCtrl.CreateOrderItem)
		auth.PATCH("/orderitems/:id", orderItemCtrl.UpdateOrderItem)
		auth.DELETE("/orderitems/:id", orderItemCtrl.DeleteOrderItem)

		auth.POST("/charge", chargeCtrl.Charge)
		auth.GET("/transactions", chargeCtrl.GetTransactions)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/menuitems", menuCtrl.CreateMenuItem)
		admin.PATCH("/menuitems/:id", menuCtrl.UpdateMenuItem)
		admin.DELETE("/menuitems/:id", menuCtrl.DeleteMenuItem)

		admin.POST("/toppings", menuCtrl.CreateTopping)
		admin.PATCH("/toppings/:id", menuCtrl.UpdateTopping)
		admin.DELETE("/toppings/:id", menuCtrl.DeleteTopping)
	}

	router.Static("/uploads", "./uploads")
}
