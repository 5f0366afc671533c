package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	AuthHandler     *AuthHTTP
	UserHandler     *UserHTTP
	ItemHandler     *ItemHTTP
	BeverageHandler *BeverageHTTP
	OrderHandler    *OrderHTTP
	SearchHandler   *SearchHTTP
	JWTSecret       []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	authMW := &AuthMiddleware{JWTSecret: d.JWTSecret}

	v1 := e.Group("/api/v1")

	v1.POST("/register", d.AuthHandler.Register)
	v1.POST("/login/access-token", d.AuthHandler.Login)
	v1.POST("/password-recovery/:email", d.AuthHandler.RecoverPassword)
	v1.POST("/reset-password", d.AuthHandler.ResetPassword)
	v1.GET("/search", d.SearchHandler.Search)

	me := v1.Group("/users/me", authMW.RequireLogin)
	me.GET("", d.UserHandler.GetMe)
	me.PATCH("", d.UserHandler.PatchMe)
	me.PATCH("/password", d.UserHandler.UpdateMyPassword)

	users := v1.Group("/users", authMW.RequireSuperuser)
	users.POST("", d.UserHandler.CreateUser)
	users.GET("", d.UserHandler.ListUsers)
	users.GET("/:id", d.UserHandler.GetUser)
	users.PATCH("/:id", d.UserHandler.PatchUser)
	users.DELETE("/:id", d.UserHandler.DeleteUser)

	items := v1.Group("/items", authMW.RequireLogin)
	items.POST("", d.ItemHandler.CreateItem)
	items.GET("", d.ItemHandler.ListItems)
	items.GET("/:id", d.ItemHandler.GetItem)
	items.PATCH("/:id", d.ItemHandler.PatchItem)
	items.DELETE("/:id", d.ItemHandler.DeleteItem)

	beverages := v1.Group("/beverages")
	beverages.GET("", d.BeverageHandler.ListBeverages)
	beverages.GET("/:id", d.BeverageHandler.GetBeverage)

	bevAdmin := v1.Group("/beverages", authMW.RequireSuperuser)
	bevAdmin.POST("", d.BeverageHandler.CreateBeverage)
	bevAdmin.PATCH("/:id", d.BeverageHandler.PatchBeverage)
	bevAdmin.DELETE("/:id", d.BeverageHandler.DeleteBeverage)

	orders := v1.Group("/orders", authMW.RequireLogin)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("", d.OrderHandler.ListOrders)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.GET("/:id/details", d.OrderHandler.ListOrderDetails)
	orders.PATCH("/:id", d.OrderHandler.PatchOrder, authMW.RequireSuperuser)
	orders.DELETE("/:id", d.OrderHandler.DeleteOrder, authMW.RequireSuperuser)

	details := v1.Group("/order-details", authMW.RequireLogin)
	details.POST("", d.OrderHandler.CreateOrderDetail)
	details.GET("/:id", d.OrderHandler.GetOrderDetail)
	details.PATCH("/:id", d.OrderHandler.PatchOrderDetail)
	details.DELETE("/:id", d.OrderHandler.DeleteOrderDetail)
}
