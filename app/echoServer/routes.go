package echoServer

import (
	"attirerental/app/echoServer/controller/auth"
	"attirerental/app/echoServer/controller/inventory"
	"attirerental/app/echoServer/controller/rental"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth      *auth.Controller
	Inventory *inventory.Controller
	Rental    *rental.Controller
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/users/register", c.Auth.Register)
	pub.POST("/users/login", c.Auth.Login)

	// customer-facing catalog browse
	pub.GET("/inventory", c.Inventory.List)
	pub.GET("/inventory/:id", c.Inventory.Detail)

	// Admin (logged-in gate)
	adm := e.Group("/v1")
	adm.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))

	adm.POST("/inventory", c.Inventory.Create)
	adm.PUT("/inventory/:id", c.Inventory.Update)
	adm.DELETE("/inventory/:id", c.Inventory.Delete)
	adm.GET("/inventory-alerts", c.Inventory.StockAlerts)

	adm.GET("/records", c.Rental.List)
	adm.GET("/records/stats", c.Rental.Stats)
	adm.GET("/records/:id", c.Rental.Detail)
	adm.POST("/records", c.Rental.Create)
	adm.POST("/records/:id/return", c.Rental.Return)
	adm.DELETE("/records/:id", c.Rental.Delete)
}
