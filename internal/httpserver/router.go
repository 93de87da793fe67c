package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"digital_store/internal/handlers"
	"digital_store/internal/middleware"
)

type Deps struct {
	UserHandler     *handlers.UserHandler
	CategoryHandler *handlers.CategoryHandler
	ProductHandler  *handlers.ProductHandler
	JWTSecret       []byte
}

// Register mounts every route under /v1. Reads, signup and login are open;
// every mutating route sits behind the bearer-token guard.
func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	guard := middleware.RequireAuth(d.JWTSecret)

	v1 := e.Group("/v1")

	v1.GET("/category/search", d.CategoryHandler.SearchCategories)
	v1.GET("/category/:id", d.CategoryHandler.GetCategory)
	v1.POST("/category", d.CategoryHandler.CreateCategory, guard)
	v1.PUT("/category/:id", d.CategoryHandler.UpdateCategory, guard)
	v1.DELETE("/category/:id", d.CategoryHandler.DeleteCategory, guard)

	v1.GET("/product/search", d.ProductHandler.SearchProducts)
	v1.GET("/product/:id", d.ProductHandler.GetProduct)
	v1.POST("/product", d.ProductHandler.CreateProduct, guard)
	v1.PUT("/product/:id", d.ProductHandler.UpdateProduct, guard)
	v1.DELETE("/product/:id", d.ProductHandler.DeleteProduct, guard)

	v1.GET("/user/:id", d.UserHandler.GetUser)
	v1.POST("/user", d.UserHandler.CreateUser)
	v1.PUT("/user/:id", d.UserHandler.UpdateUser, guard)
	v1.DELETE("/user/:id", d.UserHandler.DeleteUser, guard)

	v1.POST("/login", d.UserHandler.Login)
}
