package routes

import (
	"github.com/gin-gonic/gin"
	catalogControllers "github.com/westeastdesigns/ecom-2024/controllers/catalog"
	"github.com/westeastdesigns/ecom-2024/store"
)

// SetupCatalogRoutes registers the public storefront pages.
func SetupCatalogRoutes(r *gin.Engine, s *store.Store) {
	r.GET("/", catalogControllers.Home(s))                     // GET /
	r.GET("/about", catalogControllers.About())                // GET /about
	r.GET("/category/:name", catalogControllers.ByCategory(s)) // GET /category/:name
	r.GET("/product/:id", catalogControllers.ProductDetail(s)) // GET /product/:id
}
