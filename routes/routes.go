package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/westeastdesigns/ecom-2024/store"
)

// SetupRoutes is the single entry point that wires up the catalog and
// account route groups.
func SetupRoutes(r *gin.Engine, s *store.Store) {
	SetupCatalogRoutes(r, s)
	SetupAccountRoutes(r, s)
}
