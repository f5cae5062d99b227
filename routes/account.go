package routes

import (
	"github.com/gin-gonic/gin"
	accountControllers "github.com/westeastdesigns/ecom-2024/controllers/account"
	"github.com/westeastdesigns/ecom-2024/store"
)

// SetupAccountRoutes registers login, logout, and registration.
func SetupAccountRoutes(r *gin.Engine, s *store.Store) {
	db := s.DB()

	r.GET("/login", accountControllers.LoginPage())
	r.POST("/login", accountControllers.Login(db))

	// Logout accepts both methods: plain links and forms both end sessions.
	r.GET("/logout", accountControllers.Logout())
	r.POST("/logout", accountControllers.Logout())

	r.GET("/register", accountControllers.RegisterPage())
	r.POST("/register", accountControllers.Register(db))
}
