package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/westeastdesigns/ecom-2024/auth"
	"github.com/westeastdesigns/ecom-2024/models"
	"gorm.io/gorm"
)

const currentUserKey = "current_user"

// LoadCurrentUser resolves the session's user id to a full account record and
// puts it on the context, so every handler sees an explicit
// authenticated-user-or-nil. A stale id (deleted account) is treated as
// anonymous.
func LoadCurrentUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := auth.SessionUserID(c); ok {
			var user models.User
			if err := db.First(&user, id).Error; err == nil {
				c.Set(currentUserKey, &user)
			}
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user for this request, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(currentUserKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
