package auth

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/westeastdesigns/ecom-2024/models"
)

// SessionUserKey is where the cookie session keeps the authenticated user's id.
const SessionUserKey = "user_id"

// Session mutators do not save: the cookie store emits one Set-Cookie per
// Save, and replaying duplicates picks the first, so each handler must write
// the session exactly once. flash.Add/flash.Take, always the handler's last
// session operation, performs that save.

// LoginSession marks the session as authenticated for the given user.
func LoginSession(c *gin.Context, user *models.User) {
	session := sessions.Default(c)
	session.Set(SessionUserKey, user.ID)
}

// LogoutSession tears the session down. It does not require that a session
// exists; logging out while logged out is a no-op.
func LogoutSession(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
}

// SessionUserID reports the authenticated user's id, or false when the
// session is anonymous.
func SessionUserID(c *gin.Context) (uint, bool) {
	session := sessions.Default(c)
	v := session.Get(SessionUserKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
