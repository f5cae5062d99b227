// Package flash carries one-shot status messages across a redirect on the
// cookie session, shown on the next rendered page.
package flash

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Add queues a message for the next rendered page and saves the session.
// It must be the handler's last session write: the cookie store emits one
// Set-Cookie per save, and only the final one carries the whole state.
func Add(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	_ = session.Save()
}

// Take returns and clears the pending messages, saving the session so they
// only show once.
func Take(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		_ = session.Save()
	}
	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
