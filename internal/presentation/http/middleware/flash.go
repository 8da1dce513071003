package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

const (
	flashSessionName = "power_flash"
	flashStoreKey    = "flash_store"
)

// NewFlashStore creates the cookie store used for one-shot flash messages
func NewFlashStore(secret string, secure bool) sessions.Store {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   60 * 60,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// Flash makes the flash store available to handlers
func Flash(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(flashStoreKey, store)
		c.Next()
	}
}

func flashSession(c *gin.Context) (*sessions.Session, bool) {
	value, exists := c.Get(flashStoreKey)
	if !exists {
		return nil, false
	}
	store, ok := value.(sessions.Store)
	if !ok {
		return nil, false
	}
	// A cookie that fails to decode still yields a fresh session
	session, err := store.Get(c.Request, flashSessionName)
	if err != nil {
		slog.Debug("discarding unreadable flash cookie", "error", err)
	}
	return session, session != nil
}

// AddFlash queues a message to be shown on the next rendered page
func AddFlash(c *gin.Context, message string) {
	session, ok := flashSession(c)
	if !ok {
		return
	}
	session.AddFlash(message)
	if err := session.Save(c.Request, c.Writer); err != nil {
		slog.Error("failed to save flash message", "error", err)
	}
}

// Flashes returns and clears the queued flash messages
func Flashes(c *gin.Context) []string {
	session, ok := flashSession(c)
	if !ok {
		return nil
	}

	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(c.Request, c.Writer); err != nil {
		slog.Error("failed to clear flash messages", "error", err)
	}

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	return messages
}
