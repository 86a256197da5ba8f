package middleware

import (
	"log"
	"net/http"

	"ideate/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	SessionKey = "session"
	storeKey   = "session_store"
)

// Sessions loads the client's session into the context. Handlers persist
// changes with SaveSession before writing the response.
func Sessions(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(SessionKey, store.Load(c.Request.Context(), c.Request))
		c.Set(storeKey, store)
		c.Next()
	}
}

// CurrentSession returns the session loaded by Sessions. Without the
// middleware it returns a fresh anonymous session bound to the context.
func CurrentSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(SessionKey); ok {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	s := session.New()
	c.Set(SessionKey, s)
	return s
}

// SaveSession persists the session and writes its cookie and token header
// if the session changed.
func SaveSession(c *gin.Context) {
	s := CurrentSession(c)
	if !s.Modified() {
		return
	}
	v, ok := c.Get(storeKey)
	if !ok {
		return
	}
	store, ok := v.(*session.Store)
	if !ok {
		return
	}
	token, err := store.Save(c.Request.Context(), s)
	if err != nil {
		log.Printf("❌ Failed to save session: %v", err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.CookieName, token, int(store.MaxAge().Seconds()), "/", "", store.Secure(), true)
	c.Header(session.TokenHeader, token)
}
