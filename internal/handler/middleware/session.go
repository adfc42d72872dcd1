package middleware

import (
	"net/http"

	"levelup-cart/internal/pkg/config"
	"levelup-cart/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ctxCartSessionKey = "cart_session"

// CartSession pins every client to a cart engine instance via a long-lived
// cookie. A missing or mangled cookie gets a fresh session id, which simply
// means a fresh guest cart.
func CartSession(cfg config.CookieConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := uuid.Parse(cookie.GetCartSession(c))
		if err != nil {
			sessionID = uuid.New()
			cookie.SetCartSessionCookie(c, cfg, sessionID.String())
		}

		c.Set(ctxCartSessionKey, sessionID)
		c.Next()
	}
}

func GetCartSession(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ctxCartSessionKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := value.(uuid.UUID)
	return id, ok
}

// RequireCartSession aborts when no session id was established. Only hit if
// the route is wired without CartSession, which is a programming error.
func RequireCartSession(c *gin.Context) (uuid.UUID, bool) {
	id, ok := GetCartSession(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return uuid.Nil, false
	}
	return id, true
}
