package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-site/services"
	"github.com/yeremiapane/restaurant-site/utils"
)

const (
	SessionHeader = "X-Session-ID"
	SessionKey    = "session"
)

// SessionMiddleware mencari session dari header X-Session-ID. Jika header
// kosong, session baru dibuat. Id yang tidak dikenal ditolak.
func SessionMiddleware(store *services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(SessionHeader)
		if id == "" {
			id = c.Query("session_id")
		}

		var session *services.Session
		if id == "" {
			session = store.Create()
		} else {
			found, err := store.Get(id)
			if err != nil {
				utils.RespondError(c, http.StatusNotFound, err)
				c.Abort()
				return
			}
			session = found
		}

		c.Header(SessionHeader, session.ID)
		c.Set(SessionKey, session)
		c.Next()
	}
}

// CurrentSession returns the session resolved by SessionMiddleware.
func CurrentSession(c *gin.Context) (*services.Session, error) {
	value, exists := c.Get(SessionKey)
	if !exists {
		return nil, errors.New("session missing from context")
	}
	session, ok := value.(*services.Session)
	if !ok {
		return nil, errors.New("invalid session in context")
	}
	return session, nil
}
