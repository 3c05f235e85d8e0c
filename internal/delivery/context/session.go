package context

import (
	"vintagecomics/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeySession is the key for storing the resolved login session in echo.Context.
const KeySession ContextKey = "session"

// GetSession extracts the resolved session from echo.Context.
// The second return value reports whether a session was present.
func GetSession(c echo.Context) (*entity.Session, bool) {
	val := c.Get(string(KeySession))
	session, ok := val.(*entity.Session)

	return session, ok && session != nil
}

// SetSession stores the resolved session in echo.Context for handlers.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(string(KeySession), session)
}
