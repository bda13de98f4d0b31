package echoapi

import (
	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/educatesobreia/backend/core"
	"github.com/educatesobreia/backend/core/session"
)

// sessionContextKey is where the JWT middleware stores the parsed token.
const sessionContextKey = "session"

func newJWTConfig(conf *core.Config) middleware.JWTConfig {
	return middleware.JWTConfig{
		SigningKey:    []byte(conf.SecretKey),
		SigningMethod: middleware.AlgorithmHS256,
		ContextKey:    sessionContextKey,
		Claims:        new(session.Claims),
	}
}

// getContextSession resolves the visitor's session from the request context.
// Absent or unparseable claims yield the Anonymous session value.
func getContextSession(ctx echo.Context) session.Session {
	if token, ok := ctx.Get(sessionContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*session.Claims); ok {
			return session.FromClaims(claims)
		}
	}
	return session.Session{}
}
