package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func registerSessionAPI(g *echo.Group, jwt echo.MiddlewareFunc) {
	g.GET("/session", sessionRetrieve, jwt)
}

// sessionRetrieve echoes the gate state carried by the presented token so
// the frontend can restore a Registered session across reloads.
func sessionRetrieve(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, getContextSession(ctx))
}
