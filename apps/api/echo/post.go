package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/educatesobreia/backend/core/post"
)

type postApi struct {
	svc *post.Service
}

func registerPostAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *post.Service) {
	api := postApi{svc: svc}

	g.GET("/posts", api.query, jwt)
}

// Handlers

func (api *postApi) query(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.Latest(ctx.Request().Context()))
}
