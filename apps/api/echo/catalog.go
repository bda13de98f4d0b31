package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/educatesobreia/backend/core/catalog"
)

type catalogApi struct {
	svc *catalog.Service
}

func registerCatalogAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *catalog.Service) {
	api := catalogApi{svc: svc}

	cg := g.Group("/lessons", jwt)
	cg.GET("", api.query)
	cg.GET("/categories", api.queryCategories)
	cg.GET("/:id", api.retrieve)
	cg.GET("/:id/summary", api.summarize)
}

// Handlers

func (api *catalogApi) query(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.svc.ByCategory(ctx.QueryParam("category")))
}

func (api *catalogApi) queryCategories(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, catalog.Categories)
}

func (api *catalogApi) retrieve(ctx echo.Context) error {
	l, err := api.svc.Get(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding lesson by ID")
	}
	return ctx.JSON(http.StatusOK, l)
}

func (api *catalogApi) summarize(ctx echo.Context) error {
	l, err := api.svc.Get(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding lesson by ID")
	}
	return ctx.JSON(http.StatusOK, SummaryResponse{
		Summary: api.svc.Summarize(ctx.Request().Context(), l),
	})
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}
