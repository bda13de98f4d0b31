package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/educatesobreia/backend/core"
	"github.com/educatesobreia/backend/core/chat"
)

type chatApi struct {
	svc *chat.Service
}

func registerChatAPI(g *echo.Group, jwt echo.MiddlewareFunc, svc *chat.Service) {
	api := chatApi{svc: svc}

	g.POST("/chat/ask", api.ask, jwt)
}

// Handlers

func (api *chatApi) ask(ctx echo.Context) error {
	var data AskRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to AskRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	// Ask never fails; inference trouble comes back as displayable copy.
	return ctx.JSON(http.StatusOK, AskResponse{
		Answer: api.svc.Ask(ctx.Request().Context(), data.Question, data.Context),
	})
}

type (
	AskRequest struct {
		Question string `json:"question" validate:"required"`
		Context  string `json:"context"`
	}

	AskResponse struct {
		Answer string `json:"answer"`
	}
)

func (ar *AskRequest) Validate() error {
	ar.Question = core.CleanString(ar.Question)
	ar.Context = core.CleanString(ar.Context)
	return core.Validate.Struct(ar)
}
