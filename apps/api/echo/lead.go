package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/educatesobreia/backend/core/lead"
	"github.com/educatesobreia/backend/core/session"
)

type leadApi struct {
	svc        *lead.Service
	sessionSvc *session.Service
}

func registerLeadAPI(g *echo.Group, svc *lead.Service, sessionSvc *session.Service) {
	api := leadApi{
		svc:        svc,
		sessionSvc: sessionSvc,
	}

	lg := g.Group("/leads")

	// un-authed endpoints: registration is the only way in
	lg.POST("/register", api.register)
}

// Handlers

func (api *leadApi) register(ctx echo.Context) error {
	var data lead.NewLead
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewLead")
	}

	reg, err := api.svc.Register(ctx.Request().Context(), data)
	if err != nil {
		if errors.Cause(err) == lead.ErrEmailExists {
			return lead.ErrEmailExists
		}
		return err
	}

	token, err := api.sessionSvc.GenerateToken(api.sessionSvc.Claims(reg.Lead))
	if err != nil {
		return errors.Wrap(err, "generating session token")
	}

	return ctx.JSON(http.StatusCreated, RegisterResponse{
		Lead:     reg.Lead,
		Greeting: reg.Greeting,
		Token:    token,
	})
}

type RegisterResponse struct {
	Lead     lead.Lead `json:"lead"`
	Greeting string    `json:"greeting"`
	Token    string    `json:"token"`
}
