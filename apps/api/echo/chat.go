package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/campusdesk/portal/core"
	"github.com/campusdesk/portal/core/chat"
)

type chatApi struct {
	responder *chat.Responder
	validate  *validator.Validate
}

func registerChatAPI(g *echo.Group, responder *chat.Responder, validate *validator.Validate) {
	api := chatApi{responder: responder, validate: validate}
	g.POST("/chat", api.reply, guard())
}

type (
	ChatRequest struct {
		Message string `json:"message" validate:"required,notblank"`
	}

	ChatResponse struct {
		Reply string `json:"reply"`
	}
)

func (api *chatApi) reply(ctx echo.Context) error {
	var data ChatRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ChatRequest")
	}
	data.Message = core.CleanString(data.Message)
	if err := api.validate.Struct(data); err != nil {
		return err
	}

	// a client that went away cancels the pending reply
	reply, err := api.responder.Reply(ctx.Request().Context(), data.Message)
	if err != nil {
		return errors.Wrap(err, "waiting for chat reply")
	}
	return ctx.JSON(http.StatusOK, ChatResponse{Reply: reply})
}
