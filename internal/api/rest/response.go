package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/VladPetriv/listings_api/pkg/errs"
	"github.com/valyala/fasthttp"
)

const contentTypeJSON = "application/json"

type messageResponse struct {
	Message string `json:"message"`
}

type itemResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

type itemsResponse struct {
	Items []itemResponse `json:"items"`
}

func writeJSON(ctx *fasthttp.RequestCtx, statusCode int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		ctx.Error(http.StatusText(http.StatusInternalServerError), fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetStatusCode(statusCode)
	ctx.SetContentType(contentTypeJSON)
	ctx.SetBody(data)
}

// writeError maps err to a status code. Only expected errors reach the client
// with their own message.
func (h *handler) writeError(ctx *fasthttp.RequestCtx, err error) {
	var expected *errs.Err
	if errors.As(err, &expected) {
		statusCode := fasthttp.StatusBadRequest
		if errs.IsNotFound(err) {
			statusCode = fasthttp.StatusNotFound
		}

		writeJSON(ctx, statusCode, expected)
		return
	}

	h.logger.Error().
		Err(err).
		Str("requestID", requestID(ctx)).
		Str("path", string(ctx.Path())).
		Msg("internal error")
	writeJSON(ctx, fasthttp.StatusInternalServerError, messageResponse{
		Message: http.StatusText(http.StatusInternalServerError),
	})
}
