package rest

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestID"

	corsMaxAge = "600"
)

var corsAllowedMethods = []string{
	fasthttp.MethodGet,
	fasthttp.MethodPost,
	fasthttp.MethodPut,
	fasthttp.MethodDelete,
}

// withCORS lets the front-end origin call the API. Credentials are never allowed.
func (h *handler) withCORS(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		origin := string(ctx.Request.Header.Peek(fasthttp.HeaderOrigin))
		if origin == "" {
			next(ctx)
			return
		}

		allowed := origin == h.frontURL
		requestedMethod := string(ctx.Request.Header.Peek(fasthttp.HeaderAccessControlRequestMethod))

		if ctx.IsOptions() && requestedMethod != "" {
			h.preflight(ctx, allowed, requestedMethod)
			return
		}

		next(ctx)

		if allowed {
			ctx.Response.Header.Set(fasthttp.HeaderAccessControlAllowOrigin, origin)
			ctx.Response.Header.Add(fasthttp.HeaderVary, fasthttp.HeaderOrigin)
		}
	}
}

func (h *handler) preflight(ctx *fasthttp.RequestCtx, allowed bool, requestedMethod string) {
	if !allowed {
		ctx.Error("Disallowed CORS origin", fasthttp.StatusBadRequest)
		return
	}
	if !slices.Contains(corsAllowedMethods, strings.ToUpper(requestedMethod)) {
		ctx.Error("Disallowed CORS method", fasthttp.StatusBadRequest)
		return
	}

	header := &ctx.Response.Header
	header.Set(fasthttp.HeaderAccessControlAllowOrigin, h.frontURL)
	header.Set(fasthttp.HeaderAccessControlAllowMethods, strings.Join(corsAllowedMethods, ", "))
	header.Set(fasthttp.HeaderAccessControlMaxAge, corsMaxAge)
	header.Add(fasthttp.HeaderVary, fasthttp.HeaderOrigin)

	requestedHeaders := ctx.Request.Header.Peek(fasthttp.HeaderAccessControlRequestHeaders)
	if len(requestedHeaders) != 0 {
		header.SetBytesV(fasthttp.HeaderAccessControlAllowHeaders, requestedHeaders)
	}

	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

// withRequestLogging tags every request with an id and logs its outcome.
func (h *handler) withRequestLogging(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()

		id := string(ctx.Request.Header.Peek(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		ctx.SetUserValue(requestIDKey, id)

		next(ctx)

		ctx.Response.Header.Set(requestIDHeader, id)

		h.logger.Info().
			Str("requestID", id).
			Str("method", string(ctx.Method())).
			Str("path", string(ctx.Path())).
			Int("status", ctx.Response.StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("handled request")
	}
}

func requestID(ctx *fasthttp.RequestCtx) string {
	id, _ := ctx.UserValue(requestIDKey).(string)
	return id
}
