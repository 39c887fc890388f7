package rest

import (
	"fmt"
	"net"
	"time"

	"github.com/VladPetriv/listings_api/internal/service"
	"github.com/VladPetriv/listings_api/pkg/logger"
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
)

// Server serves the listings HTTP API.
type Server struct {
	server  *fasthttp.Server
	address string
}

// Options represents options that required for creating new instance of HTTP server.
type Options struct {
	// Address represents an address on which we'll start a server.
	Address string
	// FrontURL represents the only origin allowed to make cross-origin calls.
	FrontURL string

	MaxBodySize  int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	Services service.Services
	Logger   *logger.Logger
}

// NewServer creates a new instance of HTTP server with all routes registered.
func NewServer(opts Options) *Server {
	h := &handler{
		services: opts.Services,
		logger:   opts.Logger,
		frontURL: opts.FrontURL,
	}

	r := router.New()
	r.GET("/", h.root)
	r.GET("/items", h.listItems)
	r.GET("/items/{id}", h.getItem)
	r.POST("/items", h.createItem)
	r.GET("/image/{name}", h.getImage)

	return &Server{
		server: &fasthttp.Server{
			Handler:            h.withRequestLogging(h.withCORS(r.Handler)),
			Name:               "listings_api",
			MaxRequestBodySize: opts.MaxBodySize,
			ReadTimeout:        opts.ReadTimeout,
			WriteTimeout:       opts.WriteTimeout,
		},
		address: opts.Address,
	}
}

// ListenAndServe starts accepting connections on the configured address.
func (s *Server) ListenAndServe() error {
	err := s.server.ListenAndServe(s.address)
	if err != nil {
		return fmt.Errorf("listen and serve on %s: %w", s.address, err)
	}

	return nil
}

// Serve accepts connections from ln until the server is shut down.
func (s *Server) Serve(ln net.Listener) error {
	return s.server.Serve(ln)
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown() error {
	return s.server.Shutdown()
}
