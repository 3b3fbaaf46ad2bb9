package health

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/VladPetriv/expense_bot/pkg/database"
	"github.com/VladPetriv/expense_bot/pkg/logger"
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
)

const pingTimeout = 2 * time.Second

// Cursor returns the id of the next update the bot will fetch.
type Cursor interface {
	Cursor() int
}

// Server exposes the health endpoint of the bot.
type Server struct {
	logger  *logger.Logger
	address string
	db      database.Database
	cursor  Cursor

	server *fasthttp.Server
}

// Options represents an input options for creating new instance of health server.
type Options struct {
	Logger   *logger.Logger
	Address  string
	Database database.Database
	Cursor   Cursor
}

type healthResponse struct {
	Status string `json:"status"`
	Cursor int    `json:"cursor"`
	Error  string `json:"error,omitempty"`
}

// New returns new instance of health server.
func New(opts Options) *Server {
	s := &Server{
		logger:  opts.Logger,
		address: opts.Address,
		db:      opts.Database,
		cursor:  opts.Cursor,
	}

	r := router.New()
	r.GET("/health", s.handleHealth)

	s.server = &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	return s
}

// Start serves requests until Shutdown is called.
func (s *Server) Start() error {
	logger := s.logger.With().Str("name", "Server.Start").Logger()
	logger.Info().Str("address", s.address).Msg("starting health server")

	err := s.server.ListenAndServe(s.address)
	if err != nil {
		logger.Error().Err(err).Msg("listen and serve")
		return fmt.Errorf("listen and serve: %w", err)
	}

	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.server.Shutdown()
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	logger := s.logger.With().Str("name", "Server.handleHealth").Logger()

	response := healthResponse{
		Status: "ok",
		Cursor: s.cursor.Cursor(),
	}
	statusCode := fasthttp.StatusOK

	pingCtx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	err := s.db.Ping(pingCtx)
	if err != nil {
		logger.Error().Err(err).Msg("ping database")

		response.Status = "unavailable"
		response.Error = err.Error()
		statusCode = fasthttp.StatusServiceUnavailable
	}

	body, err := json.Marshal(response)
	if err != nil {
		logger.Error().Err(err).Msg("marshal health response")
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}

	ctx.SetStatusCode(statusCode)
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}
