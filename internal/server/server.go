// Package server exposes an in-memory ebtree.Root over HTTP: lookup,
// range-lookup, insert and delete endpoints plus a Prometheus /metrics
// endpoint, in the same echo.Context + promhttp shape the example pack's
// rosetta API and metrics server use.
package server

import (
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"ebtree"
)

// Server is the HTTP front end over a single in-memory tree.
type Server struct {
	echo *echo.Echo
	log  zerolog.Logger
	addr string

	mu   sync.Mutex
	root *ebtree.Root[uint64, string]

	metrics *metrics
}

// New builds a Server listening on addr.
func New(log zerolog.Logger, addr string) *Server {
	s := &Server{
		echo:    echo.New(),
		log:     log,
		addr:    addr,
		root:    &ebtree.Root[uint64, string]{},
		metrics: newMetrics(),
	}
	s.echo.HideBanner = true
	s.echo.GET("/lookup/:key", s.handleLookup)
	s.echo.GET("/lookup_ge/:key", s.handleLookupGE)
	s.echo.GET("/lookup_le/:key", s.handleLookupLE)
	s.echo.POST("/insert", s.handleInsert)
	s.echo.DELETE("/delete/:key", s.handleDelete)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))
	return s
}

// Start blocks serving HTTP until the server is stopped or fails.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.addr).Msg("starting ebtreectl server")
	return s.echo.Start(s.addr)
}

type insertRequest struct {
	Key   uint64 `json:"key"`
	Value string `json:"value"`
}

type entryResponse struct {
	Key   uint64 `json:"key"`
	Value string `json:"value"`
}

func (s *Server) handleLookup(ctx echo.Context) error {
	key, err := parseKey(ctx.Param("key"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	timer := s.metrics.startLookup()
	defer timer.observe()

	s.mu.Lock()
	e, ok := ebtree.Lookup(s.root, key)
	s.mu.Unlock()
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "key not found")
	}
	return ctx.JSON(http.StatusOK, entryResponse{Key: e.Key(), Value: e.Value})
}

func (s *Server) handleLookupGE(ctx echo.Context) error {
	return s.handleRangeLookup(ctx, ebtree.LookupGE[uint64, string])
}

func (s *Server) handleLookupLE(ctx echo.Context) error {
	return s.handleRangeLookup(ctx, ebtree.LookupLE[uint64, string])
}

func (s *Server) handleRangeLookup(ctx echo.Context, lookup func(*ebtree.Root[uint64, string], uint64) (*ebtree.Entry[uint64, string], bool)) error {
	key, err := parseKey(ctx.Param("key"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	timer := s.metrics.startLookup()
	defer timer.observe()

	s.mu.Lock()
	e, ok := lookup(s.root, key)
	s.mu.Unlock()
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no entry in range")
	}
	return ctx.JSON(http.StatusOK, entryResponse{Key: e.Key(), Value: e.Value})
}

func (s *Server) handleInsert(ctx echo.Context) error {
	var req insertRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	e := &ebtree.Entry[uint64, string]{Value: req.Value}
	s.mu.Lock()
	ebtree.Insert(s.root, e, req.Key)
	s.mu.Unlock()
	s.metrics.inserts.Inc()

	return ctx.JSON(http.StatusCreated, entryResponse{Key: e.Key(), Value: e.Value})
}

func (s *Server) handleDelete(ctx echo.Context) error {
	key, err := parseKey(ctx.Param("key"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	s.mu.Lock()
	e, ok := ebtree.Lookup(s.root, key)
	if ok {
		ebtree.Delete(e)
	}
	s.mu.Unlock()
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "key not found")
	}
	s.metrics.deletes.Inc()

	return ctx.NoContent(http.StatusNoContent)
}
