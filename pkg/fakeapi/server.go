// Package fakeapi is an in-memory stand-in for the Baby Care API endpoints used by the walkthrough.
// It mirrors the real backend's envelope, status codes and bearer authentication closely enough
// to run the walkthrough locally and in tests.
package fakeapi

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"gitlab.com/adam.stanek/growthwalk/pkg/client"
)

// TokenTimelife - validity of issued session tokens
const TokenTimelife = 24 * time.Hour

// Server - fake API context
type Server struct {
	Echo   *echo.Echo
	secret []byte

	mu       sync.Mutex
	lastID   int64
	users    map[string]*User
	families map[int64]*Family
	babies   map[int64]*Baby
	records  []*GrowthRecord
}

// New - constructor, tokens are signed with given secret
func New(secret []byte) *Server {
	s := &Server{
		Echo:     echo.New(),
		secret:   secret,
		users:    make(map[string]*User),
		families: make(map[int64]*Family),
		babies:   make(map[int64]*Baby),
	}

	s.Echo.HideBanner = true
	s.Echo.HidePort = true
	s.Echo.HTTPErrorHandler = s.handleError

	api := s.Echo.Group("/api")
	api.POST(client.RegisterPath, s.register)
	api.POST(client.LoginPath, s.login)
	api.POST(client.FamilyCreatePath, s.createFamily, s.authorize)
	api.POST(client.BabyAddPath, s.addBaby, s.authorize)
	api.POST(client.GrowthRecordCreatePath, s.createGrowthRecord, s.authorize)

	return s
}

// ServeHTTP - lets the server be mounted into httptest or any other http.Server
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Echo.ServeHTTP(w, r)
}

// Start - listens on addr until Shutdown is called
func (s *Server) Start(addr string) error {
	log.Info().Str("addr", addr).Msg("Fake Baby Care API listening")

	if err := s.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown - stops listening and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}

// GrowthRecords - snapshot of created growth records
func (s *Server) GrowthRecords() []GrowthRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]GrowthRecord, len(s.records))
	for i, r := range s.records {
		out[i] = *r
	}

	return out
}

// Babies - snapshot of created babies
func (s *Server) Babies() []Baby {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Baby, 0, len(s.babies))
	for _, b := range s.babies {
		out = append(out, *b)
	}

	return out
}

func (s *Server) nextID() int64 {
	s.lastID++
	return s.lastID
}
