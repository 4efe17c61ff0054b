package server

import (
	"context"
	"log"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutrilens/nutrilens/backend/config"
	"github.com/nutrilens/nutrilens/backend/internal/api"
	"github.com/nutrilens/nutrilens/backend/internal/router"
	"github.com/nutrilens/nutrilens/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	cfg    *config.Config
}

// New creates a new server instance wired to the Gemini service
func New(cfg *config.Config) *Server {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	gemini := service.NewGeminiService(cfg)
	recognitionHandler := api.NewRecognitionHandler(gemini)
	scoreHandler := api.NewScoreHandler(gemini)

	r := router.SetupRouter(recognitionHandler, scoreHandler)

	return &Server{
		router: r,
		cfg:    cfg,
	}
}

// Start starts the server and blocks until it stops
func (s *Server) Start() error {
	addr := net.JoinHostPort(s.cfg.ServerHost, s.cfg.ServerPort)
	s.http = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	log.Printf("Listening on %s", addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
