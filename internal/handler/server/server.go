package server

import (
	"context"
	"time"

	"github.com/bagdasarian/course-teams/internal/handler"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"
)

type Server struct {
	log  *zap.SugaredLogger
	app  *fiber.App
	addr string
}

func NewServer(log *zap.SugaredLogger, h *handler.Handler, addr string, requestTimeout time.Duration) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:           requestTimeout,
		WriteTimeout:          requestTimeout,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(RequestLogger(log.Named("http")))
	app.Use(RequestTimeout(requestTimeout))

	SetupRoutes(app, h)

	return &Server{
		log:  log,
		app:  app,
		addr: addr,
	}
}

// App нужен тестам для app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Start() error {
	s.log.Infow("server starting", "addr", s.addr)
	return s.app.Listen(s.addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down...")
	if err := s.app.ShutdownWithContext(ctx); err != nil {
		return err
	}
	s.log.Info("server stopped")
	return nil
}
