// Package server exposes the intake API over HTTP: CSRF minting, the
// application and network submission endpoints, the card catalog and the
// operational endpoints.
package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"venture-intake/internal/common/config"
	"venture-intake/internal/common/database"
	"venture-intake/internal/common/logger"
	"venture-intake/internal/common/security"
	"venture-intake/internal/intake/intro"
	"venture-intake/internal/intake/network"
	"venture-intake/internal/intake/notify"
	"venture-intake/internal/intake/submit"
)

// Deps are the wired collaborators the server routes to.
type Deps struct {
	Submit   *submit.Handler
	Network  *network.Handler
	Intro    *intro.Handler
	Notifier *notify.Notifier
	Postgres *database.PostgresClient
	Redis    *database.RedisClient
}

// Server is the public HTTP surface of the intake service.
type Server struct {
	app    *fiber.App
	cfg    *config.Config
	logger logger.Logger
	deps   Deps
	origin *security.OriginAllowList
}

// New builds the Fiber app with middleware and routes registered.
func New(cfg *config.Config, log logger.Logger, deps Deps) *Server {
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		BodyLimit:             cfg.Server.BodyLimitMB * 1024 * 1024,
		ReadTimeout:           config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout:          config.GetDuration(cfg.Server.WriteTimeout),
		DisableStartupMessage: true,
	})

	s := &Server{
		app:    app,
		cfg:    cfg,
		logger: log,
		deps:   deps,
		origin: security.NewOriginAllowList(cfg.Server.AllowedOrigins),
	}
	s.registerRoutes()
	return s
}

// App exposes the underlying Fiber app, used by tests.
func (s *Server) App() *fiber.App { return s.app }

// Listen serves until Shutdown is called.
func (s *Server) Listen() error {
	s.logger.Info("http server listening", map[string]interface{}{
		"addr": s.cfg.Server.Addr(),
	})
	return s.app.Listen(s.cfg.Server.Addr())
}

// Shutdown drains in-flight requests within the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	deadline, ok := ctx.Deadline()
	if !ok {
		return s.app.Shutdown()
	}
	return s.app.ShutdownWithTimeout(time.Until(deadline))
}
