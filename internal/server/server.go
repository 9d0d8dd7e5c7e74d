// Package server exposes the terminal over HTTP so the site widget can run
// commands against server-side sessions.
package server

import (
	"context"
	"time"

	"swmterm/internal/config"
	"swmterm/internal/content"
	"swmterm/internal/errors"
	"swmterm/internal/log"
	"swmterm/internal/metrics"
	"swmterm/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// Server is the HTTP front end.
type Server struct {
	app      *fiber.App
	cfg      *config.Config
	store    *content.Store
	sessions *SessionRepository
	validate *validator.Validate
}

// New builds the fiber app and registers all routes.
func New(cfg *config.Config, store *content.Store, exec session.Executor) (*Server, error) {
	ttl, err := cfg.SessionTTL()
	if err != nil {
		return nil, errors.NewConfigError("invalid duration", "server.session_ttl", err)
	}

	s := &Server{
		cfg:   cfg,
		store: store,
		sessions: NewSessionRepository(exec, session.PromptConfig{
			User: cfg.Prompt.User,
			Host: cfg.Prompt.Host,
		}, ttl),
		validate: validator.New(),
	}

	app := fiber.New(fiber.Config{
		BodyLimit:             64 * 1024,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))
	app.Use(requestMetrics)

	app.Get("/healthz", s.health)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))
	app.Get("/terminal-index.json", s.index)

	api := app.Group("/api/terminal")
	api.Post("/sessions", s.createSession)
	api.Post("/sessions/:id/exec", s.exec)
	api.Get("/sessions/:id/history", s.history)
	api.Delete("/sessions/:id", s.deleteSession)

	s.app = app
	return s, nil
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Sessions returns the session repository.
func (s *Server) Sessions() *SessionRepository {
	return s.sessions
}

// Run listens on addr until Shutdown is called.
func (s *Server) Run(addr string) error {
	log.LogWithFields(log.F("addr", addr), log.F("index", s.store.Source())).Info("Server listening")
	return s.app.Listen(addr)
}

// Shutdown stops the server, waiting for in-flight requests until ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "ok",
		"loaded":   s.store.Loaded(),
		"sessions": s.sessions.Count(),
	})
}

func (s *Server) index(c *fiber.Ctx) error {
	if !s.store.Loaded() {
		return errors.ErrDataNotReady
	}
	return c.JSON(IndexResponse{
		Source: s.store.Source(),
		Stats:  s.store.Snapshot().Stats(),
	})
}

func (s *Server) createSession(c *fiber.Ctx) error {
	sess := s.sessions.Create()
	log.LogWithFields(log.F("session", sess.ID()), log.F("ip", c.IP())).Debug("Session created")
	return c.Status(fiber.StatusCreated).JSON(SessionResponse{
		ID:     sess.ID(),
		Prompt: sess.Prompt(),
		Cwd:    sess.CurrentPath(),
	})
}

// lookupSession looks up the session named by the :id param. Parsing copies the
// id out of fiber's reused request buffer.
func (s *Server) lookupSession(c *fiber.Ctx) (*session.Session, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrSessionNotFound, "session %q", c.Params("id"))
	}
	return s.sessions.Get(id.String())
}

func (s *Server) exec(c *fiber.Ctx) error {
	sess, err := s.lookupSession(c)
	if err != nil {
		return err
	}

	var req ExecRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := s.validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, _ := sess.Submit(req.Line)
	return c.JSON(ExecResponse{
		Kind:   res.Kind.String(),
		Output: res.Text,
		Image:  res.Image,
		Rule:   res.Rule,
		Prompt: sess.Prompt(),
		Cwd:    sess.CurrentPath(),
	})
}

func (s *Server) history(c *fiber.Ctx) error {
	sess, err := s.lookupSession(c)
	if err != nil {
		return err
	}
	return c.JSON(HistoryResponse{ID: sess.ID(), History: sess.History()})
}

func (s *Server) deleteSession(c *fiber.Ctx) error {
	sess, err := s.lookupSession(c)
	if err != nil {
		return err
	}
	s.sessions.Delete(sess.ID())
	return c.SendStatus(fiber.StatusNoContent)
}

// statusFor maps error kinds to status codes.
func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe.Code
	case errors.IsSessionNotFound(err):
		return fiber.StatusNotFound
	case errors.IsDataNotReady(err):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := statusFor(err)
	if code >= fiber.StatusInternalServerError && code != fiber.StatusServiceUnavailable {
		log.LogWithFields(log.F("path", c.Path()), log.F("error", err)).Error("Request failed")
	}

	resp := ErrorResponse{Error: err.Error()}
	if kind := errors.KindOf(err); kind != errors.Unknown {
		resp.Kind = kind.String()
	}
	return c.Status(code).JSON(resp)
}

// requestMetrics records every request against its route pattern.
func requestMetrics(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	status := c.Response().StatusCode()
	if err != nil {
		status = statusFor(err)
	}
	metrics.RecordHTTPRequest(c.Method(), c.Route().Path, status, time.Since(start))
	return err
}
