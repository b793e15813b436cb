// Package server exposes the account and match APIs over HTTP and
// websockets.
package server

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/openduel/duel-server-go/internal/config"
	"github.com/openduel/duel-server-go/internal/match"
	"github.com/openduel/duel-server-go/internal/session"
	"github.com/openduel/duel-server-go/internal/user"
)

// Server wires the HTTP routes to the account and match managers.
type Server struct {
	cfg      config.ServerConfig
	logger   *zap.Logger
	users    *user.Manager
	sessions *session.Store
	matches  *match.Manager
	engine   *gin.Engine
	srv      *http.Server
	upgrader websocket.Upgrader
}

// New builds the server and registers all routes.
func New(cfg config.ServerConfig, users *user.Manager, sessions *session.Store, matches *match.Manager, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		users:    users,
		sessions: sessions,
		matches:  matches,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     originChecker(cfg.AllowedOrigins),
		},
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), s.requestLogger())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	engine.GET("/healthz", s.handleHealth)

	api := engine.Group("/api")
	{
		api.POST("/signup", s.handleSignup)
		api.POST("/signin", s.handleSignin)

		authed := api.Group("", s.requireSession())
		{
			authed.POST("/signout", s.handleSignout)
			authed.GET("/me", s.handleMe)

			authed.POST("/matches", s.handleCreateMatch)
			authed.POST("/matches/:id/join", s.handleJoinMatch)
			authed.POST("/matches/:id/actions", s.handleMatchAction)
		}

		api.GET("/matches", s.handleListMatches)
		api.GET("/matches/:id", s.handleGetMatch)
		api.GET("/matches/:id/ws", s.handleMatchFeed)
	}

	s.engine = engine
	s.srv = &http.Server{
		Addr:         cfg.Address,
		Handler:      engine,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Handler exposes the routing tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	s.logger.Info("http server listening", zap.String("address", s.cfg.Address))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Writer.Status() >= http.StatusInternalServerError {
			s.logger.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
				zap.Int("status", c.Writer.Status()),
			)
		}
	}
}

func originChecker(allowed []string) func(*http.Request) bool {
	set := make(map[string]bool, len(allowed))
	all := false
	for _, o := range allowed {
		if o == "*" {
			all = true
		}
		set[o] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return all || origin == "" || set[origin]
	}
}
