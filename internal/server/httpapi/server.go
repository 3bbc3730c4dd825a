// Package httpapi exposes the board's security core over HTTP: login and
// logout managing the session cookie, and the post endpoints guarded by
// authentication and ownership checks.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"postboard/internal/logging"
	"postboard/internal/server/auth"
	"postboard/internal/server/posts"
	"postboard/internal/server/users"
)

type Server struct {
	addr    string
	logger  logging.Logger
	users   *users.Service
	posts   *posts.Service
	guard   *auth.Guard
	carrier *auth.SessionCarrier
	engine  *gin.Engine
}

func NewServer(addr string, logger logging.Logger, userService *users.Service, postService *posts.Service, guard *auth.Guard, carrier *auth.SessionCarrier) *Server {
	s := &Server{
		addr:    addr,
		logger:  logger,
		users:   userService,
		posts:   postService,
		guard:   guard,
		carrier: carrier,
	}
	s.engine = s.buildEngine()
	return s
}

func (s *Server) buildEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")

	api.GET("/ping", s.handlePing)

	api.POST("/signup", s.handleSignup)
	api.POST("/login", s.handleLogin)
	api.POST("/logout", s.handleLogout)
	api.POST("/password", s.guard.RequireAuth(), s.handleChangePassword)

	api.GET("/posts", s.guard.OptionalAuth(), s.handleListPosts)
	api.GET("/posts/:id", s.guard.OptionalAuth(), s.handleGetPost)
	api.POST("/posts", s.guard.RequireAuth(), s.handleCreatePost)
	api.PUT("/posts/:id", s.guard.RequireAuth(), s.handleUpdatePost)
	api.DELETE("/posts/:id", s.guard.RequireAuth(), s.handleDeletePost)

	return r
}

// Handler returns the underlying HTTP handler. Tests drive it directly.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info(ctx, "http server listening", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func (s *Server) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
