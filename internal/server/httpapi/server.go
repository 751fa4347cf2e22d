// Package httpapi exposes the EcoPulse services over HTTP/JSON using gin.
//
// Every API response is HTTP 200; the outcome is carried in the body's
// "status" field ("ok" or "error") with a human-readable "error" string.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/ecopulse/ecopulse/internal/common"
	"github.com/ecopulse/ecopulse/internal/logging"
	"github.com/ecopulse/ecopulse/internal/server/auth"
	"github.com/ecopulse/ecopulse/internal/server/models"
	"github.com/ecopulse/ecopulse/internal/server/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// UserService is the subset of services.UserService used by the API.
type UserService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
	Verify(token string) (*auth.Identity, error)
}

// LogService is the subset of services.LogService used by the API.
type LogService interface {
	Create(ctx context.Context, userID string, in services.LogInput) (*models.EmissionLog, error)
	List(ctx context.Context, userID string) ([]*models.EmissionLog, error)
}

type Server struct {
	address string
	users   UserService
	logs    LogService
	logger  logging.Logger
	engine  *gin.Engine
}

func NewServer(address string, l logging.Logger, us UserService, ls LogService) *Server {
	s := &Server{
		address: address,
		users:   us,
		logs:    ls,
		logger:  l.With("module", "http_server"),
	}
	s.engine = s.routes()
	return s
}

// Handler returns the configured router.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(s.logger))

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", common.AccessTokenHeaderName}
	r.Use(cors.New(config))

	r.GET("/", s.root)
	r.GET("/health", s.health)

	api := r.Group("/api")
	{
		api.POST("/register", s.register)
		api.POST("/login", s.login)

		logs := api.Group("/logs", s.accessTokenRequired())
		{
			logs.POST("", s.createLog)
			logs.GET("", s.listLogs)
		}
	}

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *Server) serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-done
	return nil
}
