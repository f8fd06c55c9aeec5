package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"inventory-service/internal/inventory/repository"
	"inventory-service/pkg/log"
	"inventory-service/pkg/photostore"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	host            string
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	rateLimitPerMin int

	// Inventory domain
	repo        repository.Repository
	photos      photostore.IPhotoStore
	baseURL     string
	enableHello bool

	// db is pinged by the readiness probe. Nil for the in-memory store.
	db *sql.DB
}

// Config is the dependency bag passed to New().
type Config struct {
	Host            string
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	RateLimitPerMin int

	// Inventory domain
	Repository repository.Repository
	PhotoStore photostore.IPhotoStore
	// BaseURL prefixes photo links, e.g. "http://localhost:8080".
	BaseURL string
	// EnableHello registers POST /hello.
	EnableHello bool

	DB *sql.DB
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		host:            cfg.Host,
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		rateLimitPerMin: cfg.RateLimitPerMin,
		repo:            cfg.Repository,
		photos:          cfg.PhotoStore,
		baseURL:         cfg.BaseURL,
		enableHello:     cfg.EnableHello,
		db:              cfg.DB,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.repo == nil {
		return errors.New("repository is required")
	}
	if srv.photos == nil {
		return errors.New("photo store is required")
	}
	return nil
}
