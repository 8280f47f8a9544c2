package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apihttp "github.com/mirofs/mirofs/internal/api/http"
	"github.com/mirofs/mirofs/internal/api/middleware"
	"github.com/mirofs/mirofs/internal/api/ws"
	"github.com/mirofs/mirofs/internal/infrastructure/config"
	"github.com/mirofs/mirofs/internal/infrastructure/monitoring"
	"github.com/mirofs/mirofs/internal/logging"
	"github.com/mirofs/mirofs/internal/providers/filesystem"
	systemProvider "github.com/mirofs/mirofs/internal/providers/system"
	"github.com/mirofs/mirofs/internal/service"
	"github.com/mirofs/mirofs/internal/vfs"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	srv      *http.Server
	store    *vfs.Store
	registry *service.Registry
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
	stopCh   chan struct{}
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize logger
	var logger *logging.Logger
	if cfg.Logging.Development {
		logger = logging.NewDevelopment()
	} else {
		logger = logging.NewDefault()
	}

	logger.Info("Initializing mirofs server",
		zap.String("port", cfg.Server.Port),
		zap.String("store_owner", cfg.Store.Owner),
	)

	// Initialize metrics first (needed by other components)
	metrics := monitoring.NewMetrics()

	// Initialize the tree store
	store := vfs.NewWithConfig(vfs.Config{
		Owner:      cfg.Store.Owner,
		Group:      cfg.Store.Group,
		DetectMIME: cfg.Store.DetectMIME,
	})

	// Register service providers
	serviceRegistry := service.NewRegistry()
	if err := serviceRegistry.Register(filesystem.NewProvider(store)); err != nil {
		logger.Warn("Failed to register filesystem provider", zap.Error(err))
	}
	if err := serviceRegistry.Register(systemProvider.NewProvider(store)); err != nil {
		logger.Warn("Failed to register system provider", zap.Error(err))
	}

	// Create router
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	// Create handlers
	handlers := apihttp.NewHandlers(serviceRegistry, store, metrics, logger)
	wsHandler := ws.NewHandler(store, metrics, logger)

	// Register routes
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	// Service management
	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)

	// WebSocket change-event stream
	router.GET("/stream", wsHandler.HandleConnection)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s := &Server{
		router:   router,
		store:    store,
		registry: serviceRegistry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
		stopCh:   make(chan struct{}),
	}

	// Keep the store gauges current
	go s.updateStoreGauges()

	logger.Info("Server initialized successfully")
	return s, nil
}

// Registry exposes the service registry, primarily for tests.
func (s *Server) Registry() *service.Registry {
	return s.registry
}

// Store exposes the tree store, primarily for tests.
func (s *Server) Store() *vfs.Store {
	return s.store
}

// Run starts the HTTP server and blocks until it stops
func (s *Server) Run() error {
	addr := s.config.Server.Host + ":" + s.config.Server.Port
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))

	s.srv = &http.Server{
		Addr:    addr,
		Handler: s.router,
	}
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close gracefully shuts down the server
func (s *Server) Close() error {
	s.logger.Info("Shutting down server...")
	close(s.stopCh)

	if s.srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(ctx); err != nil {
			s.logger.Error("HTTP shutdown failed", zap.Error(err))
			return err
		}
	}

	// Sync logger before exit
	s.logger.Sync()
	return nil
}

// updateStoreGauges refreshes the store metrics every few seconds.
func (s *Server) updateStoreGauges() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			st := s.store.Stats()
			s.metrics.SetStoreStats(st.Nodes, st.Files, st.Directories, st.Bytes)
		case <-s.stopCh:
			return
		}
	}
}
