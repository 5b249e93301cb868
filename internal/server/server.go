// file: internal/server/server.go
// version: 1.5.1
// guid: cc5b676a-ca93-4321-b8de-8fd3201cdaa9

package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/beanhaus/beanfinder/internal/cache"
	"github.com/beanhaus/beanfinder/internal/catalog"
	"github.com/beanhaus/beanfinder/internal/config"
	"github.com/beanhaus/beanfinder/internal/database"
	"github.com/beanhaus/beanfinder/internal/metrics"
	"github.com/beanhaus/beanfinder/internal/server/middleware"
)

// Server is the HTTP front end over the discovery engine and catalog store.
type Server struct {
	store      database.Store
	snapshots  *catalog.Holder
	suggestTTL *cache.Cache[[]string]
	watcher    *catalog.Watcher
	httpServer *http.Server
	router     *gin.Engine
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// GetDefaultServerConfig returns the default listen configuration.
func GetDefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:         "8080",
		Host:         "localhost",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// NewServer creates a new server instance over the given store. The initial
// snapshot is loaded from the store; RefreshSnapshot rebuilds it.
func NewServer(store database.Store) (*Server, error) {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(middleware.NewIPRateLimiter(600, 30).Middleware())
	router.Use(middleware.RequestSizeLimit(1 << 20)) // 1MB

	// Register metrics (idempotent)
	metrics.Register()

	snap, err := catalog.LoadStore(store)
	if err != nil {
		return nil, err
	}
	metrics.SetCatalogSize(snap.Len())

	server := &Server{
		store:      store,
		snapshots:  catalog.NewHolder(snap),
		suggestTTL: cache.New[[]string](30 * time.Second),
		router:     router,
	}
	server.setupRoutes()
	return server, nil
}

// RefreshSnapshot rebuilds the catalog snapshot from the store and drops
// the suggestion cache. Called after any catalog mutation or file reload.
func (s *Server) RefreshSnapshot() error {
	snap, err := catalog.LoadStore(s.store)
	if err != nil {
		return err
	}
	s.snapshots.Replace(snap)
	// A suggest computation racing this invalidation can re-store a result
	// built from the previous snapshot; it lives at most one cache TTL.
	s.suggestTTL.InvalidateAll()
	metrics.SetCatalogSize(snap.Len())
	return nil
}

// WatchCatalogFile reloads the store-backed snapshot whenever the seed file
// changes: the file is re-imported wholesale, then the snapshot rebuilt.
func (s *Server) WatchCatalogFile(path string) error {
	s.watcher = catalog.NewWatcher(func(p string) {
		products, err := catalog.LoadFile(p)
		if err != nil {
			log.Printf("[WARN] catalog reload failed for %s: %v", p, err)
			return
		}
		if err := s.store.Reset(); err != nil {
			log.Printf("[ERROR] catalog reset failed: %v", err)
			return
		}
		for i := range products {
			if _, err := s.store.CreateProduct(&products[i]); err != nil {
				log.Printf("[ERROR] catalog import failed for %q: %v", products[i].Name, err)
				return
			}
		}
		if err := s.RefreshSnapshot(); err != nil {
			log.Printf("[ERROR] snapshot refresh failed: %v", err)
		}
	}, 0)
	if err := s.watcher.Start(path); err != nil {
		s.watcher = nil
		return err
	}
	return nil
}

// Start starts the HTTP server and blocks until SIGINT/SIGTERM.
func (s *Server) Start(cfg ServerConfig) error {
	s.httpServer = &http.Server{
		Addr:           fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler:        s.router,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: 1 << 20, // 1MB
	}

	go func() {
		log.Printf("Starting server on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if s.watcher != nil {
		s.watcher.Stop()
	}

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("Server exited")
	return nil
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	// Prometheus metrics endpoint (standard path)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.GET("/api/health", s.healthCheck)
	s.router.GET("/api/v1/health", s.healthCheck)

	// Unversioned aliases for the discovery endpoints.
	s.router.GET("/api/search", s.handleSearch)
	s.router.GET("/api/suggest", s.handleSuggest)
	s.router.POST("/api/recommend", s.handleRecommend)
	s.router.GET("/api/recommend", s.handleRecommend)

	api := s.router.Group("/api/v1")
	{
		// Discovery
		api.GET("/search", s.handleSearch)
		api.GET("/suggest", s.handleSuggest)
		api.POST("/recommend", s.handleRecommend)
		api.GET("/recommend", s.handleRecommend) // quiz clients use query params

		// Catalog
		api.GET("/products", s.listProducts)
		api.GET("/products/count", s.countProducts)
		api.GET("/products/top-rated", s.listTopRated)
		api.GET("/products/:id", s.getProduct)
		api.POST("/products", s.createProduct)
		api.PUT("/products/:id", s.updateProduct)
		api.DELETE("/products/:id", s.deleteProduct)
		api.GET("/categories", s.listCategories)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Header("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func (s *Server) healthCheck(c *gin.Context) {
	count, err := s.store.CountProducts()
	response := gin.H{
		"status":        "ok",
		"timestamp":     time.Now().Unix(),
		"database_type": config.AppConfig.DatabaseType,
		"products":      count,
		"snapshot":      s.snapshots.Get().Len(),
	}
	if err != nil {
		response["status"] = "degraded"
		response["partial_error"] = err.Error()
	}
	c.JSON(http.StatusOK, response)
}
