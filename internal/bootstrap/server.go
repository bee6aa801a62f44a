package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/skypulse/api"
	"github.com/Domenick1991/skypulse/config"
	"github.com/Domenick1991/skypulse/internal/service/search"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Run starts the HTTP server and blocks until the context is canceled
// or the server fails.
func Run(ctx context.Context, cfg *config.Config, searchSvc search.SearchUseCase) error {
	if cfg.HTTP.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           NewRouter(searchSvc),
		ReadHeaderTimeout: 3 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// NewRouter assembles the read-only HTTP surface. Booking is entirely
// client-simulated, so there are no mutating endpoints.
func NewRouter(searchSvc search.SearchUseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())

	v1 := router.Group("/api/v1")
	api.NewFlightHandler(searchSvc).Register(v1.Group("/flights"))
	api.NewAirportHandler(searchSvc).Register(v1.Group("/airports"))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logrus.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("http request")
	}
}
