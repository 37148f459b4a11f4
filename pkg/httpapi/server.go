package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/spaceviz/spaceviz/pkg/dashboard"
)

// Server exposes the dashboard views as a JSON API for the browser
// front end.
type Server struct {
	store  *dashboard.Store
	router *gin.Engine
}

// NewServer creates a new API server backed by store.
func NewServer(ctx context.Context, store *dashboard.Store) *Server {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(klog.FromContext(ctx)))

	s := &Server{
		store:  store,
		router: router,
	}

	router.GET("/healthz", s.handleHealth)

	api := router.Group("/api")
	{
		api.GET("/overview", s.handleOverview)
		api.GET("/yearly", s.handleYearly)
		api.GET("/organizations", s.handleOrganizations)
		api.GET("/locations", s.handleLocations)
		api.GET("/race", s.handleRace)
		api.GET("/timeline", s.handleTimeline)
	}

	return s
}

// Handler returns the HTTP handler serving the API.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	log := klog.FromContext(ctx)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http api listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
