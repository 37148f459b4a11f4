package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-logr/logr"

	"github.com/spaceviz/spaceviz/pkg/dashboard"
)

func requestLogger(log logr.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.V(2).Info("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	if !s.store.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
		return
	}
	if _, err := s.store.Wait(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleOverview(c *gin.Context) {
	stats, err := s.store.Overview(c.Request.Context())
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleYearly(c *gin.Context) {
	r, ok := yearRange(c)
	if !ok {
		return
	}
	rows, err := s.store.Yearly(c.Request.Context(), r)
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"yearly": rows})
}

func (s *Server) handleOrganizations(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	n := 0
	if limit != nil {
		n = *limit
	}
	rows, err := s.store.Organizations(c.Request.Context(), n)
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"organizations": rows})
}

func (s *Server) handleLocations(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		return
	}
	rows, err := s.store.Locations(c.Request.Context(), limit)
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": rows})
}

func (s *Server) handleRace(c *gin.Context) {
	var roster []string
	if raw := c.Query("roster"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				roster = append(roster, name)
			}
		}
	}
	points, used, err := s.store.Race(c.Request.Context(), roster)
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"roster": used, "points": points})
}

func (s *Server) handleTimeline(c *gin.Context) {
	r, ok := yearRange(c)
	if !ok {
		return
	}
	top, ok := queryInt(c, "top")
	if !ok {
		return
	}
	summary, err := s.store.Timeline(c.Request.Context(), r, top)
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// storeError maps a failure to obtain the dataset to a response. A client
// that went away gets nothing.
func (s *Server) storeError(c *gin.Context, err error) {
	if errors.Is(err, context.Canceled) {
		c.Abort()
		return
	}
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": fmt.Sprintf("dataset unavailable: %v", err)})
}

// queryInt reads an optional integer query parameter. On a malformed value
// it writes a 400 response and returns false.
func queryInt(c *gin.Context, name string) (*int, bool) {
	raw, present := c.GetQuery(name)
	if !present || raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s: %q is not an integer", name, raw)})
		return nil, false
	}
	return &v, true
}

func yearRange(c *gin.Context) (dashboard.YearRange, bool) {
	from, ok := queryInt(c, "from")
	if !ok {
		return dashboard.YearRange{}, false
	}
	to, ok := queryInt(c, "to")
	if !ok {
		return dashboard.YearRange{}, false
	}
	return dashboard.YearRange{From: from, To: to}, true
}
