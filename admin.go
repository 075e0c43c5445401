// admin.go - privacy-conscious visit and click tracking plus admin endpoints
package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/solladesign/portfolio/internal/analytics"
)

const trackTimeout = 5 * time.Second

var untrackedPrefixes = []string{"/static/", "/admin/", "/api/", "/healthz", "/favicon"}

func tracked(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// visitorTracking records page views with hashed IPs once the response is written.
func (s *server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if s.store == nil || !tracked(c.Request.URL.Path) {
			return
		}
		// Respect Do Not Track header
		if c.GetHeader("DNT") == "1" {
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		v := analytics.Visit{
			HashedIP:  s.hasher.Hash(c.ClientIP()),
			UserAgent: c.GetHeader("User-Agent"),
			Path:      c.Request.URL.Path,
			Lang:      c.GetString(langKey),
			Timestamp: s.now(),
		}
		go s.recordVisit(v)
	}
}

func (s *server) recordVisit(v analytics.Visit) {
	ctx, cancel := context.WithTimeout(context.Background(), trackTimeout)
	defer cancel()
	if err := s.store.RecordVisit(ctx, v); err != nil {
		log.Printf("Error recording visitor: %v", err)
	}
}

// recordClick counts an outbound link click sent with navigator.sendBeacon.
func (s *server) recordClick(c *gin.Context) {
	key := c.Param("key")
	if !s.trackable[key] {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown link"})
		return
	}
	if s.store != nil && c.GetHeader("DNT") != "1" {
		if err := s.store.RecordClick(c.Request.Context(), key, s.now()); err != nil {
			log.Printf("Error recording click on %s: %v", key, err)
		}
	}
	c.Status(http.StatusNoContent)
}

// cleanupOldVisitorData enforces the retention window.
func (s *server) cleanupOldVisitorData() (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), trackTimeout)
	defer cancel()

	removed, err := s.store.Cleanup(ctx, s.now().Add(-s.retention))
	if err != nil {
		log.Printf("Error cleaning up old visitor data: %v", err)
		return 0, err
	}
	if removed > 0 {
		log.Printf("Privacy cleanup: removed %d visitor records older than %s", removed, s.retention)
	}
	return removed, nil
}

func setupAdminRoutes(r *gin.Engine, s *server) {
	admin := r.Group("/admin", gin.BasicAuth(s.admin))

	admin.GET("/api/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	// Statistics export (for backups or analysis)
	admin.GET("/export/stats", func(c *gin.Context) {
		stats, err := s.store.Stats(c.Request.Context(), s.now())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=portfolio-stats.json")
		log.Printf("Admin stats exported by %s", s.hasher.Hash(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})

	admin.POST("/privacy/cleanup", func(c *gin.Context) {
		removed, err := s.cleanupOldVisitorData()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cleanup failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": removed})
	})
}
