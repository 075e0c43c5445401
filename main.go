package main

import (
	"context"
	"embed"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/solladesign/portfolio/internal/analytics"
	"github.com/solladesign/portfolio/internal/config"
	"github.com/solladesign/portfolio/internal/content"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type server struct {
	bundle      *content.Bundle
	defaultLang language.Tag
	store       *analytics.Store
	hasher      *analytics.Hasher
	trackable   map[string]bool
	retention   time.Duration
	admin       gin.Accounts
	now         func() time.Time
}

func newServer(ctx context.Context, cfg config.Config) (*server, error) {
	s := &server{
		bundle:      content.Default(),
		defaultLang: cfg.Lang(),
		trackable:   trackableKeys(),
		retention:   cfg.VisitorRetention,
		now:         time.Now,
	}
	if !cfg.AnalyticsEnabled {
		log.Println("Analytics disabled")
		return s, nil
	}

	hasher, err := analytics.NewHasher(cfg.HashSalt)
	if err != nil {
		return nil, err
	}
	store, err := analytics.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	s.hasher = hasher
	s.store = store
	if cfg.AdminEnabled() {
		s.admin = gin.Accounts{cfg.AdminUsername: cfg.AdminPassword}
	}
	log.Println("Privacy: visitor tracking enabled with hashed IP addresses")
	return s, nil
}

func (s *server) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

func parseTemplates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.html")
}

func setupRouter(s *server) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(template.Must(parseTemplates()))

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Fatalf("Failed to open static assets: %v", err)
	}
	r.StaticFS("/static", http.FS(static))

	r.Use(s.visitorTracking())

	// Home page, rendered fresh for every toggle
	r.GET("/", s.home)
	r.POST("/", s.home)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/api/content/:lang", s.contentJSON)
	r.POST("/api/clicks/:key", s.recordClick)

	if s.store != nil && len(s.admin) > 0 {
		setupAdminRoutes(r, s)
	}
	return r
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	s, err := newServer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
	defer s.Close()

	if s.store != nil {
		go s.cleanupOldVisitorData()
	}

	r := setupRouter(s)
	log.Printf("Serving %s on %s", Brand, cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
