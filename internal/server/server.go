package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/pipeline"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// ServiceName is reported by the health endpoint
const ServiceName = "Fact Check Service"

// Verifier runs the verification pipelines
type Verifier interface {
	VerifyText(ctx context.Context, text string) (model.Verdict, error)
	VerifyURL(ctx context.Context, rawURL string) (model.Verdict, error)
	VerifyImage(ctx context.Context, path string) (model.Verdict, error)
	VerifyClaims(ctx context.Context, text string) (model.Verdict, error)
	Status() pipeline.Status
}

// Downloader fetches remote images for /verify/image/url
type Downloader interface {
	Download(ctx context.Context, rawURL string, maxBytes int64) ([]byte, error)
}

// Deps are the collaborators of a Server. Metrics may be nil to disable /metrics.
type Deps struct {
	Config     *model.Config
	Verifier   Verifier
	Downloader Downloader
	Metrics    http.Handler
	Version    string
}

// Server is the JSON HTTP API over the verification pipelines
type Server struct {
	cfg        *model.Config
	verifier   Verifier
	downloader Downloader
	metrics    http.Handler
	version    string
	engine     *gin.Engine
}

// New builds the gin engine with middleware and routes attached
func New(d Deps) *Server {
	cfg := d.Config
	if cfg == nil {
		cfg = model.DefaultConfig()
	}

	s := &Server{
		cfg:        cfg,
		verifier:   d.Verifier,
		downloader: d.Downloader,
		metrics:    d.Metrics,
		version:    d.Version,
	}

	r := gin.New()
	r.MaxMultipartMemory = cfg.Server.MaxUploadBytes
	r.Use(gin.Logger(), gin.CustomRecovery(recoverJSON))
	r.Use(cors.New(corsConfig(cfg.Server.AllowOrigins)))
	r.Use(requestID())
	if cfg.RateLimiting.ClientRPS > 0 {
		r.Use(clientLimit(cfg.RateLimiting))
	}
	s.attachRoutes(r)
	s.engine = r
	return s
}

func (s *Server) attachRoutes(r *gin.Engine) {
	verify := r.Group("/verify")
	{
		verify.POST("/text", s.verifyText)
		verify.POST("/url", s.verifyURL)
		verify.POST("/image", s.verifyImage)
		verify.POST("/image/url", s.verifyImageURL)
		verify.POST("/claims", s.verifyClaims)
	}

	r.GET("/health", s.health)
	r.GET("/test", s.testText)
	r.GET("/test/image", s.testImage)
	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics))
	}
}

// Handler returns the HTTP handler
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = s.cfg.Server.Addr
	}
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
