package cli

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/fetch"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/metrics"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/pipeline"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/server"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/worker"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the verification HTTP API",
	Long: `Serve the JSON API:

  POST /verify/text        {"text": "..."}
  POST /verify/url         {"url": "https://..."}
  POST /verify/image       multipart field "image"
  POST /verify/image/url   {"image_url": "https://..."}
  POST /verify/claims      {"text": "..."}
  GET  /health, /test, /test/image, /metrics

Example:
  fakecheck serve
  fakecheck serve --addr :8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :5000)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := mustConfig()
	if err != nil {
		return err
	}
	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	rec := metrics.New()
	p := pipeline.NewFromConfig(cfg, rec)
	if st := p.Status(); !st.LLMConfigured {
		log.Printf("warning: no AI provider configured; text and URL verdicts will be ERROR")
	}

	downloader := fetch.New(cfg, worker.NewDomainLimiter(cfg.RateLimiting), nil)
	srv := server.New(server.Deps{
		Config:     cfg,
		Verifier:   p,
		Downloader: downloader,
		Metrics:    rec.Handler(),
		Version:    Version,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return srv.ListenAndServe(ctx, serveAddr)
}
