package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/metrics"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/pipeline"
	"github.com/spf13/cobra"
)

var verifyTimeout time.Duration

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify a claim, article, image or multi-claim text once",
	Long: `Run one verification and print the verdict as JSON.

Example:
  fakecheck verify text "The Eiffel Tower is in Berlin"
  fakecheck verify url https://www.bbc.com/news/some-article
  fakecheck verify image ./photo.jpg
  fakecheck verify claims "Water boils at 100C. The moon is made of cheese."`,
}

var verifyTextCmd = &cobra.Command{
	Use:   "text <claim>",
	Short: "Verify a free-text claim",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify(func(ctx context.Context, p *pipeline.Pipeline) (model.Verdict, error) {
			return p.VerifyText(ctx, strings.Join(args, " "))
		})
	},
}

var verifyURLCmd = &cobra.Command{
	Use:   "url <url>",
	Short: "Verify a news article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify(func(ctx context.Context, p *pipeline.Pipeline) (model.Verdict, error) {
			return p.VerifyURL(ctx, args[0])
		})
	},
}

var verifyImageCmd = &cobra.Command{
	Use:   "image <path>",
	Short: "Verify an image file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify(func(ctx context.Context, p *pipeline.Pipeline) (model.Verdict, error) {
			return p.VerifyImage(ctx, args[0])
		})
	},
}

var verifyClaimsCmd = &cobra.Command{
	Use:   "claims <text>",
	Short: "Extract and verify every claim in a text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify(func(ctx context.Context, p *pipeline.Pipeline) (model.Verdict, error) {
			return p.VerifyClaims(ctx, strings.Join(args, " "))
		})
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.AddCommand(verifyTextCmd, verifyURLCmd, verifyImageCmd, verifyClaimsCmd)
	verifyCmd.PersistentFlags().DurationVar(&verifyTimeout, "timeout", 2*time.Minute, "overall verification timeout")
}

func runVerify(run func(context.Context, *pipeline.Pipeline) (model.Verdict, error)) error {
	cfg, err := mustConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), verifyTimeout)
	defer cancel()

	p := pipeline.NewFromConfig(cfg, metrics.Noop())
	v, err := run(ctx, p)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}
	return writeJSON(os.Stdout, v)
}

func writeJSON(f *os.File, v any) error {
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
