package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/metrics"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/pipeline"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputFile   string
	batchTimeout time.Duration
	itemTimeout  time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Verify many claims from a file in parallel",
	Long: `Batch verifies one claim per line:
- Blank lines and lines starting with # are skipped
- Duplicate claims are verified once
- Results are written as JSON lines, in input order

Example:
  fakecheck batch claims.txt
  fakecheck batch claims.txt --concurrency 8 --output results.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().DurationVar(&itemTimeout, "item-timeout", 2*time.Minute, "timeout for each claim")
}

// batchLine is one JSON line of batch output
type batchLine struct {
	Claim      string         `json:"claim"`
	Verdict    *model.Verdict `json:"result,omitempty"`
	Error      string         `json:"error,omitempty"`
	DurationMS int64          `json:"duration_ms"`
}

func runBatch(cmd *cobra.Command, args []string) (err error) {
	file := args[0]
	cfg, err := mustConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	out := io.Writer(os.Stdout)
	if outputFile != "" {
		f, createErr := os.Create(outputFile)
		if createErr != nil {
			return fmt.Errorf("create output: %w", createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close output: %w", closeErr)
			}
		}()
		out = f
	}

	fmt.Fprintf(os.Stderr, "Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "Timeout:      %v\n\n", batchTimeout)

	p := pipeline.NewFromConfig(cfg, metrics.Noop())
	processor := worker.NewBatchProcessor(p, concurrency, itemTimeout)

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	successCount, failureCount, err := writeBatch(out, results)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "\nTotal:     %d claims\n", len(results))
	fmt.Fprintf(os.Stderr, "Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "Failures:  %d\n", failureCount)
	return nil
}

// writeBatch writes one JSON line per result and counts the outcomes
func writeBatch(w io.Writer, results []*worker.VerifyResult) (success, failure int, err error) {
	enc := json.NewEncoder(w)
	for _, r := range results {
		line := batchLine{Claim: r.Claim, DurationMS: r.Duration.Milliseconds()}
		if r.Error != nil {
			failure++
			line.Error = r.Error.Error()
			fmt.Fprintf(os.Stderr, "x %s: %v\n", r.Claim, r.Error)
		} else {
			success++
			v := r.Verdict
			line.Verdict = &v
			if verbose {
				fmt.Fprintf(os.Stderr, "+ %s: %s (%d/100)\n", r.Claim, v.Verdict, v.CredibilityScore)
			}
		}
		if err := enc.Encode(line); err != nil {
			return success, failure, fmt.Errorf("write result: %w", err)
		}
	}
	return success, failure, nil
}
