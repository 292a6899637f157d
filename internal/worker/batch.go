package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
)

// Verifier defines the interface for verifying a single text claim
type Verifier interface {
	VerifyText(ctx context.Context, claim string) (model.Verdict, error)
}

// VerifyJob represents one claim verification
type VerifyJob struct {
	Claim    string
	Verifier Verifier
	Timeout  time.Duration
}

// Execute executes the verification job
func (j *VerifyJob) Execute(ctx context.Context) Result {
	if j.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.Timeout)
		defer cancel()
	}

	start := time.Now()
	verdict, err := j.Verifier.VerifyText(ctx, j.Claim)
	return &VerifyResult{
		Claim:    j.Claim,
		Verdict:  verdict,
		Error:    err,
		Duration: time.Since(start),
	}
}

// VerifyResult represents the result of a verification job
type VerifyResult struct {
	Claim    string
	Verdict  model.Verdict
	Error    error
	Duration time.Duration
}

// GetError returns the error from the verification
func (r *VerifyResult) GetError() error {
	return r.Error
}

// BatchProcessor verifies many claims concurrently
type BatchProcessor struct {
	verifier    Verifier
	concurrency int
	timeout     time.Duration
}

// NewBatchProcessor creates a new batch processor. itemTimeout bounds each
// verification (0 = no per-item limit).
func NewBatchProcessor(verifier Verifier, concurrency int, itemTimeout time.Duration) *BatchProcessor {
	return &BatchProcessor{
		verifier:    verifier,
		concurrency: concurrency,
		timeout:     itemTimeout,
	}
}

// ProcessClaims verifies the claims and returns results in input order.
// Claims skipped because ctx ended carry ctx's error.
func (b *BatchProcessor) ProcessClaims(ctx context.Context, claims []string) []*VerifyResult {
	if len(claims) == 0 {
		return []*VerifyResult{}
	}

	jobs := make([]Job, len(claims))
	for i, claim := range claims {
		jobs[i] = &VerifyJob{Claim: claim, Verifier: b.verifier, Timeout: b.timeout}
	}

	results := NewPool(b.concurrency).Run(ctx, jobs)

	out := make([]*VerifyResult, len(results))
	for i, result := range results {
		if result == nil {
			out[i] = &VerifyResult{Claim: claims[i], Error: fmt.Errorf("not started: %w", ctx.Err())}
			continue
		}
		out[i] = result.(*VerifyResult)
	}
	return out
}

// ProcessFile reads claims from a file and verifies them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*VerifyResult, error) {
	claims, err := ReadLinesFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read claims: %w", err)
	}

	return b.ProcessClaims(ctx, claims), nil
}

// ReadLinesFromFile reads one entry per line, skipping blanks, "#" comments
// and duplicates
func ReadLinesFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var lines []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return lines, nil
}
