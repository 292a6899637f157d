package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/imaging"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/llm"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/score"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/worker"
)

// VerifyImage reads an image from disk and verifies it
func (p *Pipeline) VerifyImage(ctx context.Context, path string) (model.Verdict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Verdict{}, fmt.Errorf("read image: %w", err)
	}
	return p.VerifyImageBytes(ctx, data)
}

// VerifyImageBytes reads the metadata, runs the vision and reverse search
// analyses concurrently and combines them with the additive image score.
func (p *Pipeline) VerifyImageBytes(ctx context.Context, data []byte) (model.Verdict, error) {
	if !imaging.IsImage(data) {
		return model.Verdict{}, ErrNotImage
	}

	start := time.Now()
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	mimeType := imaging.DetectMIME(data)
	// Analyses the fan-out never starts keep these neutral results
	signals := score.ImageSignals{
		Vision:       imaging.VisionFallback(ErrSkipped),
		VisionFailed: true,
		Metadata:     imaging.ReadMetadata(data),
		Reverse:      model.ReverseSearchResult{Error: ErrSkipped.Error()},
	}
	worker.FanOut(ctx, 2, 2, func(ctx context.Context, i int) {
		if i == 0 {
			signals.Vision, signals.VisionFailed = p.vision(ctx, mimeType, data)
			return
		}
		signals.Reverse = p.reverseSearch(ctx, mimeType, data)
	})

	return p.finish(NameImage, start, score.AggregateImage(signals)), nil
}

func (p *Pipeline) vision(ctx context.Context, mimeType string, data []byte) (model.VisionAnalysis, bool) {
	analysis, err := imaging.Vision(ctx, p.assessor, llm.Image{MIMEType: mimeType, Data: data})
	if !errors.Is(err, llm.ErrNotConfigured) {
		p.metrics.Upstream("llm", err)
	}
	if err != nil {
		log.Printf("warning: vision analysis failed: %v", err)
		return analysis, true
	}
	return analysis, false
}

func (p *Pipeline) reverseSearch(ctx context.Context, mimeType string, data []byte) model.ReverseSearchResult {
	if p.imageSearch == nil || !p.imageSearch.IsConfigured() {
		return model.ReverseSearchResult{Error: "Reverse image search not configured"}
	}

	results, err := p.imageSearch.ReverseImage(ctx, mimeType, data)
	p.metrics.Upstream("reverse_image", err)
	if err != nil {
		log.Printf("warning: reverse image search failed: %v", err)
		return model.ReverseSearchResult{
			Error:    err.Error(),
			RedFlags: []string{"Reverse search failed: " + err.Error()},
		}
	}
	return imaging.AnalyzeMatches(results, p.imageSources)
}
