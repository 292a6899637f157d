package worker

import (
	"context"
	"testing"
	"time"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"golang.org/x/time/rate"
)

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5, time.Minute)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1, 0)
	if l2.defaultBurst != 5 {
		t.Errorf("expected default burst 5 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_WaitURL(t *testing.T) {
	limiter := NewLimiter(100, 1, time.Minute)
	ctx := context.Background()

	if err := limiter.WaitURL(ctx, "http://example.com/foo"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
	if err := limiter.WaitURL(ctx, "http://google.com"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_Allow(t *testing.T) {
	limiter := NewLimiter(1, 1, time.Minute)

	if !limiter.Allow("203.0.113.7") {
		t.Fatal("first request should be allowed")
	}
	if limiter.Allow("203.0.113.7") {
		t.Error("expected second request to be limited (burst exhausted)")
	}
	if !limiter.Allow("198.51.100.1") {
		t.Error("expected other key to be allowed")
	}
}

func TestLimiter_SameDomainSharesBucket(t *testing.T) {
	limiter := NewLimiter(1, 1, time.Minute)
	ctx := context.Background()

	if err := limiter.WaitURL(ctx, "https://www.reuters.com/a"); err != nil {
		t.Fatalf("wait failed: %v", err)
	}
	// www. is stripped, so this shares the exhausted bucket
	if limiter.Allow("reuters.com") {
		t.Error("expected reuters.com bucket to be exhausted")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(0, 1, time.Minute)
	for i := 0; i < 100; i++ {
		if !limiter.Allow("client") {
			t.Fatalf("request %d limited with limiting disabled", i)
		}
	}
}

func TestLimiter_SetRate(t *testing.T) {
	limiter := NewLimiter(1000, 1, time.Minute)
	limiter.SetRate("slow.com", 1)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := limiter.Wait(ctx, "slow.com"); err != nil {
		t.Fatalf("first wait failed: %v", err)
	}
	// 1 rps with burst 1: the next token is a second away
	if err := limiter.Wait(ctx, "slow.com"); err == nil {
		t.Error("expected second wait to exceed the deadline")
	}
}

func TestNewDomainLimiter_Overrides(t *testing.T) {
	limiter := NewDomainLimiter(model.RateLimitConfig{
		RequestsPerSecond: 10,
		BurstSize:         2,
		DomainRates: []model.DomainRate{
			{Domain: "https://www.Wikipedia.org", RequestsPerSecond: 1},
			{Domain: "ignored.com", RequestsPerSecond: 0},
		},
	})

	if got := limiter.get("wikipedia.org").Limit(); got != rate.Limit(1) {
		t.Errorf("expected wikipedia.org limited to 1 rps, got %v", got)
	}
	if got := limiter.get("ignored.com").Limit(); got != rate.Limit(10) {
		t.Errorf("expected non-positive override to keep default rate, got %v", got)
	}
	if got := limiter.get("example.com").Limit(); got != rate.Limit(10) {
		t.Errorf("expected default rate for other domains, got %v", got)
	}
}
