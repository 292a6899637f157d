package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
)

// MockVerifier implements Verifier
type MockVerifier struct {
	FailOn string
}

func (m *MockVerifier) VerifyText(ctx context.Context, claim string) (model.Verdict, error) {
	time.Sleep(5 * time.Millisecond)
	if claim == m.FailOn {
		return model.Verdict{}, errors.New("verify error")
	}
	return model.Verdict{Verdict: model.LabelLikelyTrue, CredibilityScore: 80, Reasoning: claim}, nil
}

func TestBatchProcessor_ProcessClaims(t *testing.T) {
	processor := NewBatchProcessor(&MockVerifier{FailOn: "bad"}, 2, time.Second)

	claims := []string{"The Earth is round", "bad", "Water boils at 100C"}
	results := processor.ProcessClaims(context.Background(), claims)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, res := range results {
		if res.Claim != claims[i] {
			t.Errorf("result %d is for %q, expected %q", i, res.Claim, claims[i])
		}
	}
	if results[1].Error == nil {
		t.Error("expected error for failing claim")
	}
	if results[0].Error != nil || results[0].Verdict.Reasoning != claims[0] {
		t.Errorf("unexpected first result: %+v", results[0])
	}
}

func TestBatchProcessor_Empty(t *testing.T) {
	processor := NewBatchProcessor(&MockVerifier{}, 2, 0)
	if results := processor.ProcessClaims(context.Background(), nil); len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestReadLinesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claims.txt")
	content := "# comment\nThe Earth is round\n\n  The Earth is round  \nVaccines cause autism\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	lines, err := ReadLinesFromFile(path)
	if err != nil {
		t.Fatalf("ReadLinesFromFile failed: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 unique lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "The Earth is round" || lines[1] != "Vaccines cause autism" {
		t.Errorf("unexpected lines: %v", lines)
	}

	if _, err := ReadLinesFromFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBatchProcessor_ProcessFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claims.txt")
	_ = os.WriteFile(path, []byte("a\nb\n"), 0644)

	results, err := NewBatchProcessor(&MockVerifier{}, 4, 0).ProcessFile(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessFile failed: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
}
