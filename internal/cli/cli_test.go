package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/Kaarthikeya12/FAKE-CHECK/internal/worker"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("SERPER_API_KEY", "")

	cfg, used, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if used != "" {
		t.Errorf("expected no config file, got %q", used)
	}

	def := model.DefaultConfig()
	if cfg.Server.Addr != def.Server.Addr {
		t.Errorf("expected addr %q, got %q", def.Server.Addr, cfg.Server.Addr)
	}
	if cfg.Search.Timeout != 10*time.Second {
		t.Errorf("expected search timeout 10s, got %v", cfg.Search.Timeout)
	}
	if len(cfg.Reputation.Credible) != len(def.Reputation.Credible) {
		t.Errorf("expected %d credible entries, got %d", len(def.Reputation.Credible), len(cfg.Reputation.Credible))
	}
	if cfg.LLM.APIKey != "gem-key" {
		t.Errorf("expected Gemini key from env, got %q", cfg.LLM.APIKey)
	}
	if cfg.Search.APIKey != "" {
		t.Errorf("expected empty search key, got %q", cfg.Search.APIKey)
	}
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `server:
  addr: ":9000"
llm:
  provider: openai
search:
  timeout: 3s
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FAKECHECK_SERVER_ADDR", ":7000")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, used, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if used != path {
		t.Errorf("expected %q used, got %q", path, used)
	}
	if cfg.Server.Addr != ":7000" {
		t.Errorf("env should override file, got %q", cfg.Server.Addr)
	}
	if cfg.Search.Timeout != 3*time.Second {
		t.Errorf("expected file timeout 3s, got %v", cfg.Search.Timeout)
	}
	if cfg.Search.MaxResults != 10 {
		t.Errorf("unset keys should keep defaults, got %d", cfg.Search.MaxResults)
	}
	if cfg.LLM.Provider != "openai" || cfg.LLM.APIKey != "sk-test" {
		t.Errorf("unexpected llm config %+v", cfg.LLM)
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	if _, _, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	if err := writeDefaultConfig(path); err != nil {
		t.Fatalf("writeDefaultConfig failed: %v", err)
	}

	cfg, _, err := loadConfig(path)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if cfg.Upload.AllowedExtensions[0] != "png" {
		t.Errorf("unexpected extensions %v", cfg.Upload.AllowedExtensions)
	}

	if err := writeDefaultConfig(path); err == nil {
		t.Error("expected error when config already exists")
	}
}

func TestWriteBatch(t *testing.T) {
	results := []*worker.VerifyResult{
		{Claim: "a", Verdict: model.Verdict{Verdict: model.LabelTrue, CredibilityScore: 90}, Duration: 1500 * time.Millisecond},
		{Claim: "b", Error: errors.New("timeout")},
	}

	var buf bytes.Buffer
	ok, failed, err := writeBatch(&buf, results)
	if err != nil {
		t.Fatalf("writeBatch failed: %v", err)
	}
	if ok != 1 || failed != 1 {
		t.Errorf("expected 1/1, got %d/%d", ok, failed)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	var first batchLine
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if first.Verdict == nil || first.Verdict.Verdict != model.LabelTrue || first.DurationMS != 1500 {
		t.Errorf("unexpected first line %+v", first)
	}
	if !strings.Contains(lines[1], `"error":"timeout"`) {
		t.Errorf("unexpected second line %s", lines[1])
	}
}
