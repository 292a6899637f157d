package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Version is set at build time
var Version = "v0.3.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fakecheck",
	Short: "fakecheck - misinformation verification service",
	Long: `fakecheck verifies text claims, news article URLs and images.

Each verification gathers evidence from web search, published fact-checks,
article scraping, domain reputation, image metadata and reverse image
search, then combines it with an AI assessment into a verdict with a
credibility score, a confidence and a color tier.

Run "fakecheck serve" for the HTTP API or "fakecheck verify" for one-shot checks.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fakecheck %s\n", Version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.fakecheck/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(versionCmd)
}

// initConfig loads .env before any command reads the environment
func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("warning: could not load .env: %v", err)
	}
	if !verbose {
		log.SetFlags(0)
	}
}

// defaultConfigPath returns ~/.fakecheck/config.yaml, or "" without a home directory
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fakecheck", "config.yaml")
}

// loadConfig builds the effective configuration. Priority, highest first:
// FAKECHECK_* environment variables, the config file, built-in defaults.
// API keys come from their provider environment variables only.
func loadConfig(path string) (*model.Config, string, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	defaults, err := yaml.Marshal(model.DefaultConfig())
	if err != nil {
		return nil, "", fmt.Errorf("marshal defaults: %w", err)
	}
	if err := v.ReadConfig(bytes.NewReader(defaults)); err != nil {
		return nil, "", fmt.Errorf("load defaults: %w", err)
	}

	used := ""
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}
	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			v.SetConfigFile(path)
			if err := v.MergeInConfig(); err != nil {
				return nil, "", fmt.Errorf("read config %s: %w", path, err)
			}
			used = path
		} else if explicit {
			return nil, "", fmt.Errorf("config file: %w", statErr)
		}
	}

	v.SetEnvPrefix("FAKECHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &model.Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, "", fmt.Errorf("decode config: %w", err)
	}
	applySecrets(cfg)
	return cfg, used, nil
}

// applySecrets reads API keys from the environment
func applySecrets(cfg *model.Config) {
	switch strings.ToLower(cfg.LLM.Provider) {
	case "gemini", "google":
		cfg.LLM.APIKey = firstEnv("GEMINI_API_KEY", "GOOGLE_API_KEY")
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	case "ollama":
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}
	cfg.Search.APIKey = os.Getenv("SERPER_API_KEY")
	cfg.FactCheck.APIKey = os.Getenv("GOOGLE_FACTCHECK_API_KEY")
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

// mustConfig loads the configuration for a command, reporting the file used when verbose
func mustConfig() (*model.Config, error) {
	cfg, used, err := loadConfig(cfgFile)
	if err != nil {
		return nil, err
	}
	if verbose {
		if used != "" {
			log.Printf("using config file: %s", used)
		}
		log.Printf("llm provider: %q, search configured: %v, fact-check configured: %v",
			cfg.LLM.Provider, cfg.Search.APIKey != "", cfg.FactCheck.APIKey != "")
	}
	return cfg, nil
}
