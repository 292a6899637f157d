package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Kaarthikeya12/FAKE-CHECK/internal/model"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage fakecheck configuration",
	Long: `Manage fakecheck configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. Environment variables (FAKECHECK_*, e.g. FAKECHECK_SERVER_ADDR)
2. Config file (~/.fakecheck/config.yaml or --config)
3. Defaults

API keys are read from the environment only:
GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, SERPER_API_KEY,
GOOGLE_FACTCHECK_API_KEY.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, used, err := loadConfig(cfgFile)
		if err != nil {
			return err
		}

		if used != "" {
			fmt.Fprintf(os.Stderr, "Configuration file: %s\n\n", used)
		} else {
			fmt.Fprintf(os.Stderr, "No configuration file found (using defaults)\n\n")
		}

		yamlData, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}
		fmt.Print(string(yamlData))

		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "API keys:")
		fmt.Fprintf(os.Stderr, "  llm (%s):   %s\n", cfg.LLM.Provider, keyState(cfg.LLM.APIKey))
		fmt.Fprintf(os.Stderr, "  search:      %s\n", keyState(cfg.Search.APIKey))
		fmt.Fprintf(os.Stderr, "  fact-check:  %s\n", keyState(cfg.FactCheck.APIKey))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = defaultConfigPath()
		}
		if path == "" {
			return fmt.Errorf("cannot determine home directory; pass --config")
		}
		if err := writeDefaultConfig(path); err != nil {
			return err
		}

		fmt.Printf("Created default configuration: %s\n", path)
		fmt.Printf("\nTo view the effective configuration:\n  fakecheck config show\n")
		return nil
	},
}

func writeDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s\nUse 'fakecheck config show' to view it, or delete it first to recreate", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	yamlData, err := yaml.Marshal(model.DefaultConfig())
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	header := `# fakecheck configuration
#
# Priority (highest first): FAKECHECK_* environment variables, this file, defaults.
# Durations are Go duration strings ("30s", "2m").
#
# API keys belong in the environment (or a .env file), never here:
#   export GEMINI_API_KEY=...
#   export SERPER_API_KEY=...
#   export GOOGLE_FACTCHECK_API_KEY=...

`
	if err := os.WriteFile(path, append([]byte(header), yamlData...), 0o644); err != nil {
		return fmt.Errorf("error writing config: %w", err)
	}
	return nil
}

func keyState(key string) string {
	if key == "" {
		return "not set"
	}
	return "set"
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
