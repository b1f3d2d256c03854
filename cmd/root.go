package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/llm"
	"github.com/prashanth-31/EduBot-Your-Smart-Study-Helper/internal/output"
)

// Package-level shared dependencies, initialized in cobra.OnInitialize.
var (
	ui *output.UI

	verbose bool
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "edubot",
	Short: "EduBot - your smart study helper",
	Long: `edubot is a conversational study assistant.
It generates quizzes and flashcards, builds study plans, runs Pomodoro
focus timers, summarizes text, and solves math problems step by step.

Running bare 'edubot' starts the interactive chat.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	DisableAutoGenTag: true,
}

// Execute is the main entry point called from main.go.
func Execute(version, commit, date string) {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initDeps)

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return chatRun(cmd.Context())
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Include underlying error detail in failure responses")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.config/edubot/config.yaml)")
}

func initConfig() {
	// A local .env is optional; real env vars win over its contents.
	_ = godotenv.Load()

	// If --config is explicitly set, use that file
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot find home directory: %v\n", err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".config", "edubot")
		viper.AddConfigPath(configDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("EDUBOT")
	viper.AutomaticEnv()

	// Defaults via viper.SetDefault()
	viper.SetDefault("provider", "gemini")
	viper.SetDefault("gemini.api_key", "")
	viper.SetDefault("gemini.model", "gemini-2.0-flash")
	viper.SetDefault("anthropic.api_key", "")
	viper.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	viper.SetDefault("debug", false)
	viper.SetDefault("history.limit", 10)

	// Read config file if it exists (optional)
	_ = viper.ReadInConfig()
}

func initDeps() {
	ui = output.New()
	ui.Verbose = verbose
}

// newGenerator builds the configured generation client. The provider
// key selects between the Gemini and Anthropic backends.
func newGenerator(ctx context.Context) (llm.Generator, error) {
	switch provider := viper.GetString("provider"); provider {
	case "gemini":
		apiKey := viper.GetString("gemini.api_key")
		if apiKey == "" {
			return nil, fmt.Errorf("no Gemini API key configured (set EDUBOT_GEMINI_API_KEY or gemini.api_key)")
		}
		return llm.NewGeminiClient(ctx, apiKey, viper.GetString("gemini.model"))
	case "anthropic":
		apiKey := viper.GetString("anthropic.api_key")
		if apiKey == "" {
			return nil, fmt.Errorf("no Anthropic API key configured (set EDUBOT_ANTHROPIC_API_KEY or anthropic.api_key)")
		}
		return llm.NewAnthropicClient(apiKey, viper.GetString("anthropic.model")), nil
	default:
		return nil, fmt.Errorf("unknown provider %q (expected gemini or anthropic)", provider)
	}
}
