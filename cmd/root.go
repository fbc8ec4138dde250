// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkroi/github-cards/internal/gateway"
	"github.com/mkroi/github-cards/internal/render"
	"github.com/mkroi/github-cards/internal/usecase"
)

var rootCmd = &cobra.Command{
	Use:   "github-cards",
	Short: "Generates GitHub profile summary cards.",
	Long: `github-cards fetches a GitHub user's contribution activity and renders
it as standalone summaries: a statistics card, a language-usage card,
and a contributor card. Output is JSON or SVG.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().StringP("user", "u", "", "Target GitHub user name (required)")
	rootCmd.PersistentFlags().String("format", "json", "Output format: json or svg")
	rootCmd.PersistentFlags().String("theme", "default", "Card theme for SVG output")
	rootCmd.PersistentFlags().String("out", "", "Write output to this file instead of stdout")
	rootCmd.MarkPersistentFlagRequired("user")
}

// newService builds the logger, gateway, and service from the shared
// flags and environment. Every subcommand starts here.
func newService(cmd *cobra.Command) (*usecase.Service, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := log.New(io.Discard, "", log.LstdFlags) // Default: discard all logs.
	if verbose {
		logger.SetOutput(os.Stderr) // If verbose, log to standard error.
	}

	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN environment variable is not set")
	}

	githubGateway, err := gateway.NewGitHubGateway(token, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub gateway: %w", err)
	}
	return usecase.NewService(githubGateway, logger), nil
}

// cardTheme resolves the persistent theme flag.
func cardTheme(cmd *cobra.Command) render.Theme {
	name, _ := cmd.Flags().GetString("theme")
	return render.ThemeByName(name)
}

// splitPatterns parses a comma-separated exclusion list.
func splitPatterns(arg string) []string {
	if arg == "" {
		return nil
	}
	var patterns []string
	for _, p := range strings.Split(arg, ",") {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// emit writes data to the --out file or standard output.
func emit(cmd *cobra.Command, data []byte) error {
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	return nil
}
