// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkroi/github-cards/internal/domain"
	"github.com/mkroi/github-cards/internal/render"
)

var contribCmd = &cobra.Command{
	Use:   "contrib",
	Short: "Generates the contributor card",
	Long: `Collects the public repositories a user contributed to over recent
years, filters and ranks them, and outputs the contributor card as
JSON or SVG. Self-owned repositories are never listed.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		user, _ := cmd.Flags().GetString("user")
		format, _ := cmd.Flags().GetString("format")
		limit, _ := cmd.Flags().GetInt("limit")
		exclude, _ := cmd.Flags().GetString("exclude")

		service, err := newService(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		repos, err := service.TopContributions(ctx, user, domain.SelectionConfig{
			Limit:           limit,
			ExcludePatterns: splitPatterns(exclude),
			SortKey:         domain.SortByStars,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to compute top contributions: %v\n", err)
			os.Exit(1)
		}

		var data []byte
		if format == "svg" {
			data, err = render.ContribCard(repos, cardTheme(cmd))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to render contributor card: %v\n", err)
				os.Exit(1)
			}
		} else {
			data, err = json.MarshalIndent(repos, "", "  ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to marshal results to JSON: %v\n", err)
				os.Exit(1)
			}
		}

		if err := emit(cmd, data); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(contribCmd)
	contribCmd.Flags().Int("limit", 5, "Maximum number of repositories to list")
	contribCmd.Flags().String("exclude", "", "Comma-separated owner/repo patterns to exclude (supports *)")
}
