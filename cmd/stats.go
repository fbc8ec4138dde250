// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkroi/github-cards/internal/render"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Generates the user statistics card",
	Long: `Fetches a user's aggregate activity (commits, PRs, issues, reviews,
stars, followers), computes the percentile rank, and outputs the
statistics card as JSON or SVG.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		user, _ := cmd.Flags().GetString("user")
		allCommits, _ := cmd.Flags().GetBool("all-commits")
		format, _ := cmd.Flags().GetString("format")

		service, err := newService(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		stats, err := service.UserStats(ctx, user, allCommits)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to compute user stats: %v\n", err)
			os.Exit(1)
		}

		var data []byte
		if format == "svg" {
			data, err = render.StatsCard(*stats, cardTheme(cmd))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to render stats card: %v\n", err)
				os.Exit(1)
			}
		} else {
			data, err = json.MarshalIndent(stats, "", "  ")
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
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().Bool("all-commits", false, "Count all-time commits instead of the current year")
}
