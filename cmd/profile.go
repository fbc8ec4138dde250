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
	"github.com/mkroi/github-cards/internal/usecase"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Computes all three card payloads and outputs them as JSON",
	Long: `Fetches user statistics, top languages, and top contributions
concurrently and outputs the combined profile in JSON format.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		user, _ := cmd.Flags().GetString("user")
		allCommits, _ := cmd.Flags().GetBool("all-commits")
		langLimit, _ := cmd.Flags().GetInt("lang-limit")
		repoLimit, _ := cmd.Flags().GetInt("repo-limit")
		exclude, _ := cmd.Flags().GetString("exclude")

		weights, err := languageWeights(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		service, err := newService(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		profile, err := service.Profile(ctx, user, usecase.ProfileOptions{
			AllTimeCommits:  allCommits,
			LanguageWeights: weights,
			LanguageLimit:   langLimit,
			Selection: domain.SelectionConfig{
				Limit:           repoLimit,
				ExcludePatterns: splitPatterns(exclude),
				SortKey:         domain.SortByStars,
			},
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to compute profile: %v\n", err)
			os.Exit(1)
		}

		data, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to marshal results to JSON: %v\n", err)
			os.Exit(1)
		}

		if err := emit(cmd, data); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().Bool("all-commits", false, "Count all-time commits instead of the current year")
	profileCmd.Flags().Int("lang-limit", 10, "Maximum number of languages to list")
	profileCmd.Flags().Int("repo-limit", 5, "Maximum number of repositories to list")
	profileCmd.Flags().String("exclude", "", "Comma-separated owner/repo patterns to exclude (supports *)")
	profileCmd.Flags().String("preset", "size-only", "Weighting preset: size-only, balanced, expertise, diversity")
	profileCmd.Flags().Float64("size-weight", 1.0, "Byte-size weight in [0,1] (overrides preset)")
	profileCmd.Flags().Float64("count-weight", 0.0, "Repo-count weight in [0,1] (overrides preset)")
}
