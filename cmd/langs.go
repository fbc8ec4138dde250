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

var langsCmd = &cobra.Command{
	Use:   "langs",
	Short: "Generates the language-usage card",
	Long: `Aggregates per-repository language byte totals across a user's owned
repositories, ranks them under the configured size/count weighting,
and outputs the language card as JSON or SVG.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		user, _ := cmd.Flags().GetString("user")
		format, _ := cmd.Flags().GetString("format")
		limit, _ := cmd.Flags().GetInt("limit")
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

		langs, err := service.TopLanguages(ctx, user, weights, limit, splitPatterns(exclude))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to compute top languages: %v\n", err)
			os.Exit(1)
		}

		var data []byte
		if format == "svg" {
			data, err = render.LangsCard(langs, cardTheme(cmd))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to render language card: %v\n", err)
				os.Exit(1)
			}
		} else {
			data, err = json.MarshalIndent(langs, "", "  ")
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

// languageWeights resolves the weighting flags. An explicit
// size/count pair wins over a preset name.
func languageWeights(cmd *cobra.Command) (domain.LanguageWeights, error) {
	preset, _ := cmd.Flags().GetString("preset")
	weights, ok := domain.PresetWeights(preset)
	if !ok {
		return domain.LanguageWeights{}, fmt.Errorf("unknown weighting preset %q", preset)
	}

	if cmd.Flags().Changed("size-weight") || cmd.Flags().Changed("count-weight") {
		sizeWeight, _ := cmd.Flags().GetFloat64("size-weight")
		countWeight, _ := cmd.Flags().GetFloat64("count-weight")
		if sizeWeight < 0 || sizeWeight > 1 || countWeight < 0 || countWeight > 1 {
			return domain.LanguageWeights{}, fmt.Errorf("weights must be in [0,1]; got size=%v count=%v", sizeWeight, countWeight)
		}
		weights = domain.LanguageWeights{SizeWeight: sizeWeight, CountWeight: countWeight}
	}
	return weights, nil
}

func init() {
	rootCmd.AddCommand(langsCmd)
	langsCmd.Flags().Int("limit", 10, "Maximum number of languages to list")
	langsCmd.Flags().String("exclude", "", "Comma-separated repository patterns to exclude")
	langsCmd.Flags().String("preset", "size-only", "Weighting preset: size-only, balanced, expertise, diversity")
	langsCmd.Flags().Float64("size-weight", 1.0, "Byte-size weight in [0,1] (overrides preset)")
	langsCmd.Flags().Float64("count-weight", 0.0, "Repo-count weight in [0,1] (overrides preset)")
}
