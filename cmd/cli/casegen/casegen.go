package casegen

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/mysterydesk/gumshoe/internal/ai"
	"github.com/mysterydesk/gumshoe/internal/investigation"
	"github.com/mysterydesk/gumshoe/internal/models"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "case",
	Title: "Case operations",
}

func init() {
	Generate.Flags().String("difficulty", "medium", "easy, medium or hard")
	Generate.Flags().String("theme", "", "optional theme, e.g. art theft")
	Generate.Flags().String("location", "", "optional location")
	Generate.Flags().String("era", "", "optional era, e.g. 1920s")
	Generate.Flags().String("language", "en", "case language (en or fi)")
}

var Generate = &cobra.Command{
	Use:     "gen",
	GroupID: "case",
	Short:   "Generate case",
	Long:    `Generates a complete mystery case and prints it as JSON`,
	Run: func(cmd *cobra.Command, _ []string) {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		service := investigation.NewService(ai.NewClient(), logger, true)

		difficulty, _ := cmd.Flags().GetString("difficulty")
		theme, _ := cmd.Flags().GetString("theme")
		location, _ := cmd.Flags().GetString("location")
		era, _ := cmd.Flags().GetString("era")
		language, _ := cmd.Flags().GetString("language")

		generated, err := service.GenerateCase(context.Background(), investigation.GenerationParams{
			Difficulty: models.Difficulty(difficulty),
			Theme:      theme,
			Location:   location,
			Era:        era,
			Language:   language,
		})
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Case generation error: %v\n", err)
			os.Exit(1)
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(generated); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Encode error: %v\n", err)
			os.Exit(1)
		}
	},
}
