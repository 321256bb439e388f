package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jvokurka/tripbook/internal/config"
	"github.com/jvokurka/tripbook/internal/database/postgres"
	"github.com/jvokurka/tripbook/internal/suggest"
	"github.com/jvokurka/tripbook/internal/web/handlers"
	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Print album suggestions for a trip",
	Long: `Compute album suggestions for a trip's unsorted photos and print them.
This runs the same grouping the web API uses, without writing anything.

Examples:
  # Suggestions for trip 12 owned by user 3
  tripbook suggest --user 3 --trip 12

  # JSON output
  tripbook suggest --user 3 --trip 12 --json`,
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().Int64("user", 0, "Owning user id (required)")
	suggestCmd.Flags().Int64("trip", 0, "Trip id (required)")
	suggestCmd.Flags().Bool("json", false, "Output as JSON")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	userID := mustGetInt64(cmd, "user")
	tripID := mustGetInt64(cmd, "trip")
	jsonOutput := mustGetBool(cmd, "json")

	if userID == 0 || tripID == 0 {
		return errors.New("--user and --trip are required")
	}

	cfg := config.Load()
	if cfg.Database.URL == "" {
		return errors.New("DATABASE_URL environment variable is required")
	}
	if err := postgres.Initialize(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize PostgreSQL: %w", err)
	}

	pool := postgres.GetGlobalPool()
	engine := handlers.NewSuggestionEngine(
		postgres.NewTripRepository(pool),
		postgres.NewPhotoRepository(pool),
		postgres.NewAlbumRepository(pool),
		newLogger(),
	)

	suggestions, err := engine.Suggestions(context.Background(), userID, tripID)
	if errors.Is(err, suggest.ErrTripNotFound) {
		return fmt.Errorf("trip %d not found for user %d", tripID, userID)
	}
	if err != nil {
		return fmt.Errorf("computing suggestions: %w", err)
	}

	if jsonOutput {
		return outputJSON(map[string]any{"suggestions": suggestions})
	}

	if len(suggestions) == 0 {
		fmt.Println("No album suggestions for this trip.")
		return nil
	}

	fmt.Printf("Found %d album suggestion(s):\n\n", len(suggestions))
	for i, s := range suggestions {
		fmt.Printf("%d. %s (%s, confidence %.2f)\n", i+1, s.Name, s.Type, s.Confidence)
		fmt.Printf("   %d photos: %s\n", len(s.PhotoIDs), joinIDs(s.PhotoIDs))
	}
	return nil
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ", ")
}
