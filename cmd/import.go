package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jvokurka/tripbook/internal/config"
	"github.com/jvokurka/tripbook/internal/database"
	"github.com/jvokurka/tripbook/internal/database/mariadb"
	"github.com/jvokurka/tripbook/internal/database/postgres"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import galleries from a legacy MariaDB gallery database",
	Long: `Import galleries and their photo metadata from an old photo gallery
database into Tripbook. Each legacy gallery becomes a trip owned by the
given user; its photos arrive unsorted and can then be grouped with the
usual album suggestions.

Requires LEGACY_DATABASE_URL to be set (MariaDB DSN).

Examples:
  # Preview what would be imported
  tripbook import --user 3 --dry-run

  # Import everything for user 3
  tripbook import --user 3`,
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().Int64("user", 0, "Owning user id for imported trips (required)")
	importCmd.Flags().Bool("dry-run", false, "Preview the import without writing")
	importCmd.Flags().Bool("json", false, "Output as JSON")
}

// ImportResult represents the result of an import operation
type ImportResult struct {
	Success        bool  `json:"success"`
	GalleriesFound int   `json:"galleries_found"`
	TripsCreated   int   `json:"trips_created"`
	PhotosImported int   `json:"photos_imported"`
	PhotoErrors    int   `json:"photo_errors"`
	DryRun         bool  `json:"dry_run"`
	DurationMs     int64 `json:"duration_ms"`
}

func runImport(cmd *cobra.Command, args []string) error {
	userID := mustGetInt64(cmd, "user")
	dryRun := mustGetBool(cmd, "dry-run")
	jsonOutput := mustGetBool(cmd, "json")

	if userID == 0 {
		return errors.New("--user is required")
	}

	ctx := context.Background()
	cfg := config.Load()
	startTime := time.Now()

	if cfg.Legacy.DatabaseURL == "" {
		return errors.New("LEGACY_DATABASE_URL environment variable is required")
	}
	if cfg.Database.URL == "" {
		return errors.New("DATABASE_URL environment variable is required")
	}
	if err := postgres.Initialize(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize PostgreSQL: %w", err)
	}

	pool := postgres.GetGlobalPool()
	trips := postgres.NewTripRepository(pool)
	photos := postgres.NewPhotoRepository(pool)

	if !jsonOutput {
		fmt.Println("Connecting to legacy gallery MariaDB...")
	}
	legacy, err := mariadb.NewPool(cfg.Legacy.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to MariaDB: %w", err)
	}
	defer legacy.Close()

	galleries, err := legacy.ListGalleries(ctx)
	if err != nil {
		return fmt.Errorf("failed to list galleries: %w", err)
	}
	total, err := legacy.CountPhotos(ctx)
	if err != nil {
		return fmt.Errorf("failed to count photos: %w", err)
	}

	if !jsonOutput {
		fmt.Printf("Found %d galleries with %d photos\n", len(galleries), total)
		if dryRun {
			fmt.Println("DRY RUN - no changes will be written")
		}
	}

	var bar *progressbar.ProgressBar
	if !jsonOutput && !dryRun {
		bar = progressbar.NewOptions(total,
			progressbar.OptionSetDescription("Importing photos"),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("photos"),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionFullWidth(),
		)
	}

	tripsCreated := 0
	photosImported := 0
	photoErrors := 0

	for _, gallery := range galleries {
		legacyPhotos, err := legacy.ListGalleryPhotos(ctx, gallery.ID)
		if err != nil {
			return fmt.Errorf("failed to list photos for gallery %d: %w", gallery.ID, err)
		}

		if dryRun {
			if !jsonOutput {
				fmt.Printf("  %s (%s): %d photos\n", gallery.Title, gallery.Place, len(legacyPhotos))
			}
			tripsCreated++
			photosImported += len(legacyPhotos)
			continue
		}

		trip := &database.Trip{
			UserID:      userID,
			Title:       gallery.Title,
			Destination: gallery.Place,
		}
		if err := trips.CreateTrip(ctx, trip); err != nil {
			return fmt.Errorf("failed to create trip for gallery %d: %w", gallery.ID, err)
		}
		tripsCreated++

		for i := range legacyPhotos {
			lp := &legacyPhotos[i]
			photo := &database.Photo{
				TripID:    trip.ID,
				Caption:   lp.Caption,
				TakenAt:   lp.TakenAt,
				Latitude:  lp.Latitude,
				Longitude: lp.Longitude,
			}
			if err := photos.AddPhoto(ctx, photo); err != nil {
				photoErrors++
			} else {
				photosImported++
			}
			if bar != nil {
				bar.Add(1)
			}
		}
	}

	if bar != nil {
		fmt.Println()
	}

	result := ImportResult{
		Success:        true,
		GalleriesFound: len(galleries),
		TripsCreated:   tripsCreated,
		PhotosImported: photosImported,
		PhotoErrors:    photoErrors,
		DryRun:         dryRun,
		DurationMs:     time.Since(startTime).Milliseconds(),
	}

	if jsonOutput {
		return outputJSON(result)
	}

	fmt.Println("\nImport complete!")
	fmt.Printf("  Galleries found:  %d\n", result.GalleriesFound)
	fmt.Printf("  Trips created:    %d\n", result.TripsCreated)
	fmt.Printf("  Photos imported:  %d\n", result.PhotosImported)
	if result.PhotoErrors > 0 {
		fmt.Printf("  Photo errors:     %d\n", result.PhotoErrors)
	}
	if dryRun {
		fmt.Printf("  Mode:             DRY RUN\n")
	}
	return nil
}
