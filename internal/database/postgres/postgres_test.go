//go:build integration

package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jvokurka/tripbook/internal/config"
	"github.com/jvokurka/tripbook/internal/database"
	"github.com/jvokurka/tripbook/internal/web/middleware"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestContainer(t *testing.T) (*Pool, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("Docker not available or container failed to start, skipping integration test: %v", err)
		return nil, func() {}
	}
	if container == nil {
		t.Skip("Docker not available, skipping integration test")
		return nil, func() {}
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	dbURL := fmt.Sprintf("postgres://test:test@%s:%s/testdb?sslmode=disable", host, port.Port())

	cfg := &config.DatabaseConfig{
		URL:          dbURL,
		MaxOpenConns: 5,
		MaxIdleConns: 2,
	}

	pool, err := NewPool(cfg)
	if err != nil {
		container.Terminate(ctx)
		t.Fatalf("Failed to create pool: %v", err)
	}

	// Run migrations
	if err := pool.Migrate(ctx); err != nil {
		pool.Close()
		container.Terminate(ctx)
		t.Fatalf("Failed to run migrations: %v", err)
	}

	cleanup := func() {
		pool.Close()
		container.Terminate(ctx)
	}

	return pool, cleanup
}

// seedUserAndTrip creates a user with one trip and returns both ids.
func seedUserAndTrip(ctx context.Context, t *testing.T, pool *Pool) (int64, int64) {
	t.Helper()
	users := NewUserRepository(pool)
	trips := NewTripRepository(pool)

	user := &database.User{
		Email:        fmt.Sprintf("user%d@example.com", time.Now().UnixNano()),
		Name:         "Test User",
		PasswordHash: "not-a-real-hash",
	}
	if err := users.CreateUser(ctx, user); err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}

	trip := &database.Trip{
		UserID:      user.ID,
		Title:       "Test Trip",
		Destination: "Prague",
	}
	if err := trips.CreateTrip(ctx, trip); err != nil {
		t.Fatalf("Failed to create trip: %v", err)
	}

	return user.ID, trip.ID
}

func addPhoto(ctx context.Context, t *testing.T, repo *PhotoRepository, tripID int64, takenAt time.Time, lat, lon float64) int64 {
	t.Helper()
	photo := &database.Photo{
		TripID:    tripID,
		TakenAt:   &takenAt,
		Latitude:  &lat,
		Longitude: &lon,
	}
	if err := repo.AddPhoto(ctx, photo); err != nil {
		t.Fatalf("Failed to add photo: %v", err)
	}
	return photo.ID
}

func TestUserRepository(t *testing.T) {
	pool, cleanup := setupTestContainer(t)
	if pool == nil {
		return
	}
	defer cleanup()

	ctx := context.Background()
	repo := NewUserRepository(pool)

	t.Run("CreateAndGet", func(t *testing.T) {
		user := &database.User{
			Email:        "jana@example.com",
			Name:         "Jana",
			PasswordHash: "hash",
		}
		if err := repo.CreateUser(ctx, user); err != nil {
			t.Fatalf("Failed to create user: %v", err)
		}
		if user.ID == 0 {
			t.Fatal("Expected user id to be assigned")
		}

		got, err := repo.GetUser(ctx, user.ID)
		if err != nil {
			t.Fatalf("Failed to get user: %v", err)
		}
		if got == nil {
			t.Fatal("Expected user, got nil")
		}
		if got.Email != "jana@example.com" {
			t.Errorf("Expected email 'jana@example.com', got '%s'", got.Email)
		}
	})

	t.Run("GetByEmail", func(t *testing.T) {
		got, err := repo.GetUserByEmail(ctx, "jana@example.com")
		if err != nil {
			t.Fatalf("Failed to get user by email: %v", err)
		}
		if got == nil {
			t.Fatal("Expected user, got nil")
		}

		missing, err := repo.GetUserByEmail(ctx, "nobody@example.com")
		if err != nil {
			t.Fatalf("Failed to look up missing user: %v", err)
		}
		if missing != nil {
			t.Errorf("Expected nil for missing email, got %+v", missing)
		}
	})
}

func TestTripRepository(t *testing.T) {
	pool, cleanup := setupTestContainer(t)
	if pool == nil {
		return
	}
	defer cleanup()

	ctx := context.Background()
	repo := NewTripRepository(pool)
	userID, tripID := seedUserAndTrip(ctx, t, pool)

	t.Run("GetTrip", func(t *testing.T) {
		trip, err := repo.GetTrip(ctx, tripID)
		if err != nil {
			t.Fatalf("Failed to get trip: %v", err)
		}
		if trip == nil || trip.Title != "Test Trip" {
			t.Errorf("Expected trip 'Test Trip', got %+v", trip)
		}
	})

	t.Run("VerifyOwnership", func(t *testing.T) {
		owned, err := repo.VerifyTripOwnership(ctx, userID, tripID)
		if err != nil {
			t.Fatalf("Failed to verify ownership: %v", err)
		}
		if !owned {
			t.Error("Expected ownership for the creating user")
		}

		owned, err = repo.VerifyTripOwnership(ctx, userID+1, tripID)
		if err != nil {
			t.Fatalf("Failed to verify ownership: %v", err)
		}
		if owned {
			t.Error("Expected no ownership for another user")
		}
	})

	t.Run("ListTrips", func(t *testing.T) {
		trips, err := repo.ListTrips(ctx, userID)
		if err != nil {
			t.Fatalf("Failed to list trips: %v", err)
		}
		if len(trips) != 1 {
			t.Errorf("Expected 1 trip, got %d", len(trips))
		}
	})
}

func TestPhotoAndAlbumRepositories(t *testing.T) {
	pool, cleanup := setupTestContainer(t)
	if pool == nil {
		return
	}
	defer cleanup()

	ctx := context.Background()
	photos := NewPhotoRepository(pool)
	albums := NewAlbumRepository(pool)
	_, tripID := seedUserAndTrip(ctx, t, pool)

	base := time.Date(2025, 5, 10, 9, 0, 0, 0, time.UTC)
	var ids []int64
	for i := 0; i < 4; i++ {
		ids = append(ids, addPhoto(ctx, t, photos, tripID, base.Add(time.Duration(i)*time.Minute), 50.0755, 14.4378))
	}

	t.Run("CountPhotosInTrip", func(t *testing.T) {
		count, err := photos.CountPhotosInTrip(ctx, ids, tripID)
		if err != nil {
			t.Fatalf("Failed to count photos: %v", err)
		}
		if count != 4 {
			t.Errorf("Expected 4, got %d", count)
		}

		count, err = photos.CountPhotosInTrip(ctx, append(ids, 99999), tripID)
		if err != nil {
			t.Fatalf("Failed to count photos: %v", err)
		}
		if count != 4 {
			t.Errorf("Expected 4 with a foreign id mixed in, got %d", count)
		}
	})

	t.Run("CreateAlbumWithAssignments", func(t *testing.T) {
		// Reversed order must be preserved position by position.
		ordered := []int64{ids[3], ids[1], ids[0]}
		albumID, err := albums.CreateAlbumWithAssignments(ctx, tripID, "May Morning", ordered)
		if err != nil {
			t.Fatalf("Failed to create album: %v", err)
		}

		album, err := albums.GetAlbum(ctx, albumID)
		if err != nil {
			t.Fatalf("Failed to get album: %v", err)
		}
		if album == nil {
			t.Fatal("Expected album, got nil")
		}
		if album.Slug != "may-morning" {
			t.Errorf("Expected slug 'may-morning', got '%s'", album.Slug)
		}
		if album.PhotoCount != 3 {
			t.Errorf("Expected photo count 3, got %d", album.PhotoCount)
		}

		got, err := albums.GetAlbumPhotos(ctx, albumID)
		if err != nil {
			t.Fatalf("Failed to get album photos: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("Expected 3 photos, got %d", len(got))
		}
		for i, p := range got {
			if p.ID != ordered[i] {
				t.Errorf("Position %d: expected photo %d, got %d", i, ordered[i], p.ID)
			}
		}
	})

	t.Run("UnsortedExcludesAssigned", func(t *testing.T) {
		unsorted, err := photos.ListUnsortedPhotos(ctx, tripID)
		if err != nil {
			t.Fatalf("Failed to list unsorted photos: %v", err)
		}
		if len(unsorted) != 1 || unsorted[0].ID != ids[2] {
			t.Errorf("Expected only photo %d unsorted, got %+v", ids[2], unsorted)
		}
	})

	t.Run("DoubleAssignRollsBack", func(t *testing.T) {
		// ids[0] is already in an album; the whole insert must fail.
		_, err := albums.CreateAlbumWithAssignments(ctx, tripID, "Overlap", []int64{ids[2], ids[0]})
		if err == nil {
			t.Fatal("Expected unique violation, got nil")
		}

		unsorted, err := photos.ListUnsortedPhotos(ctx, tripID)
		if err != nil {
			t.Fatalf("Failed to list unsorted photos: %v", err)
		}
		if len(unsorted) != 1 || unsorted[0].ID != ids[2] {
			t.Errorf("Expected rollback to keep photo %d unsorted, got %+v", ids[2], unsorted)
		}

		list, err := albums.ListAlbums(ctx, tripID)
		if err != nil {
			t.Fatalf("Failed to list albums: %v", err)
		}
		if len(list) != 1 {
			t.Errorf("Expected 1 album after rollback, got %d", len(list))
		}
	})
}

func TestSessionRepository(t *testing.T) {
	pool, cleanup := setupTestContainer(t)
	if pool == nil {
		return
	}
	defer cleanup()

	ctx := context.Background()
	repo := NewSessionRepository(pool)
	userID, _ := seedUserAndTrip(ctx, t, pool)

	t.Run("SaveAndGet", func(t *testing.T) {
		err := repo.Save(ctx, &middleware.Session{
			ID:        "sess-1",
			UserID:    userID,
			CreatedAt: time.Now(),
			ExpiresAt: time.Now().Add(time.Hour),
		})
		if err != nil {
			t.Fatalf("Failed to save session: %v", err)
		}

		got, err := repo.Get(ctx, "sess-1")
		if err != nil {
			t.Fatalf("Failed to get session: %v", err)
		}
		if got == nil || got.UserID != userID {
			t.Errorf("Expected session for user %d, got %+v", userID, got)
		}
	})

	t.Run("ExpiredInvisible", func(t *testing.T) {
		err := repo.Save(ctx, &middleware.Session{
			ID:        "sess-old",
			UserID:    userID,
			CreatedAt: time.Now().Add(-2 * time.Hour),
			ExpiresAt: time.Now().Add(-time.Hour),
		})
		if err != nil {
			t.Fatalf("Failed to save session: %v", err)
		}

		got, err := repo.Get(ctx, "sess-old")
		if err != nil {
			t.Fatalf("Failed to get session: %v", err)
		}
		if got != nil {
			t.Errorf("Expected nil for expired session, got %+v", got)
		}

		deleted, err := repo.DeleteExpired(ctx)
		if err != nil {
			t.Fatalf("Failed to delete expired sessions: %v", err)
		}
		if deleted != 1 {
			t.Errorf("Expected 1 expired session deleted, got %d", deleted)
		}
	})
}

func TestMigrations(t *testing.T) {
	pool, cleanup := setupTestContainer(t)
	if pool == nil {
		return
	}
	defer cleanup()

	ctx := context.Background()

	// Check migrations were applied
	applied, err := pool.MigrationsApplied(ctx)
	if err != nil {
		t.Fatalf("Failed to get applied migrations: %v", err)
	}

	expectedMigrations := []string{
		"001_create_core_tables.sql",
		"002_create_indexes.sql",
	}

	if len(applied) != len(expectedMigrations) {
		t.Errorf("Expected %d migrations, got %d", len(expectedMigrations), len(applied))
	}

	for i, expected := range expectedMigrations {
		if i < len(applied) && applied[i] != expected {
			t.Errorf("Migration %d: expected '%s', got '%s'", i, expected, applied[i])
		}
	}
}
