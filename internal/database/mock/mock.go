// Package mock provides mock implementations of database interfaces for testing.
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jvokurka/tripbook/internal/database"
	"github.com/jvokurka/tripbook/internal/slug"
)

// MockUserStore is a mock implementation of database.UserStore
type MockUserStore struct {
	mu      sync.RWMutex
	users   map[int64]*database.User
	counter int64

	// Error injection
	CreateUserError error
	GetUserError    error
}

// NewMockUserStore creates a new mock user store
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		users: make(map[int64]*database.User),
	}
}

// AddUser adds a user to the mock store and returns its id
func (m *MockUserStore) AddUser(user database.User) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.ID == 0 {
		m.counter++
		user.ID = m.counter
	}
	m.users[user.ID] = &user
	return user.ID
}

func (m *MockUserStore) CreateUser(ctx context.Context, user *database.User) error {
	if m.CreateUserError != nil {
		return m.CreateUserError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	user.ID = m.counter
	user.CreatedAt = time.Now()
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *MockUserStore) GetUser(ctx context.Context, id int64) (*database.User, error) {
	if m.GetUserError != nil {
		return nil, m.GetUserError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (m *MockUserStore) GetUserByEmail(ctx context.Context, email string) (*database.User, error) {
	if m.GetUserError != nil {
		return nil, m.GetUserError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

// MockTripStore is a mock implementation of database.TripStore
type MockTripStore struct {
	mu      sync.RWMutex
	trips   map[int64]*database.Trip
	counter int64

	// Error injection
	CreateTripError      error
	GetTripError         error
	ListTripsError       error
	VerifyOwnershipError error
}

// NewMockTripStore creates a new mock trip store
func NewMockTripStore() *MockTripStore {
	return &MockTripStore{
		trips: make(map[int64]*database.Trip),
	}
}

// AddTrip adds a trip to the mock store and returns its id
func (m *MockTripStore) AddTrip(trip database.Trip) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if trip.ID == 0 {
		m.counter++
		trip.ID = m.counter
	}
	m.trips[trip.ID] = &trip
	return trip.ID
}

func (m *MockTripStore) CreateTrip(ctx context.Context, trip *database.Trip) error {
	if m.CreateTripError != nil {
		return m.CreateTripError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	trip.ID = m.counter
	now := time.Now()
	trip.CreatedAt = now
	trip.UpdatedAt = now
	stored := *trip
	m.trips[trip.ID] = &stored
	return nil
}

func (m *MockTripStore) GetTrip(ctx context.Context, id int64) (*database.Trip, error) {
	if m.GetTripError != nil {
		return nil, m.GetTripError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.trips[id]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (m *MockTripStore) ListTrips(ctx context.Context, userID int64) ([]database.Trip, error) {
	if m.ListTripsError != nil {
		return nil, m.ListTripsError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var trips []database.Trip
	for _, t := range m.trips {
		if t.UserID == userID {
			trips = append(trips, *t)
		}
	}
	return trips, nil
}

func (m *MockTripStore) VerifyTripOwnership(ctx context.Context, userID, tripID int64) (bool, error) {
	if m.VerifyOwnershipError != nil {
		return false, m.VerifyOwnershipError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.trips[tripID]
	return ok && t.UserID == userID, nil
}

// MockPhotoStore is a mock implementation of database.PhotoStore
type MockPhotoStore struct {
	mu       sync.RWMutex
	photos   map[int64]*database.Photo
	inAlbums map[int64]bool // photo ids already assigned to an album
	counter  int64

	// Error injection
	AddPhotoError error
	ListError     error
	CountError    error
}

// NewMockPhotoStore creates a new mock photo store
func NewMockPhotoStore() *MockPhotoStore {
	return &MockPhotoStore{
		photos:   make(map[int64]*database.Photo),
		inAlbums: make(map[int64]bool),
	}
}

// AddPhotoDirect adds a photo to the mock store and returns its id
func (m *MockPhotoStore) AddPhotoDirect(photo database.Photo) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if photo.ID == 0 {
		m.counter++
		photo.ID = m.counter
	}
	m.photos[photo.ID] = &photo
	return photo.ID
}

// MarkAssigned marks photos as already belonging to an album
func (m *MockPhotoStore) MarkAssigned(photoIDs ...int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range photoIDs {
		m.inAlbums[id] = true
	}
}

func (m *MockPhotoStore) AddPhoto(ctx context.Context, photo *database.Photo) error {
	if m.AddPhotoError != nil {
		return m.AddPhotoError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	photo.ID = m.counter
	photo.CreatedAt = time.Now()
	stored := *photo
	m.photos[photo.ID] = &stored
	return nil
}

func (m *MockPhotoStore) ListUnsortedPhotos(ctx context.Context, tripID int64) ([]database.Photo, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var photos []database.Photo
	// Insertion order follows ascending ids.
	for id := int64(1); id <= m.counter; id++ {
		p, ok := m.photos[id]
		if !ok || p.TripID != tripID || m.inAlbums[id] {
			continue
		}
		photos = append(photos, *p)
	}
	return photos, nil
}

func (m *MockPhotoStore) CountPhotosInTrip(ctx context.Context, photoIDs []int64, tripID int64) (int, error) {
	if m.CountError != nil {
		return 0, m.CountError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := make(map[int64]bool)
	for _, id := range photoIDs {
		if p, ok := m.photos[id]; ok && p.TripID == tripID {
			seen[id] = true
		}
	}
	return len(seen), nil
}

// MockAlbumStore is a mock implementation of database.AlbumStore
type MockAlbumStore struct {
	mu          sync.RWMutex
	albums      map[string]*database.Album
	assignments map[string][]database.AlbumPhoto
	photos      *MockPhotoStore // optional, supplies photo rows for GetAlbumPhotos
	counter     int

	// Error injection
	CreateAlbumError    error
	ListAlbumsError     error
	GetAlbumError       error
	GetAlbumPhotosError error
}

// NewMockAlbumStore creates a new mock album store. The photo store may be
// nil when GetAlbumPhotos is not exercised.
func NewMockAlbumStore(photos *MockPhotoStore) *MockAlbumStore {
	return &MockAlbumStore{
		albums:      make(map[string]*database.Album),
		assignments: make(map[string][]database.AlbumPhoto),
		photos:      photos,
	}
}

func (m *MockAlbumStore) CreateAlbumWithAssignments(ctx context.Context, tripID int64, name string, photoIDs []int64) (string, error) {
	if m.CreateAlbumError != nil {
		return "", m.CreateAlbumError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	id := fmt.Sprintf("album-%d", m.counter)
	m.albums[id] = &database.Album{
		ID:         id,
		TripID:     tripID,
		Name:       name,
		Slug:       slug.Make(name),
		PhotoCount: len(photoIDs),
		CreatedAt:  time.Now(),
	}
	for i, photoID := range photoIDs {
		m.assignments[id] = append(m.assignments[id], database.AlbumPhoto{
			AlbumID:  id,
			PhotoID:  photoID,
			Position: i,
		})
	}
	if m.photos != nil {
		m.photos.MarkAssigned(photoIDs...)
	}
	return id, nil
}

func (m *MockAlbumStore) ListAlbums(ctx context.Context, tripID int64) ([]database.Album, error) {
	if m.ListAlbumsError != nil {
		return nil, m.ListAlbumsError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var albums []database.Album
	for _, a := range m.albums {
		if a.TripID == tripID {
			albums = append(albums, *a)
		}
	}
	return albums, nil
}

func (m *MockAlbumStore) GetAlbum(ctx context.Context, id string) (*database.Album, error) {
	if m.GetAlbumError != nil {
		return nil, m.GetAlbumError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.albums[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (m *MockAlbumStore) GetAlbumPhotos(ctx context.Context, albumID string) ([]database.Photo, error) {
	if m.GetAlbumPhotosError != nil {
		return nil, m.GetAlbumPhotosError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var photos []database.Photo
	for _, ap := range m.assignments[albumID] {
		if m.photos == nil {
			photos = append(photos, database.Photo{ID: ap.PhotoID})
			continue
		}
		m.photos.mu.RLock()
		if p, ok := m.photos.photos[ap.PhotoID]; ok {
			photos = append(photos, *p)
		}
		m.photos.mu.RUnlock()
	}
	return photos, nil
}

// Assignments returns the stored assignments for an album, in position order.
func (m *MockAlbumStore) Assignments(albumID string) []database.AlbumPhoto {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.assignments[albumID]
}

// Verify interface compliance
var _ database.UserStore = (*MockUserStore)(nil)
var _ database.TripStore = (*MockTripStore)(nil)
var _ database.PhotoStore = (*MockPhotoStore)(nil)
var _ database.AlbumStore = (*MockAlbumStore)(nil)
