package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jvokurka/tripbook/internal/database"
	"github.com/jvokurka/tripbook/internal/database/mock"
	"github.com/jvokurka/tripbook/internal/web/middleware"
	"github.com/rs/zerolog"
)

// testStores bundles fresh mock stores for a handler test.
type testStores struct {
	users  *mock.MockUserStore
	trips  *mock.MockTripStore
	photos *mock.MockPhotoStore
	albums *mock.MockAlbumStore
}

func newTestStores() *testStores {
	photos := mock.NewMockPhotoStore()
	return &testStores{
		users:  mock.NewMockUserStore(),
		trips:  mock.NewMockTripStore(),
		photos: photos,
		albums: mock.NewMockAlbumStore(photos),
	}
}

// seedTrip creates a trip owned by the given user and returns its id.
func (s *testStores) seedTrip(userID int64, title string) int64 {
	return s.trips.AddTrip(database.Trip{UserID: userID, Title: title})
}

// seedPhoto adds a photo with full metadata to a trip and returns its id.
func (s *testStores) seedPhoto(tripID int64, takenAt time.Time, lat, lon float64) int64 {
	return s.photos.AddPhotoDirect(database.Photo{
		TripID:    tripID,
		TakenAt:   &takenAt,
		Latitude:  &lat,
		Longitude: &lon,
	})
}

// requestWithSession creates a request carrying a session for the given user.
func requestWithSession(method, path string, body any, userID int64) *http.Request {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	session := &middleware.Session{
		ID:        "test-session",
		UserID:    userID,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	return req.WithContext(middleware.SetSessionInContext(req.Context(), session))
}

// requestWithChiParams creates a request with chi URL parameters
func requestWithChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

// parseJSONResponse parses a JSON response body into the target type
func parseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nBody: %s", err, recorder.Body.String())
	}
}

// assertStatusCode checks if the response has the expected status code
func assertStatusCode(t *testing.T, recorder *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if recorder.Code != expected {
		t.Errorf("expected status %d, got %d\nBody: %s", expected, recorder.Code, recorder.Body.String())
	}
}

// assertJSONError checks if the response is a JSON error with the expected message
func assertJSONError(t *testing.T, recorder *httptest.ResponseRecorder, expectedMessage string) {
	t.Helper()
	var result map[string]string
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse error response: %v\nBody: %s", err, recorder.Body.String())
	}
	if result["error"] != expectedMessage {
		t.Errorf("expected error '%s', got '%s'", expectedMessage, result["error"])
	}
}
