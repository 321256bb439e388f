package suggest

import "testing"

func locatedPhoto(id int64, lat, lon float64) Photo {
	return Photo{ID: id, Latitude: &lat, Longitude: &lon}
}

func TestClusterByLocation_RadiusBoundary(t *testing.T) {
	// B is ~445 m from the seed (inside 500 m); C is ~556 m (outside).
	photos := []Photo{
		locatedPhoto(1, 0.0000, 0.0000), // seed
		locatedPhoto(2, 0.0040, 0.0000), // ~445 m, in
		locatedPhoto(3, 0.0050, 0.0000), // ~556 m, out
		locatedPhoto(4, 0.0010, 0.0000), // ~111 m, in
	}

	clusters := clusterByLocation(photos, DefaultParams())
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	ids := clusters[0].photoIDs()
	if len(ids) != 3 {
		t.Fatalf("expected 3 members, got %v", ids)
	}
	for _, id := range ids {
		if id == 3 {
			t.Error("photo 3 is outside the radius and must not be clustered")
		}
	}
}

func TestClusterByLocation_SeedAnchoredNotCentroid(t *testing.T) {
	// Two photos each ~445 m from the seed on opposite sides are ~890 m
	// apart, yet both join: the radius test is against the seed point.
	photos := []Photo{
		locatedPhoto(1, 0.0000, 0.0000),
		locatedPhoto(2, 0.0040, 0.0000),
		locatedPhoto(3, -0.0040, 0.0000),
	}

	clusters := clusterByLocation(photos, DefaultParams())
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	if got := len(clusters[0].photos); got != 3 {
		t.Errorf("expected all 3 photos in the seed-anchored cluster, got %d", got)
	}
}

func TestClusterByLocation_BelowMinimumDropped(t *testing.T) {
	photos := []Photo{
		locatedPhoto(1, 0, 0),
		locatedPhoto(2, 0.001, 0),
		// third photo far away, so neither group reaches size 3
		locatedPhoto(3, 10, 10),
	}

	clusters := clusterByLocation(photos, DefaultParams())
	if len(clusters) != 0 {
		t.Errorf("expected no clusters, got %d", len(clusters))
	}
}

func TestClusterByLocation_IgnoresPhotosMissingCoordinates(t *testing.T) {
	lat := 0.0
	photos := []Photo{
		{ID: 90, Latitude: &lat}, // missing longitude
		{ID: 91},                 // missing both
		locatedPhoto(1, 0, 0),
		locatedPhoto(2, 0.001, 0),
		locatedPhoto(3, 0.002, 0),
	}

	clusters := clusterByLocation(photos, DefaultParams())
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	for _, id := range clusters[0].photoIDs() {
		if id == 90 || id == 91 {
			t.Errorf("photo %d lacks coordinates and must not be clustered", id)
		}
	}
}

func TestClusterByLocation_SeparateDestinations(t *testing.T) {
	// Two tight groups far apart become two clusters, seeded in input order.
	photos := []Photo{
		locatedPhoto(1, 48.8584, 2.2945),
		locatedPhoto(2, 48.8585, 2.2946),
		locatedPhoto(3, 48.8586, 2.2944),
		locatedPhoto(4, 48.8606, 2.3376), // ~3 km away
		locatedPhoto(5, 48.8607, 2.3377),
		locatedPhoto(6, 48.8605, 2.3375),
	}

	clusters := clusterByLocation(photos, DefaultParams())
	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(clusters))
	}
	if clusters[0].photos[0].ID != 1 || clusters[1].photos[0].ID != 4 {
		t.Error("clusters must be seeded in input order")
	}
}
