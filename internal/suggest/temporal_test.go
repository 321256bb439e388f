package suggest

import (
	"testing"
	"time"
)

func timedPhoto(id int64, ts time.Time) Photo {
	return Photo{ID: id, TakenAt: &ts}
}

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 14, hour, min, 0, 0, time.UTC)
}

func TestClusterByTime_QuietGapSplitsSessions(t *testing.T) {
	// 10:00, 10:30, 11:00 fall within the 2h window of the 10:00 start;
	// 14:00 is 4h past the start and opens a new group of one, which is
	// dropped for being below the minimum size.
	photos := []Photo{
		timedPhoto(1, at(10, 0)),
		timedPhoto(2, at(10, 30)),
		timedPhoto(3, at(11, 0)),
		timedPhoto(4, at(14, 0)),
	}

	clusters := clusterByTime(photos, DefaultParams())
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	ids := clusters[0].photoIDs()
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Errorf("expected photos [1 2 3], got %v", ids)
	}
	if !clusters[0].start.Equal(at(10, 0)) {
		t.Errorf("expected cluster start 10:00, got %v", clusters[0].start)
	}
}

func TestClusterByTime_WindowAnchoredToStartNotPreviousPhoto(t *testing.T) {
	// 11:30 is 1:30 after the 10:00 start and joins. 12:30 is only 1:00
	// after 11:30 but 2:30 after the start, so it does NOT join: the window
	// is anchored to the group start, not a rolling last-photo timestamp.
	// Both resulting groups are below the minimum size and are dropped.
	photos := []Photo{
		timedPhoto(1, at(10, 0)),
		timedPhoto(2, at(11, 30)),
		timedPhoto(3, at(12, 30)),
	}

	clusters := clusterByTime(photos, DefaultParams())
	if len(clusters) != 0 {
		t.Fatalf("expected no clusters of minimum size, got %d", len(clusters))
	}
}

func TestClusterByTime_FinalGroupFlushed(t *testing.T) {
	// The last open group must be kept when the sweep ends mid-session.
	photos := []Photo{
		timedPhoto(1, at(9, 0)),
		timedPhoto(2, at(15, 0)),
		timedPhoto(3, at(15, 10)),
		timedPhoto(4, at(15, 20)),
	}

	clusters := clusterByTime(photos, DefaultParams())
	if len(clusters) != 1 {
		t.Fatalf("expected the trailing session to be flushed, got %d clusters", len(clusters))
	}
	if got := len(clusters[0].photos); got != 3 {
		t.Errorf("expected 3 photos in trailing session, got %d", got)
	}
}

func TestClusterByTime_IgnoresPhotosWithoutTimestamp(t *testing.T) {
	photos := []Photo{
		{ID: 99}, // no timestamp
		timedPhoto(1, at(10, 0)),
		timedPhoto(2, at(10, 5)),
		timedPhoto(3, at(10, 10)),
	}

	clusters := clusterByTime(photos, DefaultParams())
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	for _, id := range clusters[0].photoIDs() {
		if id == 99 {
			t.Error("photo without timestamp must not be clustered")
		}
	}
}

func TestClusterByTime_UnsortedInputIsSortedFirst(t *testing.T) {
	photos := []Photo{
		timedPhoto(3, at(11, 0)),
		timedPhoto(1, at(10, 0)),
		timedPhoto(2, at(10, 30)),
	}

	clusters := clusterByTime(photos, DefaultParams())
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	ids := clusters[0].photoIDs()
	if ids[0] != 1 || ids[1] != 2 || ids[2] != 3 {
		t.Errorf("expected timestamp order [1 2 3], got %v", ids)
	}
}

func TestClusterByTime_SameTimestampJoinsOpenGroup(t *testing.T) {
	ts := at(10, 0)
	photos := []Photo{
		timedPhoto(1, ts),
		timedPhoto(2, ts),
		timedPhoto(3, ts),
	}

	clusters := clusterByTime(photos, DefaultParams())
	if len(clusters) != 1 {
		t.Fatalf("identical timestamps must share one bucket, got %d clusters", len(clusters))
	}
}
