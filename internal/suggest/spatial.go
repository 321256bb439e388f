package suggest

import "fmt"

// clusterByLocation groups photos by proximity using greedy fixed-radius
// assignment. k-means would need the number of destinations up front; a trip
// has an unknown number of them, so the first unassigned photo seeds a
// cluster and absorbs every unassigned photo within the radius.
//
// Every distance test is against the SEED photo, never a running centroid,
// so two members can sit up to twice the radius apart on opposite sides of
// the seed. That shape is accepted behavior; switching to centroid-anchored
// assignment would change suggestion output.
//
// The scan is O(n^2) over one trip's unsorted photos. Suggestions run on a
// bounded, user-triggered action, not a batch job, so no index is kept.
func clusterByLocation(photos []Photo, params Params) []*cluster {
	located := make([]Photo, 0, len(photos))
	for _, p := range photos {
		if p.Latitude != nil && p.Longitude != nil {
			located = append(located, p)
		}
	}

	assigned := make([]bool, len(located))
	var kept []*cluster
	for i, seed := range located {
		if assigned[i] {
			continue
		}
		assigned[i] = true

		c := &cluster{
			key:    fmt.Sprintf("%.2f,%.2f|%d", *seed.Latitude, *seed.Longitude, seed.ID),
			lat:    *seed.Latitude,
			lon:    *seed.Longitude,
			photos: []Photo{seed},
		}
		for j, other := range located {
			if assigned[j] {
				continue
			}
			d := Distance(*seed.Latitude, *seed.Longitude, *other.Latitude, *other.Longitude)
			if d <= params.ClusterRadiusMeters {
				c.photos = append(c.photos, other)
				assigned[j] = true
			}
		}

		if len(c.photos) >= params.MinClusterSize {
			kept = append(kept, c)
		}
	}
	return kept
}
