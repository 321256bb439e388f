package suggest

import (
	"sort"
	"strconv"
)

// clusterByTime groups photos into sessions separated by a quiet gap.
//
// Photos without a timestamp are ignored. The rest are stably sorted by
// timestamp and swept once: a photo joins the open group while its timestamp
// is within the window of the group's START timestamp. Anchoring to the
// group start rather than the previous photo bounds every session to at most
// one window; a chain of small gaps cannot drift past it.
//
// Groups are keyed by calendar date plus start timestamp so two sessions
// starting at the same instant never share a bucket with a different date.
// Groups smaller than minSize are dropped, including the final group, which
// is flushed by the same size check after the sweep.
func clusterByTime(photos []Photo, params Params) []*cluster {
	timed := make([]Photo, 0, len(photos))
	for _, p := range photos {
		if p.TakenAt != nil {
			timed = append(timed, p)
		}
	}
	sort.SliceStable(timed, func(i, j int) bool {
		return timed[i].TakenAt.Before(*timed[j].TakenAt)
	})

	window := params.QuietWindow()
	groups := newGroupList()
	var open *cluster
	for _, p := range timed {
		if open != nil && p.TakenAt.Sub(open.start) <= window {
			open.photos = append(open.photos, p)
			continue
		}
		key := p.TakenAt.Format("2006-01-02") + "|" +
			strconv.FormatInt(p.TakenAt.UnixNano(), 10)
		open = groups.getOrCreate(key)
		open.start = *p.TakenAt
		open.photos = append(open.photos, p)
	}

	var kept []*cluster
	for _, c := range groups.clusters() {
		if len(c.photos) >= params.MinClusterSize {
			kept = append(kept, c)
		}
	}
	return kept
}
