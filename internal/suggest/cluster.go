package suggest

import "time"

// cluster is a transient grouping of photos sharing a temporal window or a
// spatial neighborhood. Clusters exist only within a single suggestion
// computation and are discarded after ranking.
type cluster struct {
	key    string
	photos []Photo

	// anchor metadata used to derive the suggestion name
	start    time.Time // temporal clusters: start of the session
	lat, lon float64   // spatial clusters: the seed point
}

func (c *cluster) photoIDs() []int64 {
	ids := make([]int64, len(c.photos))
	for i, p := range c.photos {
		ids[i] = p.ID
	}
	return ids
}

// groupList is an insertion-ordered mapping from cluster key to cluster.
// Keys are unique; the ordering is the order buckets were first created.
type groupList struct {
	order []string
	byKey map[string]*cluster
}

func newGroupList() *groupList {
	return &groupList{byKey: make(map[string]*cluster)}
}

// getOrCreate returns the cluster for key, creating an empty bucket on first
// use so the same key never produces two buckets.
func (g *groupList) getOrCreate(key string) *cluster {
	if c, ok := g.byKey[key]; ok {
		return c
	}
	c := &cluster{key: key}
	g.byKey[key] = c
	g.order = append(g.order, key)
	return c
}

// clusters returns all buckets in insertion order.
func (g *groupList) clusters() []*cluster {
	out := make([]*cluster, 0, len(g.order))
	for _, key := range g.order {
		out = append(out, g.byKey[key])
	}
	return out
}
