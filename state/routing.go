package state

import (
	"slices"
	"time"
)

type RouterId uint16

// RouteEntry is one known destination in the route table.
type RouteEntry struct {
	Dest    RouterId
	Metric  uint16
	NextHop RouterId
	// LastHeard is the time of the last refresh. It is zero while the entry is
	// frozen in the poisoned state.
	LastHeard time.Time
}

func (e *RouteEntry) TimerRunning() bool {
	return !e.LastHeard.IsZero()
}

// Poison marks the entry unreachable and stops its timer. The entry is kept so
// the unreachability keeps being advertised, it is never deleted.
func (e *RouteEntry) Poison() {
	e.Metric = Infinity
	e.LastHeard = time.Time{}
}

// RouteTable maps destination ids to entries. It must only be accessed on the
// main loop goroutine.
type RouteTable map[RouterId]*RouteEntry

// NewRouteTable seeds a table with the self-entry plus one entry per configured
// output neighbour at the configured link metric.
func NewRouteTable(cfg *Config) RouteTable {
	now := time.Now()
	t := RouteTable{
		cfg.RouterId: {
			Dest:      cfg.RouterId,
			Metric:    0,
			NextHop:   cfg.RouterId,
			LastHeard: now,
		},
	}
	for _, out := range cfg.Outputs {
		t[out.Router] = &RouteEntry{
			Dest:      out.Router,
			Metric:    out.Metric,
			NextHop:   out.Router,
			LastHeard: now,
		}
	}
	return t
}

// Snapshot returns copies of all entries ordered by destination id.
func (t RouteTable) Snapshot() []RouteEntry {
	entries := make([]RouteEntry, 0, len(t))
	for _, e := range t {
		entries = append(entries, *e)
	}
	slices.SortFunc(entries, func(a, b RouteEntry) int {
		return int(a.Dest) - int(b.Dest)
	})
	return entries
}
