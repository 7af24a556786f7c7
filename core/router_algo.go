package core

import (
	"time"

	"github.com/quinburrell/routingdaemon/protocol"
	"github.com/quinburrell/routingdaemon/state"
)

// applyUpdate merges the records advertised by a neighbour into the route
// table following the distance-vector rules. It reports whether the table
// changed in a way worth advertising.
func applyUpdate(s *state.State, from state.RouterId, records []protocol.Record) bool {
	r := Get[*Router](s)
	now := time.Now()
	changed := refreshDirect(s, from, now)

	for _, rec := range records {
		dest := state.RouterId(rec.Dest)
		if dest == s.Id() {
			// the self-entry is owned by the timer loop
			continue
		}
		if rec.Metric > state.Infinity {
			s.Log.Debug("skipping record with metric out of range", "dest", dest, "metric", rec.Metric, "from", from)
			continue
		}
		sender, ok := r.Table[from]
		if !ok {
			s.Log.Debug("skipping record from unknown sender", "dest", dest, "from", from)
			continue
		}
		candidate := min(rec.Metric+sender.Metric, state.Infinity)

		entry, ok := r.Table[dest]
		switch {
		case !ok:
			if candidate == state.Infinity {
				// never learned a working route, nothing to poison
				continue
			}
			r.Table[dest] = &state.RouteEntry{
				Dest:      dest,
				Metric:    candidate,
				NextHop:   from,
				LastHeard: now,
			}
			changed = true
			dbgLogRouteChange(s, "new", dest, candidate, from)
		case entry.NextHop == from:
			// the current next hop is authoritative for this route, adopt the
			// advertised cost even when it got worse
			if candidate != entry.Metric {
				changed = true
				dbgLogRouteChange(s, "update", dest, candidate, from)
			}
			entry.Metric = candidate
			if candidate == state.Infinity {
				if entry.TimerRunning() {
					s.Log.Info("route poisoned by next hop", "dest", dest, "via", from)
				}
				entry.LastHeard = time.Time{}
			} else {
				entry.LastHeard = now
			}
		case candidate < entry.Metric:
			// strictly better via a different neighbour; ties keep the incumbent
			entry.Metric = candidate
			entry.NextHop = from
			entry.LastHeard = now
			changed = true
			dbgLogRouteChange(s, "switch", dest, candidate, from)
		}
	}
	return changed
}

// refreshDirect restores the direct entry for a neighbour we just heard from.
// Hearing from the neighbour proves the configured link is up; without this a
// poisoned direct route could never leave Infinity, since every candidate
// metric through it would clamp at Infinity.
func refreshDirect(s *state.State, from state.RouterId, now time.Time) bool {
	link, ok := s.Cfg.LinkTo(from)
	if !ok {
		return false
	}
	r := Get[*Router](s)
	entry, ok := r.Table[from]
	if !ok {
		r.Table[from] = &state.RouteEntry{
			Dest:      from,
			Metric:    link.Metric,
			NextHop:   from,
			LastHeard: now,
		}
		return true
	}
	if entry.Metric > link.Metric {
		if entry.Metric == state.Infinity {
			s.Log.Info("direct route restored", "dest", from, "metric", link.Metric)
		}
		entry.Metric = link.Metric
		entry.NextHop = from
		entry.LastHeard = now
		return true
	}
	if entry.NextHop == from {
		entry.LastHeard = now
	}
	return false
}

// expirySweep poisons every non-self route whose timer ran past the timeout.
func expirySweep(s *state.State) error {
	r := Get[*Router](s)
	now := time.Now()
	changed := false
	for id, entry := range r.Table {
		if id == s.Id() || !entry.TimerRunning() {
			continue
		}
		if age := now.Sub(entry.LastHeard); age > state.RouteTimeout {
			entry.Poison()
			changed = true
			s.Log.Info("route expired", "dest", id, "via", entry.NextHop, "age", age)
		}
	}
	if changed {
		return triggeredUpdate(s)
	}
	return nil
}
