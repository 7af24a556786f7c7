package core

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/quinburrell/routingdaemon/protocol"
	"github.com/quinburrell/routingdaemon/state"
)

// buildAdvert builds the advertised records for one neighbour. Routes whose
// next hop is the receiver are advertised at Infinity (poisoned reverse); the
// stored entries are never modified.
func buildAdvert(table state.RouteTable, receiver state.RouterId) []protocol.Record {
	records := make([]protocol.Record, 0, len(table))
	for _, entry := range table.Snapshot() {
		metric := entry.Metric
		if entry.NextHop == receiver {
			metric = state.Infinity
		}
		records = append(records, protocol.Record{Dest: uint16(entry.Dest), Metric: metric})
	}
	return records
}

// pushRouteTable sends a full table dump to one neighbour, or to all of them
// when to is nil. Tables larger than one datagram span several.
func pushRouteTable(s *state.State, to *state.RouterId) error {
	r := Get[*Router](s)
	m := Get[*LinkMgr](s)
	dbgPrintRouteTable(s)

	outs := s.Cfg.Outputs
	if to != nil {
		link, ok := s.Cfg.LinkTo(*to)
		if !ok {
			s.Log.Debug("no output link for neighbour", "neighbour", *to)
			return nil
		}
		outs = []state.OutputLink{link}
	}

	for _, out := range outs {
		records := buildAdvert(r.Table, out.Router)
		for len(records) > 0 {
			n := min(len(records), protocol.MaxRecords)
			payload := protocol.Encode(protocol.Packet{Command: protocol.CommandResponse, Records: records[:n]})
			records = records[n:]
			if err := m.Send(payload, out.Port); err != nil {
				// fire and forget, the next periodic cycle retries naturally
				s.Log.Warn("send failed", "neighbour", out.Router, "port", out.Port, "err", err)
			}
		}
	}
	return nil
}

// periodicUpdate refreshes the self-entry and dumps the full table to every
// neighbour, unconditionally.
func periodicUpdate(s *state.State) error {
	r := Get[*Router](s)
	r.Table[s.Id()].LastHeard = time.Now()
	return pushRouteTable(s, nil)
}

// triggeredUpdate sends an immediate dump, skipping neighbours that already
// received one within the guard interval.
func triggeredUpdate(s *state.State) error {
	r := Get[*Router](s)
	for _, out := range s.Cfg.Outputs {
		if r.trigGuard.Has(out.Router) {
			continue
		}
		r.trigGuard.Set(out.Router, time.Now(), ttlcache.DefaultTTL)
		neigh := out.Router
		if err := pushRouteTable(s, &neigh); err != nil {
			return err
		}
	}
	return nil
}

// requestRoutes asks every neighbour for its full table. Sent once at startup
// so the first exchange does not wait out a periodic interval.
func requestRoutes(s *state.State) error {
	m := Get[*LinkMgr](s)
	for _, out := range s.Cfg.Outputs {
		if err := m.Send(protocol.NewRequest(), out.Port); err != nil {
			s.Log.Warn("request failed", "neighbour", out.Router, "port", out.Port, "err", err)
		}
	}
	return nil
}

// handleDatagram processes one decoded datagram on the main loop.
func handleDatagram(s *state.State, from state.RouterId, pkt protocol.Packet) error {
	switch pkt.Command {
	case protocol.CommandRequest:
		return pushRouteTable(s, &from)
	case protocol.CommandResponse:
		if applyUpdate(s, from, pkt.Records) {
			return triggeredUpdate(s)
		}
	}
	return nil
}
