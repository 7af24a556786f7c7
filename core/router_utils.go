package core

import (
	"fmt"

	"github.com/quinburrell/routingdaemon/state"
)

func dbgPrintRouteTable(s *state.State) {
	if !state.DBG_log_route_table {
		return
	}
	r := Get[*Router](s)
	s.Log.Debug("--- route table ---")
	for _, e := range r.Table.Snapshot() {
		timer := "stopped"
		if e.TimerRunning() {
			timer = "running"
		}
		s.Log.Debug(fmt.Sprintf("%d -> %d", e.Dest, e.NextHop), "met", e.Metric, "timer", timer)
	}
}

func dbgLogRouteChange(s *state.State, what string, dest state.RouterId, metric uint16, via state.RouterId) {
	if state.DBG_log_router {
		s.Log.Debug(fmt.Sprintf("[rc] %d %s [%d]%d", dest, what, metric, via))
	}
}
