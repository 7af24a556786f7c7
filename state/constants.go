package state

import "time"

const (
	// Infinity is the RIP metric ceiling. A route at Infinity is unreachable.
	Infinity uint16 = 16

	MinRouterId = 1
	MaxRouterId = 64000

	MinPort = 1025
	MaxPort = 63999
)

var (
	// PeriodicInterval is the delay between full route table dumps.
	PeriodicInterval = time.Second * 5
	// ExpirySweepInterval is how often the table is scanned for stale routes.
	ExpirySweepInterval = time.Second * 1
	// RouteTimeout poisons a route that has not been refreshed, conventionally
	// six times the periodic interval.
	RouteTimeout = 6 * PeriodicInterval
	// TriggeredUpdateGuard suppresses triggered updates to a neighbour that
	// follow a previous one too closely. The next periodic dump catches up.
	TriggeredUpdateGuard = time.Second * 1
)

var (
	DBG_log_router      = false
	DBG_log_route_table = false
)
