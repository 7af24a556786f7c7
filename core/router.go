package core

import (
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/quinburrell/routingdaemon/state"
)

type Router struct {
	// Table is the authoritative set of known destinations.
	Table state.RouteTable
	// trigGuard rate-limits triggered updates per neighbour. A suppressed
	// trigger is picked up by the next periodic dump.
	trigGuard *ttlcache.Cache[state.RouterId, time.Time]
}

func (r *Router) Init(s *state.State) error {
	s.Log.Debug("init router")
	r.Table = state.NewRouteTable(&s.Cfg)
	r.trigGuard = ttlcache.New[state.RouterId, time.Time](
		ttlcache.WithTTL[state.RouterId, time.Time](state.TriggeredUpdateGuard),
		ttlcache.WithDisableTouchOnHit[state.RouterId, time.Time](),
	)
	go r.trigGuard.Start()
	s.Env.RepeatTask(periodicUpdate, state.PeriodicInterval)
	s.Env.RepeatTask(expirySweep, state.ExpirySweepInterval)
	return nil
}

func (r *Router) Cleanup(s *state.State) error {
	r.trigGuard.Stop()
	return nil
}
