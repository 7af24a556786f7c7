package core

import (
	"context"
	"io"
	"log/slog"
	"net"
	"reflect"
	"testing"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/quinburrell/routingdaemon/protocol"
	"github.com/quinburrell/routingdaemon/state"
	"github.com/stretchr/testify/require"
)

func testConfig() state.Config {
	return state.Config{
		RouterId:   1,
		InputPorts: []uint16{1200, 1300},
		Outputs: []state.OutputLink{
			{Port: 45210, Metric: 1, Router: 2},
			{Port: 45310, Metric: 4, Router: 3},
		},
	}
}

// newHarness wires a Router and a LinkMgr (send socket only) without starting
// the timer tasks, so tests drive the update engine directly.
func newHarness(t *testing.T, cfg state.Config) *state.State {
	t.Helper()
	ctx, cancel := context.WithCancelCause(context.Background())

	s := &state.State{
		Modules: make(map[string]state.Module),
		Env: &state.Env{
			Context:         ctx,
			Cancel:          cancel,
			DispatchChannel: make(chan func(*state.State) error, 128),
			Cfg:             cfg,
			Log:             slog.New(slog.NewTextHandler(io.Discard, nil)),
		},
	}

	r := &Router{
		Table: state.NewRouteTable(&cfg),
		trigGuard: ttlcache.New[state.RouterId, time.Time](
			ttlcache.WithTTL[state.RouterId, time.Time](state.TriggeredUpdateGuard),
			ttlcache.WithDisableTouchOnHit[state.RouterId, time.Time](),
		),
	}
	go r.trigGuard.Start()

	out, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0})
	require.NoError(t, err)
	m := &LinkMgr{out: out}

	s.Modules[reflect.TypeOf(r).String()] = r
	s.Modules[reflect.TypeOf(m).String()] = m

	t.Cleanup(func() {
		cancel(context.Canceled)
		require.NoError(t, m.Cleanup(s))
		require.NoError(t, r.Cleanup(s))
	})
	return s
}

func records(recs ...protocol.Record) []protocol.Record {
	return recs
}

// bindReceiver stands in for a neighbour's input socket.
func bindReceiver(t *testing.T, port uint16) *net.UDPConn {
	t.Helper()
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: int(port)})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readPacket(t *testing.T, conn *net.UDPConn, timeout time.Duration) (protocol.Packet, bool) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(timeout)))
	buf := make([]byte, 2048)
	n, _, err := conn.ReadFromUDP(buf)
	if err != nil {
		return protocol.Packet{}, false
	}
	var pkt protocol.Packet
	require.NoError(t, pkt.Decode(buf[:n]))
	return pkt, true
}
