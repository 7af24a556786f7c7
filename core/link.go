package core

import (
	"errors"
	"fmt"
	"net"

	"github.com/quinburrell/routingdaemon/protocol"
	"github.com/quinburrell/routingdaemon/state"
)

// LinkMgr binds one UDP socket per configured input port plus a dedicated send
// socket. Each input socket maps to exactly one neighbour via the port
// numbering convention, which is how received datagrams get their sender id.
type LinkMgr struct {
	inputs []*net.UDPConn
	out    *net.UDPConn
}

func (m *LinkMgr) Init(s *state.State) error {
	out, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0})
	if err != nil {
		return fmt.Errorf("open send socket: %w", err)
	}
	m.out = out

	for _, port := range s.Cfg.InputPorts {
		conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: int(port)})
		if err != nil {
			return fmt.Errorf("bind input port %d: %w", port, err)
		}
		m.inputs = append(m.inputs, conn)

		neigh, ok := s.Cfg.NeighbourForInputPort(port)
		if !ok {
			s.Log.Warn("input port has no derivable neighbour, datagrams on it will be dropped", "port", port)
		}
		go m.listen(s.Env, conn, port, neigh, ok)
	}
	s.Log.Info("listening", "ports", s.Cfg.InputPorts)
	// queued here, runs once the main loop starts
	s.Env.Dispatch(requestRoutes)
	return nil
}

func (m *LinkMgr) Cleanup(s *state.State) error {
	for _, conn := range m.inputs {
		_ = conn.Close()
	}
	if m.out != nil {
		_ = m.out.Close()
	}
	return nil
}

// Send fires one datagram at a neighbour's port on loopback, best effort.
func (m *LinkMgr) Send(payload []byte, port uint16) error {
	_, err := m.out.WriteToUDP(payload, &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: int(port)})
	return err
}

// listen reads datagrams off one input socket, decodes them off the main loop
// and dispatches the table mutation onto it.
func (m *LinkMgr) listen(e *state.Env, conn *net.UDPConn, port uint16, from state.RouterId, known bool) {
	buf := make([]byte, 2048)
	for {
		n, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			if e.Context.Err() != nil || errors.Is(err, net.ErrClosed) {
				return
			}
			e.Log.Warn("read failed", "port", port, "err", err)
			continue
		}
		if !known {
			e.Log.Debug("dropping datagram on unmapped input port", "port", port)
			continue
		}
		var pkt protocol.Packet
		if err := pkt.Decode(buf[:n]); err != nil {
			e.Log.Warn("discarding malformed datagram", "port", port, "err", err)
			continue
		}
		e.Dispatch(func(s *state.State) error {
			return handleDatagram(s, from, pkt)
		})
	}
}
