package state

import (
	"fmt"
	"slices"
)

func portValidator(port uint16) error {
	if port < MinPort || port > MaxPort {
		return fmt.Errorf("port %d out of range, must be between %d and %d", port, MinPort, MaxPort)
	}
	return nil
}

// ConfigValidator checks a loaded configuration before any socket is opened.
// Every output link must have exactly one input port whose derived neighbour id
// matches, and input and output port sets must be disjoint.
func ConfigValidator(cfg *Config) error {
	if cfg.RouterId < MinRouterId || cfg.RouterId > MaxRouterId {
		return fmt.Errorf("router id %d out of range, must be between %d and %d", cfg.RouterId, MinRouterId, MaxRouterId)
	}
	if len(cfg.InputPorts) == 0 {
		return fmt.Errorf("no input ports configured")
	}
	if len(cfg.Outputs) == 0 {
		return fmt.Errorf("no output links configured")
	}

	seen := make([]uint16, 0, len(cfg.InputPorts)+len(cfg.Outputs))
	inputNeighbours := make([]RouterId, 0, len(cfg.InputPorts))
	for _, port := range cfg.InputPorts {
		if err := portValidator(port); err != nil {
			return fmt.Errorf("input: %w", err)
		}
		if slices.Contains(seen, port) {
			return fmt.Errorf("port %d used more than once", port)
		}
		seen = append(seen, port)
		if id, ok := cfg.NeighbourForInputPort(port); ok {
			inputNeighbours = append(inputNeighbours, id)
		}
	}

	for _, out := range cfg.Outputs {
		if err := portValidator(out.Port); err != nil {
			return fmt.Errorf("output: %w", err)
		}
		if slices.Contains(cfg.InputPorts, out.Port) {
			return fmt.Errorf("port %d is both an input and an output port", out.Port)
		}
		if slices.Contains(seen, out.Port) {
			return fmt.Errorf("port %d used more than once", out.Port)
		}
		seen = append(seen, out.Port)
		if out.Router < MinRouterId || out.Router > MaxRouterId {
			return fmt.Errorf("output neighbour id %d out of range", out.Router)
		}
		if out.Router == cfg.RouterId {
			return fmt.Errorf("output link points at this router (id %d)", out.Router)
		}
		if out.Metric < 1 || out.Metric >= Infinity {
			return fmt.Errorf("output metric %d out of range, must be between 1 and %d", out.Metric, Infinity-1)
		}
		matches := 0
		for _, id := range inputNeighbours {
			if id == out.Router {
				matches++
			}
		}
		if matches != 1 {
			return fmt.Errorf("output links do not match input ports: neighbour %d derived from %d input ports, want 1", out.Router, matches)
		}
	}

	neighbours := cfg.Neighbours()
	for i := 1; i < len(neighbours); i++ {
		if neighbours[i] == neighbours[i-1] {
			return fmt.Errorf("duplicate output link for neighbour %d", neighbours[i])
		}
	}
	return nil
}
