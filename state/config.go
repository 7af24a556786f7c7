package state

import (
	"fmt"
	"os"
	"slices"

	"github.com/goccy/go-yaml"
)

// OutputLink describes one directly connected neighbour: the remote port the
// neighbour listens on, the advertised cost of the link, and the neighbour id.
type OutputLink struct {
	Port   uint16   `yaml:"port"`
	Metric uint16   `yaml:"metric"`
	Router RouterId `yaml:"router"`
}

// Config is the static identity and topology of one router process.
type Config struct {
	RouterId   RouterId     `yaml:"router-id"`
	InputPorts []uint16     `yaml:"input-ports"`
	Outputs    []OutputLink `yaml:"outputs"`
	LogPath    string       `yaml:"log_path,omitempty"`
}

func LoadConfig(path string) (*Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Neighbours returns the ids of all directly connected routers, sorted.
func (c *Config) Neighbours() []RouterId {
	ids := make([]RouterId, 0, len(c.Outputs))
	for _, out := range c.Outputs {
		ids = append(ids, out.Router)
	}
	slices.Sort(ids)
	return ids
}

func (c *Config) LinkTo(neigh RouterId) (OutputLink, bool) {
	for _, out := range c.Outputs {
		if out.Router == neigh {
			return out, true
		}
	}
	return OutputLink{}, false
}

// NeighbourForInputPort derives the id of the router that sends on the given
// input port, using the port numbering convention
// port = local_id*1000 + neighbour_id*100.
func (c *Config) NeighbourForInputPort(port uint16) (RouterId, bool) {
	d := int(port) - int(c.RouterId)*1000
	if d <= 0 {
		return 0, false
	}
	id := d / 100
	if id < MinRouterId || id > MaxRouterId {
		return 0, false
	}
	return RouterId(id), true
}
