package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		RouterId:   1,
		InputPorts: []uint16{1200, 1300},
		Outputs: []OutputLink{
			{Port: 2100, Metric: 1, Router: 2},
			{Port: 3100, Metric: 4, Router: 3},
		},
	}
}

func TestConfigValidator_Valid(t *testing.T) {
	assert.NoError(t, ConfigValidator(validConfig()))
}

func TestConfigValidator_RouterIdRange(t *testing.T) {
	cfg := validConfig()
	cfg.RouterId = 0
	assert.Error(t, ConfigValidator(cfg))
}

func TestConfigValidator_InputPortRange(t *testing.T) {
	cfg := validConfig()
	cfg.InputPorts = append(cfg.InputPorts, 1024)
	assert.Error(t, ConfigValidator(cfg))

	cfg = validConfig()
	cfg.InputPorts = append(cfg.InputPorts, 64000)
	assert.Error(t, ConfigValidator(cfg))
}

func TestConfigValidator_OutputPortRange(t *testing.T) {
	cfg := validConfig()
	cfg.Outputs[0].Port = 64000
	assert.Error(t, ConfigValidator(cfg))
}

func TestConfigValidator_DuplicatePorts(t *testing.T) {
	cfg := validConfig()
	cfg.InputPorts = []uint16{1200, 1200, 1300}
	assert.Error(t, ConfigValidator(cfg))

	cfg = validConfig()
	cfg.Outputs[1].Port = cfg.Outputs[0].Port
	assert.Error(t, ConfigValidator(cfg))
}

func TestConfigValidator_InputOutputOverlap(t *testing.T) {
	cfg := validConfig()
	cfg.Outputs[0].Port = cfg.InputPorts[0]
	assert.Error(t, ConfigValidator(cfg))
}

func TestConfigValidator_MismatchedTopology(t *testing.T) {
	// output link to router 5, but no input port derives neighbour 5
	cfg := validConfig()
	cfg.Outputs[0].Router = 5
	assert.Error(t, ConfigValidator(cfg))
}

func TestConfigValidator_MetricRange(t *testing.T) {
	cfg := validConfig()
	cfg.Outputs[0].Metric = 0
	assert.Error(t, ConfigValidator(cfg))

	cfg = validConfig()
	cfg.Outputs[0].Metric = Infinity
	assert.Error(t, ConfigValidator(cfg))
}

func TestConfigValidator_SelfLink(t *testing.T) {
	cfg := validConfig()
	cfg.InputPorts = append(cfg.InputPorts, 1100)
	cfg.Outputs = append(cfg.Outputs, OutputLink{Port: 4100, Metric: 1, Router: 1})
	assert.Error(t, ConfigValidator(cfg))
}

func TestConfigValidator_Empty(t *testing.T) {
	cfg := validConfig()
	cfg.InputPorts = nil
	assert.Error(t, ConfigValidator(cfg))

	cfg = validConfig()
	cfg.Outputs = nil
	assert.Error(t, ConfigValidator(cfg))
}

func TestConfigValidator_DuplicateNeighbour(t *testing.T) {
	cfg := validConfig()
	cfg.Outputs[1] = OutputLink{Port: 3100, Metric: 2, Router: 2}
	assert.Error(t, ConfigValidator(cfg))
}
