package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouteTable(t *testing.T) {
	table := NewRouteTable(validConfig())
	require.Len(t, table, 3)

	self := table[1]
	require.NotNil(t, self)
	assert.Equal(t, uint16(0), self.Metric)
	assert.Equal(t, RouterId(1), self.NextHop)
	assert.True(t, self.TimerRunning())

	for _, n := range []RouterId{2, 3} {
		entry := table[n]
		require.NotNil(t, entry, "neighbour %d", n)
		assert.Equal(t, n, entry.NextHop)
		assert.True(t, entry.TimerRunning())
	}
	assert.Equal(t, uint16(1), table[2].Metric)
	assert.Equal(t, uint16(4), table[3].Metric)
}

func TestPoison(t *testing.T) {
	entry := &RouteEntry{Dest: 5, Metric: 3, NextHop: 2, LastHeard: time.Now()}
	entry.Poison()

	assert.Equal(t, Infinity, entry.Metric)
	assert.False(t, entry.TimerRunning())
}

func TestSnapshot(t *testing.T) {
	table := NewRouteTable(validConfig())
	snap := table.Snapshot()

	require.Len(t, snap, 3)
	assert.Equal(t, RouterId(1), snap[0].Dest)
	assert.Equal(t, RouterId(2), snap[1].Dest)
	assert.Equal(t, RouterId(3), snap[2].Dest)

	// snapshot entries are copies, mutating them must not touch the table
	snap[1].Metric = 9
	assert.Equal(t, uint16(1), table[2].Metric)
}
