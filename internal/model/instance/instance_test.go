package instance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	complete := Instance{
		ID:  "g1",
		DP:  Measurement{Success: true, Duration: 10},
		DFS: Measurement{Duration: 3},
		BFS: Measurement{Duration: 7},
	}
	require.NoError(t, complete.Validate())

	tests := []struct {
		name    string
		mutate  func(*Instance)
		missing string
	}{
		{"no dp", func(i *Instance) { i.DP.Duration = 0 }, "dynamic-program/depth-first"},
		{"no dfs", func(i *Instance) { i.DFS.Duration = 0 }, "heuristic/depth-first"},
		{"no bfs", func(i *Instance) { i.BFS = Measurement{} }, "heuristic/breadth-first"},
		{"negative dp", func(i *Instance) { i.DP.Duration = -1 }, "dynamic-program/depth-first"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := complete
			tt.mutate(&inst)
			err := inst.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrIncomplete))
			assert.Contains(t, err.Error(), tt.missing)
			assert.Contains(t, err.Error(), `"g1"`)
		})
	}
}

func TestNewInstanceIsEmpty(t *testing.T) {
	inst := NewInstance("g2", 5, 2)
	assert.Equal(t, 5, inst.Size)
	assert.Equal(t, 2, inst.Spines)
	assert.ErrorIs(t, inst.Validate(), ErrIncomplete)
}
