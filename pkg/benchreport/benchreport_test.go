package benchreport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	a, err := ParseAlgorithm("dynamic-program", DefaultHeuristicName)
	require.NoError(t, err)
	assert.Equal(t, AlgorithmDynamicProgram, a)

	a, err = ParseAlgorithm("cleve", DefaultHeuristicName)
	require.NoError(t, err)
	assert.Equal(t, AlgorithmHeuristic, a)

	for _, s := range []string{"", "Algorithm", "knp", "Dynamic-Program"} {
		_, err := ParseAlgorithm(s, DefaultHeuristicName)
		assert.ErrorIs(t, err, ErrUnknownAlgorithm, s)
	}
}

func TestParseOrder(t *testing.T) {
	o, err := ParseOrder("depth-first")
	require.NoError(t, err)
	assert.Equal(t, OrderDepthFirst, o)

	o, err = ParseOrder("breadth-first")
	require.NoError(t, err)
	assert.Equal(t, OrderBreadthFirst, o)

	_, err = ParseOrder("dfs")
	assert.ErrorIs(t, err, ErrUnknownOrder)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "dynamic-program", AlgorithmDynamicProgram.String())
	assert.Equal(t, "heuristic", AlgorithmHeuristic.String())
	assert.Equal(t, "Algorithm(7)", Algorithm(7).String())
	assert.Equal(t, "depth-first", OrderDepthFirst.String())
	assert.Equal(t, "breadth-first", OrderBreadthFirst.String())
	assert.Equal(t, "Order(3)", Order(3).String())
}

func TestSizeSpineAggregateTotal(t *testing.T) {
	assert.Equal(t, 5, SizeSpineAggregate{YesCount: 2, NoCount: 3}.Total())
}
