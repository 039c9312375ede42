package input

import (
	"errors"
	"strings"
	"testing"

	"github.com/ciricc/countstats/pkg/benchreport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, src string, opts ...ReaderOpt) ([]benchreport.MeasurementRow, error) {
	t.Helper()
	var rows []benchreport.MeasurementRow
	err := NewReader(strings.NewReader(src), opts...).Each(func(row benchreport.MeasurementRow) error {
		rows = append(rows, row)
		return nil
	})
	return rows, err
}

func TestEach(t *testing.T) {
	src := "Instance,Algorithm,Order,Size,Spines,Success,Duration\n" +
		"g1,dynamic-program,depth-first,5,2,1,10\n" +
		"g1,cleve,depth-first,5,2,1,3\n" +
		"g1,cleve,breadth-first,5,2,0,7\n"

	rows, err := collect(t, src)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, benchreport.MeasurementRow{
		InstanceID: "g1",
		Algorithm:  benchreport.AlgorithmDynamicProgram,
		Order:      benchreport.OrderDepthFirst,
		Size:       5,
		Spines:     2,
		Success:    true,
		Duration:   10,
	}, rows[0])
	assert.Equal(t, benchreport.AlgorithmHeuristic, rows[1].Algorithm)
	assert.Equal(t, benchreport.OrderBreadthFirst, rows[2].Order)
	assert.False(t, rows[2].Success)
	assert.EqualValues(t, 7, rows[2].Duration)
}

func TestEachWithoutHeader(t *testing.T) {
	rows, err := collect(t, "g1,dynamic-program,depth-first,5,2,0,10\n")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].Success)
}

func TestEachEmpty(t *testing.T) {
	rows, err := collect(t, "")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestEachOptions(t *testing.T) {
	rows, err := collect(t, "g1;greedy;breadth-first;5;2;1;3\n",
		WithHeuristicName("greedy"),
		WithComma(';'),
	)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, benchreport.AlgorithmHeuristic, rows[0].Algorithm)

	_, err = collect(t, "g1,cleve,depth-first,5,2,1,3\n", WithHeuristicName("greedy"))
	assert.ErrorIs(t, err, benchreport.ErrUnknownAlgorithm)
}

func TestEachErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
		line string
	}{
		{"unknown algorithm", "g1,simplex,depth-first,5,2,1,3\n", benchreport.ErrUnknownAlgorithm, "line 1"},
		{"unknown order", "g1,cleve,random,5,2,1,3\n", benchreport.ErrUnknownOrder, "line 1"},
		{"too few fields", "g1,cleve,depth-first,5,2,1\n", ErrMalformedRow, "line 1"},
		{"too many fields", "g1,cleve,depth-first,5,2,1,3,9\n", ErrMalformedRow, "line 1"},
		{"bad size", "g1,cleve,depth-first,five,2,1,3\n", ErrMalformedRow, "line 1"},
		{"negative spines", "g1,cleve,depth-first,5,-2,1,3\n", ErrMalformedRow, "line 1"},
		{"bad success", "g1,cleve,depth-first,5,2,yes,3\n", ErrMalformedRow, "line 1"},
		{"bad duration", "g1,cleve,depth-first,5,2,1,3.5\n", ErrMalformedRow, "line 1"},
		{"error on later line", "g1,cleve,depth-first,5,2,1,3\ng1,cleve,sideways,5,2,1,3\n", benchreport.ErrUnknownOrder, "line 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := collect(t, tt.src)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.line)
		})
	}
}

func TestEachStopsOnCallbackError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := NewReader(strings.NewReader("a,cleve,depth-first,1,1,1,1\nb,cleve,depth-first,1,1,1,1\n")).
		Each(func(benchreport.MeasurementRow) error {
			calls++
			return stop
		})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}
