package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadGraphParsesHeaderAndEdges(t *testing.T) {
	input := "3 3\n0 1\n1 2\n2 0\n"

	g, edges, err := LoadGraph(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, edges, 3)
	require.Equal(t, Edge{S: 0, T: 1}, edges[0])
	require.Equal(t, Edge{S: 2, T: 0}, edges[2])

	require.True(t, g.Tarjan.InSameSCC(0, 2))
}

func TestLoadGraphToleratesWhitespaceLayout(t *testing.T) {
	input := "2   2\n\n0 1\n1   0\n"

	g, edges, err := LoadGraph(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, edges, 2)
	require.True(t, g.Tarjan.InSameSCC(0, 1))
}

func TestLoadGraphRejectsTruncatedInput(t *testing.T) {
	input := "2 2\n0 1\n"

	_, _, err := LoadGraph(strings.NewReader(input))
	require.Error(t, err)
}

func TestLoadGraphRejectsNonIntegerField(t *testing.T) {
	input := "1 1\nx y\n"

	_, _, err := LoadGraph(strings.NewReader(input))
	require.Error(t, err)
}

func TestLoadUpdatesParsesCountAndPairs(t *testing.T) {
	input := "2\n0 1\n1 2\n"

	edges, err := LoadUpdates(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []Edge{{S: 0, T: 1}, {S: 1, T: 2}}, edges)
}

func TestLoadUpdatesEmpty(t *testing.T) {
	edges, err := LoadUpdates(strings.NewReader("0\n"))
	require.NoError(t, err)
	require.Empty(t, edges)
}
