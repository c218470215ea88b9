package mscsc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildTriangleAndSingleton constructs a 4-vertex Tarjan layer: a 3-cycle
// 0->1->2->0, plus isolated vertex 3.
func buildTriangleAndSingleton(t *testing.T) *Tarjan {
	t.Helper()
	tj := NewTarjan(3)
	tj.EdgeInsertion(0, 1)
	tj.EdgeInsertion(1, 2)
	tj.EdgeInsertion(2, 0)
	tj.Construction()
	return tj
}

// buildTriangleGraph is buildTriangleAndSingleton's counterpart at the
// driver level: Internal is only ever set once the Reduced Graph classifies
// every edge, so any assertion touching OriginalEdge.Internal (or the
// Info() counters derived from it) needs a fully constructed Graph, not a
// bare Tarjan.
func buildTriangleGraph(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph(3)
	g.AddInitialEdge(0, 1)
	g.AddInitialEdge(1, 2)
	g.AddInitialEdge(2, 0)
	g.Construction()
	return g
}

func TestConstructionFindsTriangleSCC(t *testing.T) {
	tj := buildTriangleAndSingleton(t)

	require.True(t, tj.InSameSCC(0, 1))
	require.True(t, tj.InSameSCC(1, 2))
	require.True(t, tj.InSameSCC(2, 0))
	require.False(t, tj.InSameSCC(0, 3))

	root := tj.Find(0)
	require.Equal(t, root, tj.Find(1))
	require.Equal(t, root, tj.Find(2))
	require.NotEqual(t, root, tj.Find(3))

	require.ElementsMatch(t, []int{0, 1, 2}, tj.invSCCMap[root])
}

func TestConstructionMarksEveryCycleEdgeNeeded(t *testing.T) {
	g := buildTriangleGraph(t)

	for _, adj := range g.Tarjan.G {
		for _, e := range adj {
			require.True(t, e.Internal, "edge %d->%d should be internal", e.S, e.T)
			require.True(t, e.Needed, "edge %d->%d should be needed", e.S, e.T)
		}
	}
}

func TestConstructionInfoSnapshot(t *testing.T) {
	g := buildTriangleGraph(t)

	info := g.Tarjan.Info()
	require.Equal(t, 3, info.N)
	require.Equal(t, uint64(3), info.M)
	require.Equal(t, 2, info.SCCCount)
	require.Equal(t, 1, info.NonSingletonSCCCount)
	require.Equal(t, uint64(3), info.InternalEdgeCount)
	require.Equal(t, uint64(3), info.NecEdgeCount)
}

func TestReachable(t *testing.T) {
	tj := buildTriangleAndSingleton(t)

	ok, err := tj.Reachable(0, 2)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = tj.Reachable(0, 3)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = tj.Reachable(3, 0)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = tj.Reachable(-1, 0)
	require.ErrorIs(t, err, ErrVertexOutOfRange)
}

func TestEdgeRemoveNotFound(t *testing.T) {
	tj := buildTriangleAndSingleton(t)

	_, err := tj.EdgeRemove(0, 2)
	require.ErrorIs(t, err, ErrEdgeNotFound)
}

func TestSingletonVertexNeverJoinedPool(t *testing.T) {
	tj := NewTarjan(2)
	tj.Construction()

	for i := 0; i <= 2; i++ {
		require.Equal(t, i, tj.Find(i))
	}
	require.Equal(t, 3, tj.Info().SCCCount)
	require.Equal(t, 0, tj.Info().NonSingletonSCCCount)
}
