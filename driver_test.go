package mscsc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// newPathGraph builds 0->1->2 over three otherwise-disconnected vertices
// and constructs it, so every vertex starts as its own singleton SCC.
func newPathGraph(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph(2)
	g.AddInitialEdge(0, 1)
	g.AddInitialEdge(1, 2)
	g.Construction()
	return g
}

func TestInsertClosesCycleAndMerges(t *testing.T) {
	g := newPathGraph(t)

	require.False(t, g.Tarjan.InSameSCC(0, 2))

	err := g.Insert(2, 0)
	require.NoError(t, err)

	require.Equal(t, 1, g.Stats().MergeCount)

	root := g.Tarjan.Find(0)
	require.Equal(t, root, g.Tarjan.Find(1))
	require.Equal(t, root, g.Tarjan.Find(2))

	info := g.Info()
	require.Equal(t, 1, info.SCCCount)
	require.Equal(t, 1, info.NonSingletonSCCCount)
	require.Equal(t, uint64(3), info.InternalEdgeCount)
	require.Equal(t, uint64(3), info.NecEdgeCount)

	// the condensation has folded away entirely: no super-edges remain.
	require.Empty(t, g.Reduced.GOut[0])
	require.Empty(t, g.Reduced.GOut[1])
	require.Empty(t, g.Reduced.GOut[2])
}

func TestInsertMinimumClosesCycleAndMerges(t *testing.T) {
	g := newPathGraph(t)

	err := g.InsertMinimum(2, 0)
	require.NoError(t, err)

	require.Equal(t, 1, g.Stats().MergeCount)
	root := g.Tarjan.Find(0)
	require.Equal(t, root, g.Tarjan.Find(1))
	require.Equal(t, root, g.Tarjan.Find(2))
}

func TestInsertAcrossDisjointComponentsDoesNotMerge(t *testing.T) {
	g := newPathGraph(t)

	err := g.Insert(0, 2) // 0->2 is already reachable via 0->1->2, not a cycle
	require.NoError(t, err)

	require.Equal(t, 0, g.Stats().MergeCount)
	require.False(t, g.Tarjan.InSameSCC(0, 2))
}

func TestDeleteSplitsTriangleBackToSingletons(t *testing.T) {
	g := NewGraph(3)
	g.AddInitialEdge(0, 1)
	g.AddInitialEdge(1, 2)
	g.AddInitialEdge(2, 0)
	g.Construction()

	require.True(t, g.Tarjan.InSameSCC(0, 2))

	err := g.Delete(2, 0)
	require.NoError(t, err)

	require.Equal(t, 1, g.Stats().TrySplitCount)
	require.Equal(t, 1, g.Stats().RealSplitCount)

	require.Equal(t, 0, g.Tarjan.Find(0))
	require.Equal(t, 1, g.Tarjan.Find(1))
	require.Equal(t, 2, g.Tarjan.Find(2))
	require.Equal(t, 3, g.Tarjan.Find(3))

	info := g.Info()
	require.Equal(t, 4, info.SCCCount)
	require.Equal(t, 0, info.NonSingletonSCCCount)
	require.Equal(t, uint64(0), info.InternalEdgeCount)
	require.Equal(t, uint64(0), info.NecEdgeCount)

	// the two surviving edges re-enter the condensation as super-edges.
	se, ok := g.Reduced.GOut[0][1]
	require.True(t, ok)
	require.Len(t, se.SubEdge, 1)

	se, ok = g.Reduced.GOut[1][2]
	require.True(t, ok)
	require.Len(t, se.SubEdge, 1)
}

func TestDeleteNonNecessaryEdgeDoesNotProbe(t *testing.T) {
	// A 4-cycle plus a chord: 0->1->2->3->0 and 0->2. The path 0->1->2 and
	// the chord give 0 two ways to reach 2, so removing the non-last-drop one
	// (whichever loses the "needed" marking) must not even attempt a
	// split probe.
	g := NewGraph(3)
	g.AddInitialEdge(0, 1)
	g.AddInitialEdge(1, 2)
	g.AddInitialEdge(2, 3)
	g.AddInitialEdge(3, 0)
	g.AddInitialEdge(0, 2)
	g.Construction()

	require.True(t, g.Tarjan.InSameSCC(0, 2))

	var nonNeeded *OriginalEdge
	for _, e := range g.Tarjan.G[0] {
		if e.T == 2 && !e.Needed {
			nonNeeded = e
		}
	}
	require.NotNil(t, nonNeeded, "expected the 0->2 chord to be redundant")

	err := g.Delete(0, 2)
	require.NoError(t, err)

	require.Equal(t, 0, g.Stats().TrySplitCount)
	require.True(t, g.Tarjan.InSameSCC(0, 2))
}

func TestBatchInsertMergesAllAtOnce(t *testing.T) {
	g := NewGraph(3)
	g.Construction() // four isolated vertices, no initial edges

	err := g.BatchInsert([][2]int{{0, 1}, {1, 2}, {2, 0}})
	require.NoError(t, err)

	require.Equal(t, 1, g.Stats().MergeCount)

	root := g.Tarjan.Find(0)
	require.Equal(t, root, g.Tarjan.Find(1))
	require.Equal(t, root, g.Tarjan.Find(2))
	require.NotEqual(t, root, g.Tarjan.Find(3))

	info := g.Info()
	require.Equal(t, 2, info.SCCCount)
	require.Equal(t, 1, info.NonSingletonSCCCount)
	require.Equal(t, uint64(3), info.InternalEdgeCount)
	require.Equal(t, uint64(3), info.NecEdgeCount)
}

func TestBatchDeleteGroupsBySCC(t *testing.T) {
	g := NewGraph(3)
	g.AddInitialEdge(0, 1)
	g.AddInitialEdge(1, 2)
	g.AddInitialEdge(2, 0)
	g.Construction()

	err := g.BatchDelete([][2]int{{2, 0}})
	require.NoError(t, err)

	require.Equal(t, 1, g.Stats().TrySplitCount)
	require.Equal(t, 1, g.Stats().RealSplitCount)
	require.False(t, g.Tarjan.InSameSCC(0, 1))
}

func TestOperationsBeforeConstructionFail(t *testing.T) {
	g := NewGraph(2)
	g.AddInitialEdge(0, 1)

	err := g.Insert(1, 0)
	require.ErrorIs(t, err, ErrNotConstructed)
}
