package mscsc

import (
	"fmt"
	"sort"
)

// Graph is the public driver: it sequences the Tarjan layer and the
// Reduced Graph layer for every operation so a caller never has to know
// which layer owns what. Construct with NewGraph, call Construction once
// to build the initial SCC decomposition, then Insert/Delete freely.
type Graph struct {
	Tarjan  *Tarjan
	Reduced *ReducedGraph

	stats       Stats
	constructed bool
}

// NewGraph allocates a driver for n+1 vertices (ids 0..n). Call
// AddInitialEdge for every starting edge, then Construction once.
func NewGraph(n int) *Graph {
	return &Graph{Tarjan: NewTarjan(n)}
}

// AddInitialEdge registers an edge of the starting graph, before
// Construction has run. Calling it after Construction silently corrupts
// the SCC partition: the edge would never have been visited by the
// initial DFS, so callers should use Insert afterward instead.
func (g *Graph) AddInitialEdge(u, v int) {
	g.Tarjan.EdgeInsertion(u, v)
}

// Construction runs the initial Tarjan pass and builds the condensation
// from its result. Must be called exactly once, after every initial edge
// has been added and before any Insert/Delete call.
func (g *Graph) Construction() {
	g.Tarjan.Construction()
	g.Reduced = NewReducedGraph(g.Tarjan)
	g.constructed = true
}

func (g *Graph) requireConstructed(op string) error {
	if !g.constructed {
		return fmt.Errorf("mscsc: %s: %w", op, ErrNotConstructed)
	}
	return nil
}

// Insert adds edge (u,v), merging SCCs along any new cycle it closes.
// The merge set's necessary edges are chosen by MayMerge's DFS-order
// reachability probe.
func (g *Graph) Insert(u, v int) error {
	if err := g.requireConstructed("Insert"); err != nil {
		return err
	}
	edge := g.Tarjan.EdgeInsertion(u, v)

	su, sv := g.Tarjan.Find(u), g.Tarjan.Find(v)
	_, hasSuperEdge := g.Reduced.GOut[su][sv]
	if su == sv || hasSuperEdge {
		g.Reduced.SingleInsertion(edge)
		return nil
	}

	output := g.Reduced.MayMerge(su, sv)
	if len(output.AffNode) == 0 {
		g.Reduced.SingleInsertion(edge)
		return nil
	}

	g.stats.MergeCount++
	g.Tarjan.InsertionSCCWithEdge(edge, output)
	g.Reduced.InsertionSCC(output)
	return nil
}

// InsertMinimum is Insert's alternative merge-detection path: it uses the
// condensation-level Tarjan pass plus a BFS topological sweep
// (ReducedGraph.InsertionMinimum) instead of MayMerge's DFS, which can
// select a different (still valid) necessary-edge set.
func (g *Graph) InsertMinimum(u, v int) error {
	if err := g.requireConstructed("InsertMinimum"); err != nil {
		return err
	}
	edge := g.Tarjan.EdgeInsertion(u, v)

	su, sv := g.Tarjan.Find(u), g.Tarjan.Find(v)
	if su == sv {
		g.Reduced.SingleInsertion(edge)
		return nil
	}
	if _, ok := g.Reduced.GOut[su][sv]; ok {
		g.Reduced.SingleInsertion(edge)
		return nil
	}

	output := g.Reduced.InsertionMinimum(edge)
	if len(output.AffNode) == 0 {
		return nil
	}

	g.stats.MergeCount++
	g.Tarjan.InsertionSCC(output)
	g.Reduced.InsertionSCC(output)
	return nil
}

// Delete removes edge (u,v). If it was a necessary internal edge, the
// Tarjan layer probes for a split before involving the Reduced Graph
// layer at all; non-necessary and cross-SCC edges are handled as a cheap
// condensation-only detach.
func (g *Graph) Delete(u, v int) error {
	if err := g.requireConstructed("Delete"); err != nil {
		return err
	}
	edge, err := g.Tarjan.EdgeRemove(u, v)
	if err != nil {
		return fmt.Errorf("mscsc: Delete: %w", err)
	}

	if g.Tarjan.InSameSCC(u, v) && edge.Needed {
		g.stats.TrySplitCount++
		output := g.Tarjan.DeletionSCC(u, v)
		if len(output.NewNode) > 1 {
			g.stats.RealSplitCount++
			output.DeletedEdge = edge
			g.Reduced.DeletionSCC(output)
			return nil
		}
	}
	g.Reduced.SingleDeletion(edge)
	return nil
}

// DeleteWithoutPruning removes edge (u,v) like Delete, but always probes
// for a split on any same-SCC deletion, even when the removed edge was
// not marked needed (i.e. it ignores the needed-flag pruning optimization
// Delete uses to skip probes that cannot possibly cause a split).
func (g *Graph) DeleteWithoutPruning(u, v int) error {
	if err := g.requireConstructed("DeleteWithoutPruning"); err != nil {
		return err
	}
	edge, err := g.Tarjan.EdgeRemove(u, v)
	if err != nil {
		return fmt.Errorf("mscsc: DeleteWithoutPruning: %w", err)
	}

	if g.Tarjan.InSameSCC(u, v) {
		g.stats.TrySplitCountNoPrune++
		output := g.Tarjan.DeletionSCC(u, v)
		if len(output.NewNode) > 1 {
			g.stats.RealSplitCountNoPrune++
			output.DeletedEdge = edge
			g.Reduced.DeletionSCC(output)
			return nil
		}
	}
	g.Reduced.SingleDeletion(edge)
	return nil
}

// BatchInsert adds every (u,v) pair in pairs, then resolves all resulting
// merges with a single condensation-level Tarjan pass instead of one per
// edge.
func (g *Graph) BatchInsert(pairs [][2]int) error {
	if err := g.requireConstructed("BatchInsert"); err != nil {
		return err
	}
	edges := make([]*OriginalEdge, 0, len(pairs))
	for _, p := range pairs {
		edges = append(edges, g.Tarjan.EdgeInsertion(p[0], p[1]))
	}

	output := g.Reduced.BatchInsertion(edges)
	g.Tarjan.BatchInsertionSCC(output)
	g.Reduced.InsertionSCCBatch(output)
	g.stats.MergeCount += len(output)
	return nil
}

// BatchDelete removes every (u,v) pair in pairs. Pairs whose endpoints
// share an SCC are grouped by SCC id so each SCC gets at most one split
// probe for the whole group (none when no removed edge was necessary, a
// single probe when exactly one was, a full BatchDeletionSCC rebuild when
// two or more were); cross-SCC pairs are detached immediately.
func (g *Graph) BatchDelete(pairs [][2]int) error {
	if err := g.requireConstructed("BatchDelete"); err != nil {
		return err
	}

	groups := map[int][][2]int{}
	for _, p := range pairs {
		u, v := p[0], p[1]
		if g.Tarjan.InSameSCC(u, v) {
			id := g.Tarjan.Find(u)
			groups[id] = append(groups[id], p)
			continue
		}
		edge, err := g.Tarjan.EdgeRemove(u, v)
		if err != nil {
			return fmt.Errorf("mscsc: BatchDelete: %w", err)
		}
		g.Reduced.SingleDeletion(edge)
	}

	sccIDs := make([]int, 0, len(groups))
	for id := range groups {
		sccIDs = append(sccIDs, id)
	}
	sort.Ints(sccIDs)

	for _, sccID := range sccIDs {
		var needed [][2]int
		for _, p := range groups[sccID] {
			edge, err := g.Tarjan.EdgeRemove(p[0], p[1])
			if err != nil {
				return fmt.Errorf("mscsc: BatchDelete: %w", err)
			}
			if edge.Needed {
				needed = append(needed, p)
			}
		}

		switch len(needed) {
		case 0:
			// none of the removed edges were load-bearing; the SCC
			// cannot have split.
		case 1:
			g.stats.TrySplitCount++
			output := g.Tarjan.DeletionSCC(needed[0][0], needed[0][1])
			if len(output.NewNode) > 1 {
				g.stats.RealSplitCount++
				g.Reduced.DeletionSCC(output)
			}
		default:
			g.stats.TrySplitCount++
			output := g.Tarjan.BatchDeletionSCC(sccID)
			if len(output.NewNode) > 1 {
				g.stats.RealSplitCount++
				g.Reduced.DeletionSCC(output)
			}
		}
	}
	return nil
}

// Info returns a snapshot of the current SCC partition.
func (g *Graph) Info() InfoSnapshot {
	return g.Tarjan.Info()
}

// Stats returns the monotonic operation-class counters accumulated since
// construction.
func (g *Graph) Stats() Stats {
	return g.stats
}
