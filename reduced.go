package mscsc

import "sort"

// ReducedGraph is the condensation of the current SCC partition: one
// node per SCC id, one SuperEdge per distinct (sourceSCC, targetSCC)
// pair, each carrying the set of OriginalEdges it represents. It keeps
// its own path-compressing union-find (sccMap/dfn/low/inStack below),
// entirely separate from the Tarjan layer's sign-encoded sccMap — the
// two solve different problems (stable SCC ids with recyclable ids vs. a
// disposable condensation-level Tarjan pass run fresh on every merge
// probe) and must not be confused for one another.
type ReducedGraph struct {
	tarjan    *Tarjan
	originalN int
	extendN   int
	n         int

	GOut []map[int]*SuperEdge
	GIn  []map[int]*SuperEdge

	// Transient, path-compressing union-find used only during a
	// condensation-level Tarjan pass (onlyTarjan/build). Reset to -1
	// (singleton) for every id a pass touches once consumed.
	sccMap []int

	dfn     []int
	low     []int
	inStack []bool

	// state is MayMerge's own 3-color scratch (0 unvisited, 1 on the
	// current probe's stack, 2 known to reach the probe's source).
	state []int
}

// NewReducedGraph builds the condensation from a Tarjan layer that has
// already run Construction: every original edge is classified internal
// (same SCC, folded into the SCC's necessary-edge accounting if already
// marked Needed) or external (becomes, or joins, a SuperEdge).
func NewReducedGraph(t *Tarjan) *ReducedGraph {
	n := t.n + 1 + t.extendN
	rg := &ReducedGraph{
		tarjan:    t,
		originalN: t.n,
		extendN:   t.extendN,
		n:         n,
		GOut:      make([]map[int]*SuperEdge, n),
		GIn:       make([]map[int]*SuperEdge, n),
		sccMap:    make([]int, n),
		dfn:       make([]int, n),
		low:       make([]int, n),
		inStack:   make([]bool, n),
		state:     make([]int, n),
	}
	for i := range rg.sccMap {
		rg.sccMap[i] = -1
	}

	for i := 0; i <= t.n; i++ {
		s := t.Find(i)
		for _, edge := range t.G[i] {
			tgt := t.Find(edge.T)
			if s != tgt {
				rg.addOrAttach(s, tgt, edge)
				continue
			}
			edge.Internal = true
			if edge.Needed {
				t.necEdgeNumMap[s]++
			}
		}
	}
	return rg
}

func (rg *ReducedGraph) addOrAttach(s, tgt int, edge *OriginalEdge) {
	if se, ok := rg.GOut[s][tgt]; ok {
		se.SubEdge[edge] = struct{}{}
		return
	}
	rg.addEdge(edge, s, tgt)
}

// addEdge unconditionally creates a new SuperEdge for (s,t); callers must
// have already confirmed no SuperEdge(s,t) exists.
func (rg *ReducedGraph) addEdge(edge *OriginalEdge, s, tgt int) *SuperEdge {
	se := &SuperEdge{S: s, T: tgt, SubEdge: map[*OriginalEdge]struct{}{edge: {}}}
	if rg.GOut[s] == nil {
		rg.GOut[s] = map[int]*SuperEdge{}
	}
	if rg.GIn[tgt] == nil {
		rg.GIn[tgt] = map[int]*SuperEdge{}
	}
	rg.GOut[s][tgt] = se
	rg.GIn[tgt][s] = se
	return se
}

func (rg *ReducedGraph) deleteEdge(se *SuperEdge) {
	delete(rg.GOut[se.S], se.T)
	delete(rg.GIn[se.T], se.S)
}

// SingleInsertion attaches newEdge to the condensation: internal if its
// endpoints already share an SCC, else joining or creating a SuperEdge.
// It never marks Needed — that is the merge pipeline's job.
func (rg *ReducedGraph) SingleInsertion(newEdge *OriginalEdge) {
	s := rg.tarjan.Find(newEdge.S)
	tgt := rg.tarjan.Find(newEdge.T)
	if s == tgt {
		newEdge.Internal = true
		return
	}
	if se, ok := rg.GOut[s][tgt]; ok {
		se.SubEdge[newEdge] = struct{}{}
		return
	}
	rg.addEdge(newEdge, s, tgt)
}

// SingleDeletion detaches e from the condensation: a no-op for internal
// edges, otherwise dropping e from its SuperEdge and removing the
// SuperEdge entirely once its last member is gone.
func (rg *ReducedGraph) SingleDeletion(e *OriginalEdge) {
	s := rg.tarjan.Find(e.S)
	tgt := rg.tarjan.Find(e.T)
	if s == tgt {
		return
	}
	se, ok := rg.GOut[s][tgt]
	if !ok {
		return
	}
	delete(se.SubEdge, e)
	if len(se.SubEdge) == 0 {
		rg.deleteEdge(se)
	}
}

// reinsert re-attaches an OriginalEdge whose endpoints' SCC membership
// just changed (used after a merge or split re-wires the condensation).
func (rg *ReducedGraph) reinsert(e *OriginalEdge) {
	s := rg.tarjan.Find(e.S)
	tgt := rg.tarjan.Find(e.T)
	if s == tgt {
		e.Internal = true
		return
	}
	if se, ok := rg.GOut[s][tgt]; ok {
		se.SubEdge[e] = struct{}{}
		return
	}
	rg.addEdge(e, s, tgt)
}

func (rg *ReducedGraph) outEdgesSorted(u int) []*SuperEdge {
	m := rg.GOut[u]
	if len(m) == 0 {
		return nil
	}
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	edges := make([]*SuperEdge, len(keys))
	for i, k := range keys {
		edges[i] = m[k]
	}
	return edges
}

func (rg *ReducedGraph) inEdgesSorted(u int) []*SuperEdge {
	m := rg.GIn[u]
	if len(m) == 0 {
		return nil
	}
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	edges := make([]*SuperEdge, len(keys))
	for i, k := range keys {
		edges[i] = m[k]
	}
	return edges
}
