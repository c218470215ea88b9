package mscsc

// condensationScratch is the borrow/return holder for a single
// condensation-level DFS pass (onlyTarjan or build), mirroring
// dfsScratch but scoped to the Reduced Graph layer's dfn/low/inStack.
type condensationScratch struct {
	dfnNum  int
	stack   []int
	visited []int
}

func (rg *ReducedGraph) beginCondensation() *condensationScratch {
	return &condensationScratch{}
}

func (rg *ReducedGraph) endCondensation(cs *condensationScratch) {
	for _, v := range cs.visited {
		rg.inStack[v] = false
		rg.dfn[v] = 0
		rg.low[v] = 0
	}
}

// find is the Reduced Graph layer's own path-compressing union-find,
// deliberately separate from the Tarjan layer's sign-encoded sccMap.
func (rg *ReducedGraph) find(u int) int {
	if rg.sccMap[u] < 0 {
		return u
	}
	rg.sccMap[u] = rg.find(rg.sccMap[u])
	return rg.sccMap[u]
}

func (rg *ReducedGraph) union(u, v int) {
	ur, vr := rg.find(u), rg.find(v)
	if ur == vr {
		return
	}
	if rg.sccMap[ur] < rg.sccMap[vr] {
		rg.sccMap[ur] += rg.sccMap[vr]
		rg.sccMap[vr] = ur
	} else {
		rg.sccMap[vr] += rg.sccMap[ur]
		rg.sccMap[ur] = vr
	}
}

// mayMergeDFS is a 3-color reachability probe from the new edge's
// target, looking for a path back to its source s. Color 2 ("reaches s")
// propagates back up the recursion; every super-edge on a path that
// reaches s is recorded as a merge candidate.
func (rg *ReducedGraph) mayMergeDFS(s, now int, output *IncOutput, visited *[]int) bool {
	*visited = append(*visited, now)
	rg.state[now] = 1

	if now == s {
		rg.state[now] = 2
		output.AffNode[now] = struct{}{}
		return true
	}

	result := false
	for _, edge := range rg.outEdgesSorted(now) {
		v := edge.T
		switch rg.state[v] {
		case 0:
			if rg.mayMergeDFS(s, v, output, visited) {
				result = true
				output.NecEdge = append(output.NecEdge, edge)
				rg.state[now] = 2
				output.AffNode[now] = struct{}{}
			}
		case 2:
			result = true
			if rg.state[now] != 2 {
				output.NecEdge = append(output.NecEdge, edge)
				rg.state[now] = 2
				output.AffNode[now] = struct{}{}
			}
		}
	}
	return result
}

// MayMerge checks whether inserting an edge s->t closes a cycle (i.e.
// whether t can already reach s in the condensation). If so, the
// returned IncOutput carries every SCC id on some cycle through s and t
// (AffNode) and a spanning set of super-edges to mark needed (NecEdge).
// An empty AffNode means no merge: s and t stay in separate SCCs.
func (rg *ReducedGraph) MayMerge(s, t int) *IncOutput {
	output := &IncOutput{AffNode: map[int]struct{}{}}
	var visited []int
	rg.mayMergeDFS(s, t, output, &visited)
	for _, i := range visited {
		rg.state[i] = 0
	}
	return output
}

// onlyTarjan runs a disposable condensation-level Tarjan pass, folding
// every SCC it finds into rg's own union-find via union instead of
// allocating a super-node id — the merge set is consumed by the caller
// in the same call, never persisted.
func (rg *ReducedGraph) onlyTarjan(u int, cs *condensationScratch) {
	cs.visited = append(cs.visited, u)
	cs.dfnNum++
	rg.dfn[u] = cs.dfnNum
	rg.low[u] = cs.dfnNum
	cs.stack = append(cs.stack, u)
	rg.inStack[u] = true

	for _, edge := range rg.outEdgesSorted(u) {
		v := edge.T
		if rg.dfn[v] == 0 {
			rg.onlyTarjan(v, cs)
			if rg.low[v] <= rg.low[u] {
				rg.low[u] = rg.low[v]
			}
		} else if rg.inStack[v] && rg.low[u] > rg.dfn[v] {
			rg.low[u] = rg.dfn[v]
		}
	}

	if rg.low[u] == rg.dfn[u] {
		for cs.stack[len(cs.stack)-1] != u {
			top := cs.stack[len(cs.stack)-1]
			cs.stack = cs.stack[:len(cs.stack)-1]
			rg.union(u, top)
			rg.inStack[top] = false
		}
		cs.stack = cs.stack[:len(cs.stack)-1]
		rg.inStack[u] = false
	}
}

// InsertionMinimum computes the merge set for a new edge using the
// condensation-level Tarjan pass (onlyTarjan) plus a BFS topological
// sweep selecting one necessary super-edge per vertex as it becomes
// reachable with in-degree zero, instead of MayMerge's DFS-order
// candidate list. It produces the same merge set (AffNode) MayMerge
// would but a possibly different, still-valid, NecEdge spanning set.
func (rg *ReducedGraph) InsertionMinimum(newEdge *OriginalEdge) *IncOutput {
	rg.SingleInsertion(newEdge)

	s := rg.tarjan.Find(newEdge.S)
	tgt := rg.tarjan.Find(newEdge.T)
	output := &IncOutput{AffNode: map[int]struct{}{}}

	if s == tgt {
		return output
	}

	newSE := rg.GOut[s][tgt]

	cs := rg.beginCondensation()
	rg.onlyTarjan(newSE.S, cs)
	rg.endCondensation(cs)

	for i := 0; i < rg.n; i++ {
		if rg.sccMap[i] != -1 {
			output.AffNode[i] = struct{}{}
		}
	}
	if len(output.AffNode) == 0 {
		return output
	}

	inDegree := map[int]int{}
	for i := range output.AffNode {
		for _, edge := range rg.outEdgesSorted(i) {
			if _, ok := output.AffNode[edge.T]; ok {
				inDegree[edge.T]++
			}
		}
	}

	// Seed the walk at the new edge's target and stop expanding once it
	// loops back to the source: the source's own out-edges (including
	// the new edge itself) are already accounted for and revisiting them
	// here would double-count or stall the in-degree countdown.
	canReach := map[int]bool{}
	queue := []int{newSE.T}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		if u == newSE.S {
			continue
		}

		reachedNew := false
		var lastEdge *SuperEdge
		for _, edge := range rg.outEdgesSorted(u) {
			v := edge.T
			if _, ok := output.AffNode[v]; !ok {
				continue
			}
			lastEdge = edge
			inDegree[v]--
			if inDegree[v] == 0 {
				queue = append(queue, v)
				if !canReach[v] {
					canReach[v] = true
					reachedNew = true
					output.NecEdge = append(output.NecEdge, edge)
				}
			}
		}
		if !reachedNew && lastEdge != nil {
			canReach[lastEdge.T] = true
			output.NecEdge = append(output.NecEdge, lastEdge)
		}
	}

	for id := range output.AffNode {
		rg.sccMap[id] = -1
	}

	output.NecEdge = append(output.NecEdge, newSE)
	output.AddedEdge = newEdge

	return output
}
