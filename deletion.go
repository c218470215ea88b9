package mscsc

// splitProber runs Phase 1 of a single-edge deletion: a bounded,
// early-exiting DFS from the deleted edge's source looking for any other
// internal path to its target. If one exists within the 2-approximation
// edge budget, the SCC survives unsplit and Phase 2 never runs.
//
// necCount and prevDrop are accumulated across the whole recursion (not
// reset per frame) — prevDrop tracks a lastDrop edge one frame up that
// would be marked needed on successful unwind but hasn't been yet, so the
// budget check at the target has to account for it before it is
// committed. The original source's prevLastDropNum update reads as
// assignment ("=+") where the intent is cumulative; this is implemented
// as the cumulative form (+=).
type splitProber struct {
	t         *Tarjan
	target    int
	threshold int
	ds        *dfsScratch

	necCount int
	prevDrop int
	redo     bool
}

func boolDelta(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (p *splitProber) try(u int) bool {
	if u == p.target {
		if p.necCount+p.prevDrop > p.threshold {
			p.redo = true
			return false
		}
		return true
	}

	p.ds.visited = append(p.ds.visited, u)
	p.ds.dfnNum++
	p.t.dfn[u] = p.ds.dfnNum
	p.t.low[u] = p.ds.dfnNum
	p.ds.stack = append(p.ds.stack, u)
	p.t.inStack[u] = true

	var lastDrop *OriginalEdge
	for _, edge := range p.t.G[u] {
		if !edge.Internal {
			continue
		}
		if edge.Needed {
			p.necCount--
		}
		edge.Needed = false
		v := edge.T

		if p.t.dfn[v] == 0 {
			p.necCount++
			edge.Needed = true

			if lastDrop != nil && !lastDrop.Needed {
				p.prevDrop++
			}

			if p.try(v) {
				if lastDrop != nil {
					p.necCount += boolDelta(!lastDrop.Needed)
					lastDrop.Needed = true
				}
				return true
			}

			if lastDrop != nil && !lastDrop.Needed {
				p.prevDrop--
			}

			if p.t.low[v] <= p.t.low[u] {
				lastDrop = edge
				p.t.low[u] = p.t.low[v]
			}
		} else if p.t.inStack[v] && p.t.low[u] > p.t.dfn[v] {
			lastDrop = edge
			p.t.low[u] = p.t.dfn[v]
		}
	}

	if lastDrop != nil {
		p.necCount += boolDelta(!lastDrop.Needed)
		lastDrop.Needed = true
	}

	if p.t.low[u] == p.t.dfn[u] && !p.redo {
		p.t.createSCC(u, p.ds)
	}

	return false
}

// buildInternal is Phase 2: a plain recursive Tarjan DFS restricted to
// Internal edges, re-partitioning an SCC that Phase 1 determined really
// does split, with the same last-drop-edge needed-marking rule as the
// initial build.
func (t *Tarjan) buildInternal(u int, ds *dfsScratch) {
	ds.visited = append(ds.visited, u)
	ds.dfnNum++
	t.dfn[u] = ds.dfnNum
	t.low[u] = ds.dfnNum
	ds.stack = append(ds.stack, u)
	t.inStack[u] = true

	var lastDrop *OriginalEdge
	for _, edge := range t.G[u] {
		if !edge.Internal {
			continue
		}
		edge.Needed = false
		v := edge.T
		if t.dfn[v] == 0 {
			edge.Needed = true
			t.buildInternal(v, ds)
			if t.low[v] <= t.low[u] {
				lastDrop = edge
				t.low[u] = t.low[v]
			}
		} else if t.inStack[v] && t.low[u] > t.dfn[v] {
			lastDrop = edge
			t.low[u] = t.dfn[v]
		}
	}
	if lastDrop != nil {
		lastDrop.Needed = true
	}
	if t.low[u] == t.dfn[u] {
		t.createSCC(u, ds)
	}
}

// preserveIDOnSplit keeps the old SCC id alive on whichever resulting
// sub-SCC is largest (size>=2), swapping invSCCMap/sccMap so callers that
// cached the old id keep working; if every resulting sub-SCC is a
// singleton, the old id has nothing left to attach to and is simply
// returned to the pool.
func (t *Tarjan) preserveIDOnSplit(sccID int, output *DecOutput) {
	maxID := -1
	maxSize := 0
	for r := range output.NewNode {
		if t.sccMap[r] < maxSize {
			maxSize = t.sccMap[r]
			maxID = r
		}
	}

	if maxSize <= -2 {
		t.invSCCMap[sccID], t.invSCCMap[maxID] = t.invSCCMap[maxID], t.invSCCMap[sccID]
		for _, v := range t.invSCCMap[sccID] {
			t.sccMap[v] = sccID
		}
		t.sccMap[sccID] = t.sccMap[maxID]
		t.sccMap[maxID] = 0
		t.pool.release(maxID)
		delete(output.NewNode, maxID)
		output.NewNode[sccID] = struct{}{}
		return
	}

	t.sccMap[sccID] = 0
	t.pool.release(sccID)
}

// DeletionSCC handles a single intra-SCC edge deletion. Phase 1 probes
// for an alternate path from u to v within the removed edge's SCC; if
// found, the SCC survives and output.NewNode stays empty (when the probe
// reaches v but exceeds its edge budget, a full re-Tarjan of the SCC
// re-marks its needed edges first).
// Otherwise Phase 2 re-runs a full Tarjan pass restricted to the SCC's
// own vertices and reports every resulting sub-SCC.
func (t *Tarjan) DeletionSCC(u, v int) *DecOutput {
	sccID := t.Find(u)
	output := &DecOutput{SCCID: sccID}

	sccNodeList := t.invSCCMap[sccID]
	t.invSCCMap[sccID] = nil
	for _, i := range sccNodeList {
		t.sccMap[i] = -1
	}

	ds := t.beginDFS()
	prober := &splitProber{t: t, target: v, threshold: 2 * (len(sccNodeList) - 1), ds: ds,
		necCount: t.countInternalNeeded(sccNodeList)}
	found := prober.try(u)

	if found || prober.redo {
		for _, allocated := range ds.allocated {
			t.pool.release(allocated)
		}
		for _, i := range sccNodeList {
			t.sccMap[i] = sccID
		}
		t.invSCCMap[sccID] = sccNodeList
		t.endDFS(ds)
		if prober.redo {
			// v is still reachable, so the SCC survives; re-mark its
			// needed edges with a full pass over internal edges.
			t.BatchDeletionSCC(sccID)
		}
		t.necEdgeNumMap[sccID] = t.countInternalNeeded(sccNodeList)
		return output
	}

	for _, i := range sccNodeList {
		if t.dfn[i] == 0 {
			t.buildInternal(i, ds)
		}
	}
	t.endDFS(ds)

	output.NewNode = make(map[int]struct{})
	for _, i := range sccNodeList {
		r := t.Find(i)
		t.invSCCMap[r] = append(t.invSCCMap[r], i)
		output.NewNode[r] = struct{}{}
	}
	output.SCCNodeList = sccNodeList

	t.preserveIDOnSplit(sccID, output)

	for r := range output.NewNode {
		t.necEdgeNumMap[r] = 0
	}

	return output
}

// BatchDeletionSCC re-tarjans an entire SCC at once (used when more than
// one necessary edge was removed from the same SCC in a batch, so a
// bounded Phase-1 probe per edge would be no cheaper than one full pass).
func (t *Tarjan) BatchDeletionSCC(sccID int) *DecOutput {
	output := &DecOutput{SCCID: sccID}
	sccNodeList := t.invSCCMap[sccID]
	t.invSCCMap[sccID] = nil
	for _, i := range sccNodeList {
		t.sccMap[i] = -1
	}

	ds := t.beginDFS()
	for _, i := range sccNodeList {
		if t.dfn[i] == 0 {
			t.buildInternal(i, ds)
		}
	}
	t.endDFS(ds)

	outputSCC := map[int]struct{}{}
	for _, i := range sccNodeList {
		outputSCC[t.Find(i)] = struct{}{}
	}

	if len(outputSCC) == 1 {
		var only int
		for r := range outputSCC {
			only = r
		}
		if only != sccID {
			t.sccMap[only] = 0
			t.pool.release(only)
		}
		for _, i := range sccNodeList {
			t.sccMap[i] = sccID
		}
		t.invSCCMap[sccID] = sccNodeList
		return output
	}

	output.NewNode = map[int]struct{}{}
	for _, i := range sccNodeList {
		r := t.Find(i)
		t.invSCCMap[r] = append(t.invSCCMap[r], i)
		output.NewNode[r] = struct{}{}
	}
	output.SCCNodeList = sccNodeList

	t.preserveIDOnSplit(sccID, output)

	for r := range output.NewNode {
		t.necEdgeNumMap[r] = 0
	}

	return output
}
