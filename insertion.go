package mscsc

import "sort"

// insertionManageSCCNode folds every SCC id in output.AffNode into one
// surviving id and records the resulting necessary-edge count. It marks
// exactly one representative OriginalEdge per output.NecEdge super-edge
// as Needed — closing the cycle the Reduced Graph layer detected — then
// absorbs every other affected SCC's vertices into the largest one
// (ties favor the smallest id), freeing any retired super-node ids back
// to the pool.
//
// necEdgeSize intentionally sums affected-SCC *sizes*, not their prior
// necEdgeNumMap counts: a merged SCC's new necessary-edge count is seeded
// at "one edge per vertex" (the minimum a strongly connected component of
// that size can need) plus the new closing edges, matching the 2-approx
// accounting the Reduced Graph layer carries forward from here.
func (t *Tarjan) insertionManageSCCNode(output *IncOutput) {
	affNode := make([]int, 0, len(output.AffNode))
	for i := range output.AffNode {
		affNode = append(affNode, i)
	}
	sort.Ints(affNode)

	maxID := -1
	maxSize := 0
	necEdgeSize := 0
	for _, i := range affNode {
		size := -t.sccMap[i]
		if size > maxSize {
			maxSize = size
			maxID = i
		}
		necEdgeSize += size
	}
	necEdgeSize += len(output.NecEdge)

	for _, se := range output.NecEdge {
		for e := range se.SubEdge {
			e.Needed = true
			break
		}
	}

	if maxSize == 1 {
		maxID = t.mustAcquire(nil)
	}

	for _, i := range affNode {
		if i == maxID {
			continue
		}
		t.sccMap[maxID] += t.sccMap[i]
		for _, v := range t.invSCCMap[i] {
			t.sccMap[v] = maxID
		}
		t.invSCCMap[maxID] = append(t.invSCCMap[maxID], t.invSCCMap[i]...)
		t.invSCCMap[i] = nil
		if i > t.n {
			t.sccMap[i] = 0
			t.pool.release(i)
		}
	}

	output.FinalID = maxID
	t.necEdgeNumMap[maxID] = necEdgeSize
	delete(output.AffNode, maxID)
}

// InsertionSCCWithEdge is the Tarjan-layer side of a single-edge
// merge-insertion: it marks newEdge as internal and needed, then folds
// the SCCs the Reduced Graph layer found on the new cycle.
func (t *Tarjan) InsertionSCCWithEdge(newEdge *OriginalEdge, output *IncOutput) {
	newEdge.Internal = true
	newEdge.Needed = true
	t.insertionManageSCCNode(output)
}

// InsertionSCC is the no-edge-argument variant used by InsertionMinimum,
// where the triggering edge is already a member of output.NecEdge (via
// its own super-edge) and gets its needed flag set there instead.
func (t *Tarjan) InsertionSCC(output *IncOutput) {
	if output.AddedEdge != nil {
		output.AddedEdge.Internal = true
	}
	t.insertionManageSCCNode(output)
}

// BatchInsertionSCC applies insertionManageSCCNode to every independent
// merge group a batch insertion produced, in ascending SCC-id order for
// determinism.
func (t *Tarjan) BatchInsertionSCC(collect map[int]*IncOutput) {
	ids := make([]int, 0, len(collect))
	for id := range collect {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		t.insertionManageSCCNode(collect[id])
	}
}
