package mscsc

import "sort"

// InsertionSCC re-wires the condensation after a Tarjan-layer merge:
// every super-edge touching an affected node either becomes internal
// (both endpoints folded into the merge) or is detached and its member
// OriginalEdges re-inserted against the post-merge SCC ids.
func (rg *ReducedGraph) InsertionSCC(output *IncOutput) {
	finalID := output.FinalID

	toDelete := map[*SuperEdge]struct{}{}
	var reinsertSets []map[*OriginalEdge]struct{}

	for node := range output.AffNode {
		for _, edge := range rg.outEdgesSorted(node) {
			toDelete[edge] = struct{}{}
			_, affected := output.AffNode[edge.T]
			if edge.T == finalID || affected {
				for e := range edge.SubEdge {
					e.Internal = true
				}
			} else {
				reinsertSets = append(reinsertSets, edge.SubEdge)
			}
		}
		for _, edge := range rg.inEdgesSorted(node) {
			toDelete[edge] = struct{}{}
			_, affected := output.AffNode[edge.S]
			if edge.S == finalID || affected {
				for e := range edge.SubEdge {
					e.Internal = true
				}
			} else {
				reinsertSets = append(reinsertSets, edge.SubEdge)
			}
		}
	}

	for edge := range toDelete {
		rg.deleteEdge(edge)
	}
	for _, set := range reinsertSets {
		for e := range set {
			rg.reinsert(e)
		}
	}
}

// InsertionSCCBatch applies InsertionSCC to every independent merge group
// a batch insertion produced, in ascending SCC-id order for determinism.
func (rg *ReducedGraph) InsertionSCCBatch(collect map[int]*IncOutput) {
	ids := make([]int, 0, len(collect))
	for id := range collect {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		rg.InsertionSCC(collect[id])
	}
}

// DeletionSCC re-wires the condensation after a Tarjan-layer split: scans
// the old SCC's members for edges that now cross the new partition
// (recomputing necEdgeNumMap for edges that stayed internal), then
// re-attaches every super-edge that used to touch the old SCC id against
// its post-split owner.
func (rg *ReducedGraph) DeletionSCC(output *DecOutput) {
	sccID := output.SCCID

	var toDelete []*SuperEdge
	var toReinsert []*OriginalEdge

	for _, id := range output.SCCNodeList {
		for _, edge := range rg.tarjan.G[id] {
			if !edge.Internal {
				continue
			}
			if rg.tarjan.Find(edge.S) != rg.tarjan.Find(edge.T) {
				edge.Internal = false
				toReinsert = append(toReinsert, edge)
			} else {
				rg.tarjan.necEdgeNumMap[rg.tarjan.Find(edge.S)]++
			}
		}
	}

	for _, edge := range rg.outEdgesSorted(sccID) {
		for e := range edge.SubEdge {
			if rg.tarjan.Find(e.S) != sccID {
				toReinsert = append(toReinsert, e)
				delete(edge.SubEdge, e)
			}
		}
		if len(edge.SubEdge) == 0 {
			toDelete = append(toDelete, edge)
		}
	}
	for _, edge := range rg.inEdgesSorted(sccID) {
		for e := range edge.SubEdge {
			if rg.tarjan.Find(e.T) != sccID {
				toReinsert = append(toReinsert, e)
				delete(edge.SubEdge, e)
			}
		}
		if len(edge.SubEdge) == 0 {
			toDelete = append(toDelete, edge)
		}
	}

	for _, edge := range toDelete {
		rg.deleteEdge(edge)
	}
	for _, e := range toReinsert {
		rg.reinsert(e)
	}
}
