package mscsc

import "sort"

// build is the condensation-level DFS used by BatchInsertion: like
// onlyTarjan, it folds cycles via union, but it also records every tree
// edge and last-drop edge it crosses into necEdge — a candidate pool of
// super-edges that might need to be marked needed once the affected SCCs
// are known, collected once across every batch source instead of once
// per inserted edge.
func (rg *ReducedGraph) build(u int, cs *condensationScratch, necEdge map[*SuperEdge]struct{}) {
	cs.visited = append(cs.visited, u)
	cs.dfnNum++
	rg.dfn[u] = cs.dfnNum
	rg.low[u] = cs.dfnNum
	cs.stack = append(cs.stack, u)
	rg.inStack[u] = true

	var lastDrop *SuperEdge
	for _, edge := range rg.outEdgesSorted(u) {
		v := edge.T
		if rg.dfn[v] == 0 {
			necEdge[edge] = struct{}{}
			rg.build(v, cs, necEdge)
			if rg.low[v] <= rg.low[u] {
				lastDrop = edge
				rg.low[u] = rg.low[v]
			}
		} else if rg.inStack[v] && rg.low[u] > rg.dfn[v] {
			lastDrop = edge
			rg.low[u] = rg.dfn[v]
		}
	}
	if lastDrop != nil {
		necEdge[lastDrop] = struct{}{}
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

// BatchInsertion attaches every new edge to the condensation, then runs
// one condensation-level Tarjan pass seeded from all their endpoints at
// once, grouping the resulting merges by final SCC id. Each group's
// IncOutput is ready for Tarjan.BatchInsertionSCC / ReducedGraph's own
// InsertionSCCBatch.
func (rg *ReducedGraph) BatchInsertion(edges []*OriginalEdge) map[int]*IncOutput {
	sourceSet := map[int]struct{}{}
	for _, e := range edges {
		rg.SingleInsertion(e)
		sourceSet[rg.tarjan.Find(e.S)] = struct{}{}
		sourceSet[rg.tarjan.Find(e.T)] = struct{}{}
	}

	sources := make([]int, 0, len(sourceSet))
	for s := range sourceSet {
		sources = append(sources, s)
	}
	sort.Ints(sources)

	cs := rg.beginCondensation()
	necEdgeSet := map[*SuperEdge]struct{}{}
	for _, u := range sources {
		if rg.dfn[u] == 0 {
			rg.build(u, cs, necEdgeSet)
		}
	}
	rg.endCondensation(cs)

	necList := make([]*SuperEdge, 0, len(necEdgeSet))
	for e := range necEdgeSet {
		necList = append(necList, e)
	}
	sort.Slice(necList, func(i, j int) bool {
		if necList[i].S != necList[j].S {
			return necList[i].S < necList[j].S
		}
		return necList[i].T < necList[j].T
	})

	output := map[int]*IncOutput{}
	for _, edge := range necList {
		if rg.find(edge.S) != rg.find(edge.T) {
			continue
		}
		id := rg.find(edge.S)
		out, ok := output[id]
		if !ok {
			out = &IncOutput{AffNode: map[int]struct{}{}}
			output[id] = out
		}
		out.AffNode[edge.S] = struct{}{}
		out.AffNode[edge.T] = struct{}{}
		out.NecEdge = append(out.NecEdge, edge)
	}

	for _, out := range output {
		for id := range out.AffNode {
			rg.sccMap[id] = -1
		}
	}

	return output
}
