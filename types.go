package mscsc

// OriginalEdge is a single directed edge of the input graph. It is shared
// by reference between the Tarjan layer (as an adjacency-list entry) and
// the Reduced Graph layer (as a member of some SuperEdge.SubEdge), which
// is why it is a pointer-identity type rather than a value: both layers
// need to flip Internal/Needed on the same edge and see the other side's
// update.
type OriginalEdge struct {
	S, T int

	// Needed marks this edge as part of the current ~2-approximate
	// necessary-edge set for its SCC. Only meaningful when Internal.
	Needed bool

	// Internal is true once S and T are in the same SCC (Find(S)==Find(T)).
	// False for edges crossing the condensation.
	Internal bool
}

// SuperEdge is one condensation-level edge: S and T are SCC ids (either a
// singleton vertex id or a pool-allocated super-node id), and SubEdge is
// the set of OriginalEdges it currently represents.
type SuperEdge struct {
	S, T    int
	SubEdge map[*OriginalEdge]struct{}
}

// IncOutput is the result handed from the Reduced Graph layer to the
// Tarjan layer (and back) describing one insertion-triggered merge: the
// set of SCC ids being folded together, the super-edges chosen to close
// the cycle, and (for InsertionMinimum) the edge that triggered it.
type IncOutput struct {
	FinalID   int
	AffNode   map[int]struct{}
	NecEdge   []*SuperEdge
	AddedEdge *OriginalEdge
}

// DecOutput is the result of a Tarjan-layer deletion probe: which SCC was
// disturbed, which new SCC ids resulted from a split (empty if the probe
// found an alternate internal path and nothing split), and the vertex
// list of the original SCC for the Reduced Graph layer to re-wire.
type DecOutput struct {
	SCCID       int
	NewNode     map[int]struct{}
	DeletedEdge *OriginalEdge
	SCCNodeList []int
}

// dfsScratch is a borrow/return holder for the Tarjan-layer DFS working
// state (dfn/low/inStack live on Tarjan itself; dfsScratch tracks only
// what a single DFS invocation touched). Every top-level DFS entry point
// acquires one with beginDFS and releases it with endDFS (Construction in a
// defer, the deletion paths explicitly once their passes finish), so
// the shared dfn/low/inStack arrays are always clean for the next call
// without an O(N) reset. allocated records super-node ids acquired from
// the pool during this session, for callers that may need to roll a
// partial probe back (see DeletionSCC's Phase 1).
type dfsScratch struct {
	dfnNum    int
	stack     []int
	visited   []int
	allocated []int
}

// InfoSnapshot is a point-in-time readout of the Tarjan layer, mirroring
// tarjan.cpp's Info() printout.
type InfoSnapshot struct {
	N                    int
	M                    uint64
	SCCCount             int
	NonSingletonSCCCount int
	InternalEdgeCount    uint64
	NecEdgeCount         uint64
}

// Stats are monotonic counters accumulated across a Graph's lifetime,
// supplementing InfoSnapshot with the operation-class counts graph.cpp
// tracks (sccMergeNum, sccTrySplitNum, sccRealSplitNum, …).
type Stats struct {
	MergeCount            int
	TrySplitCount         int
	RealSplitCount        int
	TrySplitCountNoPrune  int
	RealSplitCountNoPrune int
}
