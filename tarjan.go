package mscsc

import "fmt"

// Tarjan owns the original adjacency list, the SCC partition (sccMap,
// sign-encoded: v<=0 is a size-1 "singleton" sentinel, a positive value
// is the owning super-node id, and the super-node's own slot holds the
// negated SCC size), the inverse map from SCC id to member vertices, the
// necessary-edge count per SCC, and the recyclable super-node id pool.
type Tarjan struct {
	n       int // highest original vertex id
	extendN int // number of extra super-node ids reserved at construction
	m       uint64

	G [][]*OriginalEdge

	sccMap        []int
	invSCCMap     [][]int
	necEdgeNumMap []int

	pool *emptyNodeHeap

	dfn     []int
	low     []int
	inStack []bool
}

// NewTarjan allocates a Tarjan layer for n+1 vertices (ids 0..n). The
// extra super-node id space is sized ceil((n+2)/2), the largest number of
// super-nodes a sequence of merges starting from n+1 singletons can ever
// need simultaneously live (each merge retires at least one id).
func NewTarjan(n int) *Tarjan {
	extendN := (n + 3) / 2
	size := n + 1 + extendN

	sccMap := make([]int, size)
	for i := 0; i <= n; i++ {
		sccMap[i] = -1
	}

	t := &Tarjan{
		n:             n,
		extendN:       extendN,
		G:             make([][]*OriginalEdge, n+1),
		sccMap:        sccMap,
		invSCCMap:     make([][]int, size),
		necEdgeNumMap: make([]int, size),
		pool:          newEmptyNodePool(n+1, extendN),
		dfn:           make([]int, n+1),
		low:           make([]int, n+1),
		inStack:       make([]bool, n+1),
	}
	return t
}

func (t *Tarjan) beginDFS() *dfsScratch { return &dfsScratch{} }

func (t *Tarjan) endDFS(ds *dfsScratch) {
	for _, v := range ds.visited {
		t.inStack[v] = false
		t.dfn[v] = 0
		t.low[v] = 0
	}
}

func (t *Tarjan) mustAcquire(ds *dfsScratch) int {
	id, ok := t.pool.acquire()
	if !ok {
		panic(fmt.Errorf("mscsc: CreateSCC: %w", ErrPoolExhausted))
	}
	if ds != nil {
		ds.allocated = append(ds.allocated, id)
	}
	return id
}

// EdgeInsertion appends a new edge to u's adjacency list and returns it.
// It does not touch SCC membership; callers run the merge/insertion
// pipeline afterward.
func (t *Tarjan) EdgeInsertion(u, v int) *OriginalEdge {
	e := &OriginalEdge{S: u, T: v}
	t.G[u] = append(t.G[u], e)
	t.m++
	return e
}

// EdgeRemove finds and removes the first (u,v) edge from u's adjacency
// list, preserving the relative order of the remaining edges (the
// insertion order of surviving edges feeds the deterministic needed-
// marking choices downstream).
func (t *Tarjan) EdgeRemove(u, v int) (*OriginalEdge, error) {
	adj := t.G[u]
	idx := -1
	for i, e := range adj {
		if e.T == v {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("mscsc: EdgeRemove(%d,%d): %w", u, v, ErrEdgeNotFound)
	}
	e := adj[idx]
	t.G[u] = append(adj[:idx:idx], adj[idx+1:]...)
	t.m--
	return e, nil
}

// Find returns the SCC id owning vertex/super-node u: itself if u is a
// singleton (sccMap[u]<=0), else the super-node id it was folded into.
func (t *Tarjan) Find(u int) int {
	if t.sccMap[u] <= 0 {
		return u
	}
	return t.sccMap[u]
}

// InSameSCC reports whether u and v currently belong to the same SCC.
func (t *Tarjan) InSameSCC(u, v int) bool {
	return t.Find(u) == t.Find(v)
}

// Construction runs the initial Tarjan DFS over every vertex, producing
// the SCC partition, last-drop-edge marking, and the inverse SCC map.
func (t *Tarjan) Construction() {
	ds := t.beginDFS()
	defer t.endDFS(ds)

	for u := 0; u <= t.n; u++ {
		if t.dfn[u] == 0 {
			t.build(u, ds)
		}
	}

	for i := 0; i <= t.n; i++ {
		r := t.Find(i)
		t.invSCCMap[r] = append(t.invSCCMap[r], i)
	}
}

// build is the initial-construction recursive Tarjan DFS. It clears and
// recomputes Needed on every outgoing edge it visits: a tree edge is
// always needed, and of the remaining back/cross edges that tighten
// low[u], only the last one examined ("last-drop edge") is kept needed —
// the same 2-approximate spanning rule buildInternal uses after a split.
func (t *Tarjan) build(u int, ds *dfsScratch) {
	ds.visited = append(ds.visited, u)
	ds.dfnNum++
	t.dfn[u] = ds.dfnNum
	t.low[u] = ds.dfnNum
	ds.stack = append(ds.stack, u)
	t.inStack[u] = true

	var lastDrop *OriginalEdge
	for _, edge := range t.G[u] {
		edge.Needed = false
		v := edge.T
		if t.dfn[v] == 0 {
			edge.Needed = true
			t.build(v, ds)
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

// createSCC pops the DFS stack down to and including root, folding every
// popped vertex into a single SCC id. A size-1 SCC keeps root as its own
// id (sccMap[root] stays the -1 singleton sentinel); size>=2 allocates a
// fresh super-node id from the pool and sign-encodes the final size onto
// it (sccMap[id] = -size).
func (t *Tarjan) createSCC(root int, ds *dfsScratch) {
	newNode := -1
	if ds.stack[len(ds.stack)-1] != root {
		newNode = t.mustAcquire(ds)
	}

	for len(ds.stack) > 0 && ds.stack[len(ds.stack)-1] != root {
		top := ds.stack[len(ds.stack)-1]
		ds.stack = ds.stack[:len(ds.stack)-1]
		t.sccMap[top] = newNode
		t.sccMap[newNode]--
		t.inStack[top] = false
	}
	// pop root itself
	ds.stack = ds.stack[:len(ds.stack)-1]
	t.inStack[root] = false
	if newNode != -1 {
		t.sccMap[root] = newNode
		t.sccMap[newNode]--
	}
}

// Reachable is a plain BFS reachability probe over the original (not
// condensed) graph. It mutates nothing and is safe to call at any time.
func (t *Tarjan) Reachable(u, v int) (bool, error) {
	if u < 0 || u > t.n || v < 0 || v > t.n {
		return false, fmt.Errorf("mscsc: Reachable(%d,%d): %w", u, v, ErrVertexOutOfRange)
	}
	if u == v {
		return true, nil
	}
	visited := make([]bool, t.n+1)
	visited[u] = true
	queue := []int{u}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range t.G[cur] {
			if e.T == v {
				return true, nil
			}
			if !visited[e.T] {
				visited[e.T] = true
				queue = append(queue, e.T)
			}
		}
	}
	return false, nil
}

// Info returns a snapshot of the current SCC partition and necessary-
// edge accounting.
func (t *Tarjan) Info() InfoSnapshot {
	sccSeen := make(map[int]struct{})
	nonSingleton := 0
	for i := 0; i <= t.n; i++ {
		r := t.Find(i)
		if _, ok := sccSeen[r]; !ok {
			sccSeen[r] = struct{}{}
			if len(t.invSCCMap[r]) > 1 {
				nonSingleton++
			}
		}
	}

	var internalEdges, necEdges uint64
	for _, adj := range t.G {
		for _, e := range adj {
			if e.Internal {
				internalEdges++
				if e.Needed {
					necEdges++
				}
			}
		}
	}

	return InfoSnapshot{
		N:                    t.n,
		M:                    t.m,
		SCCCount:             len(sccSeen),
		NonSingletonSCCCount: nonSingleton,
		InternalEdgeCount:    internalEdges,
		NecEdgeCount:         necEdges,
	}
}

func (t *Tarjan) countInternalNeeded(nodes []int) int {
	count := 0
	for _, u := range nodes {
		for _, e := range t.G[u] {
			if e.Internal && e.Needed {
				count++
			}
		}
	}
	return count
}
