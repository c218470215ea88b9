package mscsc

import "container/heap"

// emptyNodeHeap is a container/heap min-heap of unused super-node ids,
// shaped the same way dijkstra.nodePQ is: Len/Less/Swap/Push/Pop on a
// slice type, ordered so the smallest id always comes out first (keeps
// ids dense and reused predictably instead of growing unbounded).
type emptyNodeHeap []int

func (h emptyNodeHeap) Len() int            { return len(h) }
func (h emptyNodeHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h emptyNodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *emptyNodeHeap) Push(x interface{}) { *h = append(*h, x.(int)) }
func (h *emptyNodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

func newEmptyNodePool(firstID, count int) *emptyNodeHeap {
	h := make(emptyNodeHeap, count)
	for i := 0; i < count; i++ {
		h[i] = firstID + i
	}
	heap.Init(&h)
	return &h
}

func (h *emptyNodeHeap) acquire() (int, bool) {
	if h.Len() == 0 {
		return 0, false
	}
	return heap.Pop(h).(int), true
}

func (h *emptyNodeHeap) release(id int) {
	heap.Push(h, id)
}
