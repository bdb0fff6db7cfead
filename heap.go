package bvh

// siblingHeapCapacity bounds the best-sibling branch-and-bound frontier.
// 1024 slots is comfortably larger than twice the depth of a healthy tree
// (depth is O(log N), and the optimizer exists specifically to keep it
// that way). The bound does not grow with the arena's capacity, so a
// search whose frontier outgrows it makes push panic.
const siblingHeapCapacity = 1024

type heapEntry struct {
	index Index
	cost  float64
}

// siblingHeap is a fixed-capacity binary min-heap ordered by ascending
// cost, used by the best-sibling search. Overflowing it is a
// fatal configuration error, not a silent truncation: a tree whose
// frontier exceeds 1024 live nodes at any level has degenerated far
// beyond what the optimizer is meant to allow, and returning a wrong
// best-sibling silently would corrupt the SAH invariant it exists to
// preserve.
type siblingHeap struct {
	entries [siblingHeapCapacity]heapEntry
	n       int
}

func (h *siblingHeap) reset() {
	h.n = 0
}

func (h *siblingHeap) empty() bool {
	return h.n == 0
}

func (h *siblingHeap) push(index Index, cost float64) {
	if h.n >= siblingHeapCapacity {
		panic(&Error{
			Kind: InvariantViolation,
			Msg:  "best-sibling search frontier exceeded heap capacity (1024); tree is pathologically unbalanced",
		})
	}
	h.entries[h.n] = heapEntry{index, cost}
	i := h.n
	h.n++
	for i > 0 {
		parent := (i - 1) / 2
		if h.entries[parent].cost <= h.entries[i].cost {
			break
		}
		h.entries[parent], h.entries[i] = h.entries[i], h.entries[parent]
		i = parent
	}
}

// pop removes and returns the lowest-cost entry.
func (h *siblingHeap) pop() heapEntry {
	top := h.entries[0]
	h.n--
	h.entries[0] = h.entries[h.n]
	i := 0
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < h.n && h.entries[left].cost < h.entries[smallest].cost {
			smallest = left
		}
		if right < h.n && h.entries[right].cost < h.entries[smallest].cost {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.entries[i], h.entries[smallest] = h.entries[smallest], h.entries[i]
		i = smallest
	}
	return top
}
