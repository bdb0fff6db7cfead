package bvh

import "testing"

func TestSiblingHeap_PopsAscending(t *testing.T) {
	var h siblingHeap
	costs := []float64{5, 1, 9, 3, 7, 2, 8, 0, 6, 4}
	for i, c := range costs {
		h.push(Index(i), c)
	}

	prev := -1.0
	count := 0
	for !h.empty() {
		e := h.pop()
		if e.cost < prev {
			t.Fatalf("heap popped out of order: %v after %v", e.cost, prev)
		}
		prev = e.cost
		count++
	}
	if count != len(costs) {
		t.Fatalf("popped %d entries, want %d", count, len(costs))
	}
}

func TestSiblingHeap_OverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected push past capacity to panic")
		}
	}()
	var h siblingHeap
	for i := 0; i <= siblingHeapCapacity; i++ {
		h.push(Index(i), float64(i))
	}
}
