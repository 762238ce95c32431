// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

package brzopfli

import "testing"

func TestAllocatorNodesSizedCorrectly(t *testing.T) {
	a := NewAllocator()
	nodes := a.nodes(10)
	if len(nodes) != 11 {
		t.Fatalf("len(nodes) = %d, want 11", len(nodes))
	}
	if nodes[0].cost != 0 {
		t.Fatalf("nodes[0].cost = %v, want 0", nodes[0].cost)
	}
	if nodes[5].cost != infCost {
		t.Fatalf("nodes[5].cost = %v, want infCost", nodes[5].cost)
	}
}

func TestAllocatorReusesReleasedBuffer(t *testing.T) {
	a := NewAllocator()
	first := a.nodes(100)
	first[50].cost = 7 // mutate so reuse is observable
	a.release(first)

	second := a.nodes(50)
	if &second[0] != &first[0] {
		t.Fatalf("expected nodes(50) to reuse the released 101-element buffer")
	}
	if second[50].cost != infCost {
		t.Fatalf("reused buffer not reset: second[50].cost = %v, want infCost", second[50].cost)
	}
}

func TestAllocatorLimitTripsStickyOOM(t *testing.T) {
	a := &Allocator{Limit: 10}
	if a.nodes(20) != nil {
		t.Fatal("expected nil nodes when n exceeds Limit")
	}
	if !a.OutOfMemory() {
		t.Fatal("expected OutOfMemory() to be true after exceeding Limit")
	}
	if a.nodes(1) != nil {
		t.Fatal("expected OOM flag to stay stuck for a small request too")
	}
}

func TestAllocatorMarkOutOfMemory(t *testing.T) {
	a := NewAllocator()
	if a.OutOfMemory() {
		t.Fatal("fresh allocator should not be OOM")
	}
	a.markOutOfMemory()
	if !a.OutOfMemory() {
		t.Fatal("markOutOfMemory should trip the sticky flag")
	}
	if a.nodes(1) != nil {
		t.Fatal("expected nodes() to short-circuit once OOM is tripped")
	}
}
