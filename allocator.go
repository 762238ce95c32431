// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

package brzopfli

import "sync"

// Allocator is the externally supplied allocation handle spec.md §5 and §7
// describe: the driver's node array comes from it (the cost model is
// allocated directly), and
// once any allocation on it fails, its out-of-memory flag stays stuck for
// the allocator's lifetime — every subsequent call must short-circuit
// without allocating further, and a caller must construct a fresh Allocator
// to retry. Grounded on the teacher's sync.Pool-backed dictionary pool
// (originally slidingWindowDictPool in sliding_window_pool.go), generalized
// from one fixed LZO dictionary shape to the DP's reusable node-array
// scratch so repeated CreateBackwardReferences calls over many meta-blocks
// do not re-allocate the node array each time.
type Allocator struct {
	mu  sync.Mutex
	oom bool

	// Limit caps the largest node array this allocator will hand out, in
	// elements. Zero means unlimited. Exists so callers (and tests) can
	// exercise the OOM path without needing to exhaust real memory.
	Limit int

	pool sync.Pool
}

// NewAllocator returns a fresh Allocator with a clear OOM flag and no Limit.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// OutOfMemory reports whether this allocator's sticky OOM flag has tripped.
func (a *Allocator) OutOfMemory() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.oom
}

// nodes returns a node array sized for a window of n bytes (n+1 entries,
// position 0..n), reusing a pooled array when one large enough is
// available. Returns nil once the OOM flag is set, or if the n+1 entries
// would exceed Limit.
func (a *Allocator) nodes(n int) []node {
	a.mu.Lock()
	if a.oom {
		a.mu.Unlock()
		return nil
	}
	if a.Limit > 0 && n+1 > a.Limit {
		a.oom = true
		a.mu.Unlock()
		return nil
	}
	a.mu.Unlock()

	if v := a.pool.Get(); v != nil {
		if buf, ok := v.([]node); ok && cap(buf) >= n+1 {
			buf = buf[:n+1]
			for i := range buf {
				buf[i] = node{cost: infCost}
			}
			buf[0].cost = 0
			return buf
		}
	}
	return newNodes(n)
}

// release returns a node array to the pool for the next call to reuse.
func (a *Allocator) release(nodes []node) {
	a.pool.Put(nodes)
}

// markOutOfMemory trips the sticky OOM flag directly; exposed for
// collaborators (a MatchFinder's own scratch allocation, say) that fail
// outside this Allocator's own nodes() path but still need to report into
// the same sticky flag.
func (a *Allocator) markOutOfMemory() {
	a.mu.Lock()
	a.oom = true
	a.mu.Unlock()
}
