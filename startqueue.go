// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

package brzopfli

// posData snapshots what the relaxation step needs to know about one
// candidate start position: where it is, the cost difference that makes it
// worth trying, and the distance cache as it would stand at that point.
// Mirrors the reference encoder's PosData.
type posData struct {
	pos          int
	costDiff     float32
	distanceCache [4]int
}

// startPosQueue is a fixed-capacity ring buffer of the cheapest candidate
// start positions for the next command, kept sorted ascending by costDiff so
// the relaxation step can simply take the first few entries instead of
// scanning every possible start. Ported from the reference encoder's
// StartPosQueue, including its capacity of 8 — a deliberately small working
// set; on the idiomatic-Go LZ history of this package, this is the lookahead
// queue the teacher's hash-chain search loop keeps implicitly via
// bestLen-ranked candidates, here made an explicit structure because the DP
// needs it sorted across positions, not just within one hash bucket.
type startPosQueue struct {
	q   [8]posData
	idx int
}

const startPosQueueCapacity = 8

// size reports how many valid entries the queue currently holds.
func (s *startPosQueue) size() int {
	if s.idx < startPosQueueCapacity {
		return s.idx
	}
	return startPosQueueCapacity
}

// at returns the k'th cheapest entry (0 = cheapest).
func (s *startPosQueue) at(k int) *posData {
	return &s.q[(k-s.idx)&7]
}

// push inserts a new candidate, evicting the most expensive one once the
// queue is full, and bubbles it into sorted position by costDiff.
func (s *startPosQueue) push(p posData) {
	slot := (^s.idx) & 7
	s.idx++
	s.q[slot] = p

	// Restore ascending order by costDiff via a single bubble pass, same as
	// the reference encoder: at most len-1 adjacent swaps since only the
	// newly inserted entry can be out of place.
	n := s.size()
	for i := 1; i < n; i++ {
		if s.at(i-1).costDiff > s.at(i).costDiff {
			ia := (i - 1 - s.idx) & 7
			ib := (i - s.idx) & 7
			s.q[ia], s.q[ib] = s.q[ib], s.q[ia]
		} else {
			break
		}
	}
}
