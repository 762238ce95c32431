// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

package brzopfli

import "unsafe"

// MatchFinder enumerates backward-reference candidates at a position. The
// zopflifying DP (quality 10/11) needs every candidate length up to the
// longest found, ascending by Len with non-decreasing Distance, so it can
// prune the ones a cheaper-but-shorter candidate already dominates; the
// greedy path (quality <= 9, greedy.go) only ever looks at the single
// longest match FindAll reports.
//
// This is the H2..H10 family the reference encoder instantiates once per
// hasher via textual template inclusion; Go has no equivalent, so
// brzopfli implements one generic hash-chain matcher parameterized by hash
// width and chain depth (grounded on the teacher's hcMatch3Table/hcState)
// and exposes H2..H9 as depth/width presets over it, with H10 switched to a
// wider multi-candidate mode the DP depends on.
type MatchFinder interface {
	// FindAll returns every candidate match at pos, ascending by Len with
	// non-decreasing Distance. Implementations must not return a Distance of
	// 0 or a match that reads past len(data).
	FindAll(data []byte, pos, maxBackward int) []Match

	// StoreRange inserts every position in [start, end) into the finder's
	// hash structure without searching, used to fast-forward past a match
	// already taken.
	StoreRange(data []byte, start, end int)

	// Lookahead is how many bytes ahead of the current position this finder
	// needs visibility into before it can report a match there (the hash key
	// width).
	Lookahead() int

	// SetNiceLen caps how hard FindAll keeps walking the hash chain once a
	// match at least this long has already been found (0: no cap, walk the
	// full maxChain depth). Quality levels below 10 use this to bail out of
	// the chain search early on a match that's already "nice enough" rather
	// than spending the remaining probe budget chasing a longer one.
	SetNiceLen(n int)
}

// hashChainFinder is the generic hash-chain matcher: one hash table keyed on
// the first hashBytes bytes at a position, chained through chainNext so
// repeated keys can be walked back through history up to maxChain hops.
// Grounded on the teacher's hcState/hcMatch3Table in compress_1x_999.go,
// generalized from a fixed 3-byte key and single best-match return to a
// configurable key width and (for wide mode) a full candidate list.
type hashChainFinder struct {
	hashBytes int
	maxChain  int
	wide      bool // true: H10 behavior, return every length milestone; false: H2-H9, return only the best
	niceLen   int  // 0: disabled

	table     []int32 // hash -> most recent position+1, 0 = empty
	chainNext []int32 // position -> previous position with the same hash, -1 = none
	hashBits  uint
}

func newHashChainFinder(hashBytes, maxChain int, wide bool, windowLen int) *hashChainFinder {
	bits := uint(16)
	switch {
	case hashBytes >= 5:
		bits = 20
	case hashBytes == 4:
		bits = 18
	}
	f := &hashChainFinder{
		hashBytes: hashBytes,
		maxChain:  maxChain,
		wide:      wide,
		hashBits:  bits,
		table:     make([]int32, 1<<bits),
		chainNext: make([]int32, windowLen),
	}
	for i := range f.chainNext {
		f.chainNext[i] = -1
	}
	return f
}

func (f *hashChainFinder) Lookahead() int { return f.hashBytes }

func (f *hashChainFinder) SetNiceLen(n int) { f.niceLen = n }

func (f *hashChainFinder) hashAt(data []byte, pos int) uint32 {
	var key uint64
	for i := 0; i < f.hashBytes; i++ {
		key = key<<8 | uint64(data[pos+i])
	}
	const prime = 0x9E3779B185EBCA87
	return uint32((key * prime) >> (64 - f.hashBits))
}

func (f *hashChainFinder) insert(data []byte, pos int) {
	if pos+f.hashBytes > len(data) {
		return
	}
	h := f.hashAt(data, pos)
	prev := f.table[h]
	f.table[h] = int32(pos + 1)
	if prev != 0 {
		f.chainNext[pos] = prev - 1
	} else {
		f.chainNext[pos] = -1
	}
}

func (f *hashChainFinder) StoreRange(data []byte, start, end int) {
	for p := start; p < end; p++ {
		f.insert(data, p)
	}
}

func (f *hashChainFinder) FindAll(data []byte, pos, maxBackward int) []Match {
	if pos+f.hashBytes > len(data) {
		f.insert(data, pos)
		return nil
	}
	h := f.hashAt(data, pos)
	cand := f.table[h]
	f.insert(data, pos)

	var best []Match
	bestLen := 0
	chain := 0
	for cand != 0 {
		node := int(cand) - 1
		if pos-node > maxBackward {
			break
		}
		matched := countEqualBytesSlice(data, node, pos, bestLen, len(data))
		if matched > bestLen && matched >= 2 {
			bestLen = matched
			if f.wide {
				best = append(best, Match{Distance: uint32(pos - node), Len: uint32(matched)})
			} else {
				best = []Match{{Distance: uint32(pos - node), Len: uint32(matched)}}
			}
			if f.niceLen > 0 && bestLen >= f.niceLen {
				break
			}
		}
		chain++
		if chain >= f.maxChain {
			break
		}
		next := f.chainNext[node]
		if next < 0 {
			break
		}
		cand = next + 1
	}
	return best
}

// countEqualBytesSlice extends an already-matched prefix between two
// positions in the same flat window, returning the new total match length.
// Ported from the teacher's countEqualBytes, adapted from the LZO ring
// buffer's fixed-guard-size comparison to a plain byte slice with an
// explicit limit.
func countEqualBytesSlice(data []byte, leftPos, rightPos, matched, limit int) int {
	for leftPos+matched+8 <= limit && rightPos+matched+8 <= limit {
		leftWord := *(*uint64)(unsafe.Pointer(&data[leftPos+matched]))
		rightWord := *(*uint64)(unsafe.Pointer(&data[rightPos+matched]))
		if leftWord == rightWord {
			matched += 8
			continue
		}
		diff := leftWord ^ rightWord
		matched += trailingZeroBytes(diff)
		return matched
	}
	for leftPos+matched < limit && rightPos+matched < limit && data[leftPos+matched] == data[rightPos+matched] {
		matched++
	}
	return matched
}

func trailingZeroBytes(x uint64) int {
	n := 0
	for x&0xff == 0 && n < 8 {
		x >>= 8
		n++
	}
	return n
}

// newMatchFinder constructs the hasher a quality level's params select.
func newMatchFinder(kind MatchFinderKind, maxChain, windowLen int) MatchFinder {
	switch kind {
	case H2:
		return newHashChainFinder(2, maxChain, false, windowLen)
	case H3:
		return newHashChainFinder(3, maxChain, false, windowLen)
	case H4:
		return newHashChainFinder(4, maxChain, false, windowLen)
	case H5, H6:
		return newHashChainFinder(4, maxChain, false, windowLen)
	case H7, H8, H9:
		return newHashChainFinder(5, maxChain, false, windowLen)
	case H10:
		return newHashChainFinder(5, maxChain, true, windowLen)
	default:
		return newHashChainFinder(4, maxChain, false, windowLen)
	}
}
