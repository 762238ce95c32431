// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

package brzopfli

import "testing"

func TestHashChainFinderFindsRepeatedSubstring(t *testing.T) {
	data := []byte("abcdefgh abcdefgh")
	f := newHashChainFinder(4, 32, false, len(data))

	for pos := 0; pos < len(data); pos++ {
		maxBackward := pos
		matches := f.FindAll(data, pos, maxBackward)
		if pos == 9 {
			if len(matches) == 0 {
				t.Fatalf("pos %d: expected a match against the earlier 'abcdefgh'", pos)
			}
			best := matches[len(matches)-1]
			if best.Distance != 9 {
				t.Fatalf("pos %d: best.Distance = %d, want 9", pos, best.Distance)
			}
			if best.Len < 2 {
				t.Fatalf("pos %d: best.Len = %d, want >= 2", pos, best.Len)
			}
		}
	}
}

func TestHashChainFinderWideModeReturnsAscendingLengths(t *testing.T) {
	data := []byte("xyzxyzxyz0123456789 xyzxyzxyz0123456789")
	f := newHashChainFinder(5, 64, true, len(data))
	for pos := 0; pos < 20; pos++ {
		f.FindAll(data, pos, pos)
	}
	found := f.FindAll(data, 20, 20)
	for i := 1; i < len(found); i++ {
		if found[i].Len <= found[i-1].Len {
			t.Fatalf("wide-mode matches not ascending by length: %v", found)
		}
	}
}

func TestHashChainFinderRespectsMaxBackward(t *testing.T) {
	data := []byte("aaaaaaaaaaaaaaaaaaaa")
	f := newHashChainFinder(2, 32, false, len(data))
	for pos := 0; pos < 10; pos++ {
		f.FindAll(data, pos, pos)
	}
	matches := f.FindAll(data, 10, 3)
	for _, m := range matches {
		if m.Distance > 3 {
			t.Fatalf("match distance %d exceeds maxBackward 3", m.Distance)
		}
	}
}

func TestHashChainFinderRejectsTooShortTail(t *testing.T) {
	data := []byte("ab")
	f := newHashChainFinder(4, 8, false, len(data))
	matches := f.FindAll(data, 0, 0)
	if matches != nil {
		t.Fatalf("expected no matches for a tail shorter than hashBytes, got %v", matches)
	}
}

func TestCountEqualBytesSliceCountsAcrossWordBoundary(t *testing.T) {
	data := make([]byte, 40)
	for i := range data {
		data[i] = byte(i % 7)
	}
	copy(data[20:], data[0:20])
	got := countEqualBytesSlice(data, 0, 20, 0, 40)
	if got != 20 {
		t.Fatalf("countEqualBytesSlice = %d, want 20", got)
	}
}

func TestCountEqualBytesSliceStopsAtMismatch(t *testing.T) {
	data := []byte("abcdefghXXXXXXXXabcdefghZZZZZZZZ")
	got := countEqualBytesSlice(data, 0, 16, 0, len(data))
	if got != 8 {
		t.Fatalf("countEqualBytesSlice = %d, want 8", got)
	}
}

// TestHashChainFinderNiceLenStopsChainEarly builds a window with two
// candidates sharing a hash key: a near one (distance 20) matching only 3
// bytes, and a far one (distance 35) matching 9. The near candidate is
// walked first (most recently inserted). With niceLen disabled the chain
// walk continues and the longer, farther match wins; with niceLen set to 3
// the walk must stop right after the near candidate satisfies it, so the
// farther, genuinely longer match is never found.
func TestHashChainFinderNiceLenStopsChainEarly(t *testing.T) {
	data := make([]byte, 50)
	for i := range data {
		data[i] = 'Z'
	}
	data[5], data[6] = 'a', 'a'
	data[20], data[21] = 'a', 'a'
	data[40], data[41] = 'a', 'a'
	for i := 7; i <= 13; i++ {
		data[i] = 'M'
	}
	for i := 42; i <= 48; i++ {
		data[i] = 'M'
	}
	data[22] = 'M'
	data[14], data[49] = 'P', 'Q'

	newPrimed := func(niceLen int) *hashChainFinder {
		f := newHashChainFinder(2, 32, false, len(data))
		f.SetNiceLen(niceLen)
		f.StoreRange(data, 0, 40)
		return f
	}

	full := newPrimed(0).FindAll(data, 40, 40)
	if len(full) == 0 || full[len(full)-1].Len != 9 || full[len(full)-1].Distance != 35 {
		t.Fatalf("niceLen=0: got %v, want a len-9 match at distance 35", full)
	}

	capped := newPrimed(3).FindAll(data, 40, 40)
	if len(capped) == 0 || capped[len(capped)-1].Len != 3 || capped[len(capped)-1].Distance != 20 {
		t.Fatalf("niceLen=3: got %v, want the chain to stop at the len-3 match at distance 20", capped)
	}
}

func TestNewMatchFinderSelectsWideModeOnlyForH10(t *testing.T) {
	f := newMatchFinder(H10, 32, 64)
	hc, ok := f.(*hashChainFinder)
	if !ok || !hc.wide {
		t.Fatalf("H10 finder must be a wide hashChainFinder")
	}
	f2 := newMatchFinder(H4, 32, 64)
	hc2, ok := f2.(*hashChainFinder)
	if !ok || hc2.wide {
		t.Fatalf("H4 finder must not be wide")
	}
}
