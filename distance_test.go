// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

package brzopfli

import "testing"

func TestComputeDistanceCodeCacheHits(t *testing.T) {
	cache := [4]int{16, 15, 11, 4}
	for i, want := range cache {
		code, short := computeDistanceCode(want, 1<<20, 11, cache)
		if code != i {
			t.Fatalf("cache slot %d: code = %d, want %d", i, code, i)
		}
		if short != i+1 {
			t.Fatalf("cache slot %d: shortCode = %d, want %d", i, short, i+1)
		}
	}
}

func TestComputeDistanceCodeFreshDistance(t *testing.T) {
	cache := [4]int{16, 15, 11, 4}
	code, short := computeDistanceCode(1000, 1<<20, 11, cache)
	if short != 0 {
		t.Fatalf("shortCode = %d, want 0 for a distance not in the cache", short)
	}
	if code != 1015 {
		t.Fatalf("code = %d, want 1015 (1000+15)", code)
	}
}

func TestComputeDistanceCodeQualityGatesShortCodeSearch(t *testing.T) {
	cache := [4]int{16, 15, 11, 4}
	// Short code 4 is cache[0]-1 = 15, which collides with cache[1]'s exact
	// value; use a distance only reachable via the perturbed slots, e.g.
	// cache[0]+1 = 17.
	code, short := computeDistanceCode(17, 1<<20, 11, cache)
	if short == 0 {
		t.Fatalf("quality 11: distance 17 should resolve to a perturbed short code, got fresh")
	}
	if code < 4 || code >= numDistanceShortCodes {
		t.Fatalf("code = %d, want a perturbed short code index in [4,16)", code)
	}

	// At quality <= 3 the perturbed slots (4..15) are never searched.
	lowQCode, lowQShort := computeDistanceCode(17, 1<<20, 3, cache)
	if lowQShort != 0 {
		t.Fatalf("quality 3: shortCode = %d, want 0 (perturbed slots not searched)", lowQShort)
	}
	if lowQCode != 32 { // 17 + 15
		t.Fatalf("quality 3: code = %d, want 32", lowQCode)
	}
}

func TestComputeDistanceCodeBeyondMaxDistanceIsFresh(t *testing.T) {
	cache := [4]int{16, 15, 11, 4}
	code, short := computeDistanceCode(16, 10, 11, cache)
	if short != 0 {
		t.Fatalf("distance beyond maxDistance should never resolve to a cache slot, got shortCode=%d", short)
	}
	if code != 31 {
		t.Fatalf("code = %d, want 31 (16+15)", code)
	}
}

func TestEncodeDistanceShortCodesHaveNoExtraBits(t *testing.T) {
	for i := 0; i < numDistanceShortCodes; i++ {
		symbol, extra := encodeDistance(i)
		if symbol != uint16(i) {
			t.Fatalf("short code %d: symbol = %d, want %d", i, symbol, i)
		}
		if extra != 0 {
			t.Fatalf("short code %d: extraBits = %d, want 0", i, extra)
		}
	}
}

func TestEncodeDistanceMonotoneExtraBits(t *testing.T) {
	_, e1 := encodeDistance(16 + 4)   // dist = 8
	_, e2 := encodeDistance(16 + 100) // dist = 104
	if e2 < e1 {
		t.Fatalf("extra bits should grow with distance: e1=%d e2=%d", e1, e2)
	}
}
