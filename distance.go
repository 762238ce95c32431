// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

package brzopfli

// numDistanceShortCodes is the number of "short" distance codes: the four
// rolling distance-cache slots plus twelve cheap +/-1..3 adjustments of
// cache slots 0 and 1, tried before falling back to encoding a distance raw.
const numDistanceShortCodes = 16

// distanceCacheIndex/distanceCacheOffset describe, for short codes 4..15,
// which cache slot to read and what small delta to apply before comparing
// against a candidate distance. Short codes 0..3 read cache slots 0..3
// directly (offset 0). Container-format collaborator table (RFC 7932 distance
// short codes); not present in the retrieved sources, reconstructed from the
// published format so the selector runs standalone.
var distanceCacheIndex = [numDistanceShortCodes]int{0, 1, 2, 3, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1}
var distanceCacheOffset = [numDistanceShortCodes]int{0, 0, 0, 0, -1, 1, -2, 2, -3, 3, -1, 1, -2, 2, -3, 3}

// distanceShortCodeLimits is the minimum raw distance each short code 4..15
// is allowed to represent (codes 0..3 have no floor).
var distanceShortCodeLimits = [numDistanceShortCodes]int{
	0, 0, 0, 0, 6, 6, 11, 11, 11, 11, 11, 11, 12, 12, 12, 12,
}

// computeDistanceCode finds the cheapest way to refer to distance given the
// rolling four-entry cache: shortCode 1..16 means "cache slot, adjusted",
// shortCode 0 means the distance must be encoded fresh. Ported from the
// reference encoder's ComputeDistanceCode, including its quality gate: the
// twelve adjusted-cache short codes (4..15) are only searched at quality > 3
// and distance >= 6, since below that the search cost isn't worth the rare
// hit.
func computeDistanceCode(distance, maxDistance, quality int, distCache [4]int) (distanceCode int, shortCode int) {
	if distance <= maxDistance {
		for i := 0; i < 4; i++ {
			if distance == distCache[i] {
				return i, i + 1
			}
		}
		if quality > 3 && distance >= 6 {
			for i := 4; i < numDistanceShortCodes; i++ {
				candidate := distCache[distanceCacheIndex[i]] + distanceCacheOffset[i]
				if distance == candidate && distance >= distanceShortCodeLimits[i] {
					return i, i + 1
				}
			}
		}
	}
	return distance + 15, 0
}

// encodeDistance computes the distance symbol and extra-bit count for a raw
// distance code, the num_direct_codes=0, postfix_bits=0 specialization of the
// reference encoder's PrefixEncodeCopyDistance (the only configuration this
// selector's relaxation step ever calls it with).
func encodeDistance(distanceCode int) (symbol uint16, extraBits uint32) {
	if distanceCode < numDistanceShortCodes {
		return uint16(distanceCode), 0
	}
	dist := 4 + (distanceCode - numDistanceShortCodes)
	bucket := log2FloorNonZero(uint32(dist)) - 1
	prefix := (uint32(dist) >> bucket) & 1
	nbits := bucket
	symbol = uint16(numDistanceShortCodes + (2*(nbits-1) + prefix))
	extraBits = nbits
	return symbol, extraBits
}
