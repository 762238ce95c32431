// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

package brzopfli

// estimateLiteralCosts stands in for the reference encoder's
// BrotliEstimateBitCostsForLiterals, an external collaborator the selector
// depends on but does not own. It returns prefix sums of a cheap order-1
// (previous-byte-conditioned) entropy estimate, smoothed with a Laplace-style
// +1 count so a byte never looks free just because its context is short.
// Good enough to drive the DP's literal-vs-copy tradeoff without a full
// static Huffman pass.
func estimateLiteralCosts(data []byte, position, maxBackward int) []float32 {
	n := len(data)
	prefix := make([]float32, n+1)
	if n == 0 {
		return prefix
	}

	// 256 contexts (previous byte), 256 symbols each, +1 smoothed.
	var counts [256][256]uint32
	var totals [256]uint32
	prevByte := byte(0)
	if position > 0 && position-1 < n {
		prevByte = data[position-1]
	}
	for _, b := range data {
		counts[prevByte][b]++
		totals[prevByte]++
		prevByte = b
	}

	prevByte = byte(0)
	if position > 0 && position-1 < n {
		prevByte = data[position-1]
	}
	for i, b := range data {
		total := totals[prevByte] + 256
		freq := counts[prevByte][b] + 1
		bits := fastLog2(total) - fastLog2(freq)
		if bits < 1 {
			bits = 1
		}
		prefix[i+1] = prefix[i] + bits
		prevByte = b
	}
	return prefix
}
