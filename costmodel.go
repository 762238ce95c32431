// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

package brzopfli

import "math"

const numCommandSymbols = 704 // BROTLI_NUM_COMMAND_SYMBOLS
const numDistanceSymbols = 520 // BROTLI_NUM_DISTANCE_SYMBOLS, generous upper bound

// costModel estimates, in bits, what each command and literal would cost to
// entropy-code if the window were encoded right now. The relaxation step
// (relax.go) uses it to compare candidate paths without ever building a real
// prefix code. Ported from the reference encoder's ZopfliCostModel, which is
// built one of two ways: a cheap order-1 literal estimate for the first
// zopfli pass (quality 10, or pass 1 of quality 11), or refit from the
// previous pass's own provisional commands (quality 11, pass 2+).
type costModel struct {
	costCmd  [numCommandSymbols]float32
	costDist [numDistanceSymbols]float32
	minCostCmd float32

	// literalCosts holds prefix sums: literalCosts[i] is the cumulative
	// estimated bit-cost of literals[0:i]. The cost of a literal run
	// [start,end) is literalCosts[end]-literalCosts[start].
	literalCosts []float32
}

// fastLog2 matches the reference encoder's FastLog2: log2(0) is defined as 0
// here since SetCost only ever calls it on frequencies it has already guarded
// against being zero, and on the histogram sum which is always >= 1 when any
// symbol appears at all.
func fastLog2(n uint32) float32 {
	if n == 0 {
		return 0
	}
	return float32(math.Log2(float64(n)))
}

// setCost fills cost from a frequency histogram using Shannon-bits-with-a-floor:
// symbols that never occurred get a flat penalty of log2(sum)+2 rather than
// infinite cost, since the DP may still need to consider them; every other
// symbol is floored at 1 bit so a single recurring symbol never looks free.
// Ported from the reference encoder's SetCost.
func setCost(histogram []uint32, cost []float32) {
	var sum uint32
	for _, h := range histogram {
		sum += h
	}
	log2sum := fastLog2(sum)
	for i, h := range histogram {
		if h == 0 {
			cost[i] = log2sum + 2
			continue
		}
		c := log2sum - fastLog2(h)
		if c < 1 {
			c = 1
		}
		cost[i] = c
	}
}

// newCostModelFromLiteralCosts builds the first-pass cost model: literal
// costs come from an order-1 byte-context estimator (literalcost.go stands in
// for the reference encoder's BrotliEstimateBitCostsForLiterals), and command
// costs use the closed-form approximation FastLog2(11+i) / FastLog2(20+i)
// rather than a histogram, since no commands have been chosen yet.
func newCostModelFromLiteralCosts(data []byte, position, maxBackward int) *costModel {
	m := &costModel{}
	for i := range m.costCmd {
		m.costCmd[i] = fastLog2(uint32(11 + i))
	}
	for i := range m.costDist {
		m.costDist[i] = fastLog2(uint32(20 + i))
	}
	m.minCostCmd = fastLog2(11)
	m.literalCosts = estimateLiteralCosts(data, position, maxBackward)
	return m
}

// newCostModelFromCommands refits the model from a previously chosen command
// list: literal and command/distance symbol frequencies are gathered into
// histograms and converted to costs via setCost, matching
// ZopfliCostModelSetFromCommands. Distance symbols are only counted for
// commands whose command code is >= 128, i.e. commands that actually carry a
// distance (cmdcode < 128 commands reuse the last distance implicitly).
func newCostModelFromCommands(data []byte, position, maxBackward int, commands []Command, lastInsertLen uint32) *costModel {
	m := &costModel{}

	var histCmd [numCommandSymbols]uint32
	var histDist [numDistanceSymbols]uint32
	literalHist := make([]uint32, 256)

	pos := position - int(lastInsertLen)
	for _, c := range commands {
		insCode := insertLengthCode(c.InsertLen)
		copyCode := copyLengthCode(c.CopyLen)
		useLast := c.DistanceCode < numDistanceShortCodes
		cmdcode := combineLengthCodes(insCode, copyCode, useLast && c.DistanceCode == 0)
		histCmd[cmdcode]++
		if cmdcode >= 128 {
			distSymbol, _ := encodeDistance(int(c.DistanceCode))
			idx := int(distSymbol)
			if idx >= len(histDist) {
				idx = len(histDist) - 1
			}
			histDist[idx]++
		}
		for i := 0; i < int(c.InsertLen); i++ {
			if pos+i >= 0 && pos+i < len(data) {
				literalHist[data[pos+i]]++
			}
		}
		pos += int(c.InsertLen) + int(c.CopyLen)
	}

	setCost(histCmd[:], m.costCmd[:])
	setCost(histDist[:], m.costDist[:])

	var costLiteral [256]float32
	setCost(literalHist, costLiteral[:])

	min := m.costCmd[0]
	for _, c := range m.costCmd {
		if c < min {
			min = c
		}
	}
	m.minCostCmd = min

	// Literal costs are indexed by each byte's own fitted cost and summed at
	// its absolute position, matching ZopfliCostModelSetFromCommands exactly
	// rather than approximating with one block-wide average.
	m.literalCosts = make([]float32, len(data)+1)
	for i, b := range data {
		m.literalCosts[i+1] = m.literalCosts[i] + costLiteral[b]
	}
	return m
}

// literalBitsBetween returns the estimated cost, in bits, of the literal run
// [from, to).
func (m *costModel) literalBitsBetween(from, to int) float32 {
	if from >= to {
		return 0
	}
	return m.literalCosts[to] - m.literalCosts[from]
}

func (m *costModel) commandCost(cmdcode uint16) float32 {
	return m.costCmd[cmdcode]
}

func (m *costModel) distanceCost(distSymbol uint16) float32 {
	if int(distSymbol) >= len(m.costDist) {
		return m.costDist[len(m.costDist)-1]
	}
	return m.costDist[distSymbol]
}
