// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

package brzopfli

// computeMinimumCopyLength finds the shortest copy length at pos that could
// possibly beat every node already relaxed beyond it, so the relaxation step
// can skip trying lengths that can never win. Ported from the reference
// encoder's ComputeMinimumCopyLength: it walks forward from length 2,
// widening the margin it allows by one bit at doubling-sized buckets (the
// same shape the container's own copy-length code buckets use), and skipping
// every length whose target node is already no more expensive than this
// floor; it returns the first length whose target node costs more.
func computeMinimumCopyLength(queue *startPosQueue, nodes []node, model *costModel, numBytes, pos int) int {
	start0 := queue.at(0).pos
	minCost := float64(nodes[start0].cost) + float64(model.literalBitsBetween(start0, pos)) + float64(model.minCostCmd)

	length := 2
	nextLenBucket := 4
	nextLenOffset := 10
	for pos+length <= numBytes && float64(nodes[pos+length].cost) <= minCost {
		length++
		if length == nextLenOffset {
			minCost += 1.0
			nextLenOffset += nextLenBucket
			nextLenBucket *= 2
		}
	}
	return length
}

// maxIterationsForQuality bounds how many of the queue's cheapest start
// positions the relaxation step tries per call to updateNodes: quality <= 10
// only ever looks at the single cheapest, quality 11 looks at up to five.
func maxIterationsForQuality(quality int) int {
	if quality <= 10 {
		return 1
	}
	return 5
}

// updateNodes is the relaxation step: given the cheapest-so-far arrivals up
// through pos, and a MatchFinder-reported candidate list for pos, it tries to
// find cheaper arrivals at pos+1..pos+maxLen and records the best one found
// in nodes. It admits pos itself as a new start-position candidate, probes
// the rolling distance cache (cheap, tried for every queued start up to
// maxIterationsForQuality), and, only for the two cheapest queued starts,
// probes fresh distances from matches. An arrival is recorded only if it
// costs no more than a pure literal run from the window start to its target.
//
// Ported from the reference encoder's UpdateNodes, including its asymmetry
// between cache-hit and fresh-distance probing: cache hits are checked for
// every recent start position because they're nearly free to test, but a
// fresh distance is only worth the cost-model lookup for the cheapest couple
// of predecessors, since by construction they're the likeliest to win.
func updateNodes(
	data []byte,
	numBytes, pos, blockStart, maxBackward int,
	startingDistCache [4]int,
	matches []Match,
	modelInput *costModel,
	queue *startPosQueue,
	quality int,
	nodes []node,
) {
	curIx := blockStart + pos
	maxDistance := minInt(curIx, maxBackward)

	// Admit pos as a new candidate start position if the cheapest path found
	// to it costs no more than a pure literal run from the window start. The
	// distance cache snapshot is what the chosen path to pos
	// would leave behind, needed by the short-distance probe below for any
	// future position that picks pos as its start.
	if nodes[pos].cost <= modelInput.literalBitsBetween(0, pos) {
		queue.push(posData{
			pos:           pos,
			costDiff:      nodes[pos].cost - modelInput.literalBitsBetween(0, pos),
			distanceCache: computeDistanceCache(blockStart, pos, maxBackward, startingDistCache, nodes),
		})
	}

	minLen := computeMinimumCopyLength(queue, nodes, modelInput, numBytes, pos)
	maxIters := maxIterationsForQuality(quality)

	numQueued := queue.size()
	for k := 0; k < numQueued && k < maxIters; k++ {
		pd := queue.at(k)
		start := pd.pos
		inscode := insertLengthCode(uint32(pos - start))
		baseCost := float64(nodes[start].cost) + float64(modelInput.literalBitsBetween(start, pos)) + float64(getInsertExtra(inscode))

		bestLen := minLen - 1
		maxLen := numBytes - pos
		for j := 0; j < numDistanceShortCodes && bestLen < maxLen; j++ {
			backward := pd.distanceCache[distanceCacheIndex[j]] + distanceCacheOffset[j]
			prevIx := curIx - backward
			if prevIx >= curIx || prevIx < 0 {
				continue
			}
			if backward > maxDistance {
				continue
			}
			l := matchLengthAt(data, curIx, prevIx, maxLen)
			if l < minLen {
				continue
			}
			distCost := baseCost + float64(modelInput.distanceCost(uint16(j)))
			for ; bestLen < l; bestLen++ {
				ll := bestLen + 1
				copycode := copyLengthCode(uint32(ll))
				cmdcode := combineLengthCodes(inscode, copycode, j == 0)
				cost := float32(baseCost) + float32(getCopyExtra(copycode)) + modelInput.commandCost(cmdcode)
				if cmdcode >= 128 {
					cost = float32(distCost) + float32(getCopyExtra(copycode)) + modelInput.commandCost(cmdcode)
				}
				if cost < nodes[pos+ll].cost && cost <= modelInput.literalBitsBetween(0, pos+ll) {
					updateNode(nodes, pos+ll, start, uint32(ll), uint32(ll), uint32(backward), uint32(j+1), cost)
				}
			}
		}

		if k >= 2 {
			continue
		}

		length := minLen
		for j := 0; j < len(matches); j++ {
			m := matches[j]
			dist := int(m.Distance)
			isDictionary := dist > maxDistance
			distCode := dist + 15
			distSymbol, distExtra := encodeDistance(distCode)
			distCost := baseCost + float64(distExtra) + float64(modelInput.distanceCost(distSymbol))

			maxMatchLen := int(m.Len)
			if length > maxMatchLen {
				continue
			}
			zMax := maxZopfliLenForQuality(quality)
			if isDictionary || maxMatchLen > zMax {
				length = maxMatchLen
			}
			for ; length <= maxMatchLen; length++ {
				lenCode := length
				if isDictionary {
					lenCode = dictionaryLengthCode(length)
				}
				copycode := copyLengthCode(uint32(lenCode))
				cmdcode := combineLengthCodes(inscode, copycode, false)
				cost := float32(distCost) + float32(getCopyExtra(copycode)) + modelInput.commandCost(cmdcode)
				if cost < nodes[pos+length].cost && cost <= modelInput.literalBitsBetween(0, pos+length) {
					updateNode(nodes, pos+length, start, uint32(length), uint32(lenCode), uint32(dist), 0, cost)
				}
			}
		}
	}
}

// matchLengthAt reports how many bytes starting at curIx match the bytes
// starting at prevIx within the same flat window, capped at maxLen bytes.
// Shares the word-at-a-time comparator the hash-chain MatchFinder uses
// (matchfinder.go's countEqualBytesSlice) since both are extending a run of
// equal bytes within one contiguous slice.
func matchLengthAt(data []byte, curIx, prevIx, maxLen int) int {
	limit := curIx + maxLen
	if limit > len(data) {
		limit = len(data)
	}
	return countEqualBytesSlice(data, prevIx, curIx, 0, limit)
}

func dictionaryLengthCode(length int) int {
	return length
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
