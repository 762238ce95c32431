// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

package brzopfli

// createBackwardReferencesGreedy implements the non-DP quality <= 9 path: a
// single forward scan over the window using a single-candidate MatchFinder
// (H2..H9), optionally lazy (checking whether waiting one more byte turns up
// a strictly longer match before committing to the one found at pos).
//
// This is the rewrite spec.md §1 calls out as out of its own scope but in
// SPEC_FULL.md's ("the fast (non-optimizing) quality levels, which are
// rewrites of the same interface without the DP"): no shortest-path search,
// no cost model, no distance-cache short-code search beyond what
// computeDistanceCode does (cache slots always, adjusted slots at
// quality > 3). Grounded on
// the teacher's hcCompressorDict.advance lazy-match control flow
// (compress_1x_999.go): "try the match at pos, but if looking one byte ahead
// finds something longer, emit pos as a literal and let the longer match win
// next iteration" is the same shape, rebuilt here to produce brzopfli
// Commands instead of LZO's own bit-stream encoding.
func createBackwardReferencesGreedy(
	data []byte,
	finder MatchFinder,
	maxBackwardLimit int,
	lazy bool,
	quality int,
	distCache *[4]int,
	lastInsertLen *uint32,
) ([]Command, int) {
	numBytes := len(data)
	lookahead := finder.Lookahead()
	var commands []Command
	numLiterals := 0
	pos := 0
	lastEmit := 0
	var pending []Match

	for pos+lookahead <= numBytes {
		var matches []Match
		if pending != nil {
			matches, pending = pending, nil
		} else {
			maxDistance := minInt(pos, maxBackwardLimit)
			matches = finder.FindAll(data, pos, maxDistance)
		}
		if len(matches) == 0 {
			pos++
			continue
		}
		best := matches[len(matches)-1]

		if lazy && pos+1+lookahead <= numBytes {
			nextMaxDistance := minInt(pos+1, maxBackwardLimit)
			next := finder.FindAll(data, pos+1, nextMaxDistance)
			if len(next) > 0 && next[len(next)-1].Len > best.Len {
				// pos+1 already consumed by FindAll above (hash-chain finders
				// insert unconditionally); treat pos as a literal and let the
				// longer match at pos+1 win on the next iteration.
				pending = next
				pos++
				continue
			}
		}

		insertLen := uint32(pos - lastEmit)
		if len(commands) == 0 {
			insertLen += *lastInsertLen
			*lastInsertLen = 0
		}

		copyLen := best.Len
		dist := int(best.Distance)
		distCode, _ := computeDistanceCode(dist, maxBackwardLimit, quality, *distCache)
		_, distExtra := encodeDistance(distCode)

		commands = append(commands, Command{
			InsertLen:     insertLen,
			CopyLen:       copyLen,
			CopyLenCode:   copyLen,
			DistanceCode:  uint32(distCode),
			DistanceExtra: distExtra,
		})
		numLiterals += int(insertLen)

		if distCode > 0 {
			distCache[3] = distCache[2]
			distCache[2] = distCache[1]
			distCache[1] = distCache[0]
			distCache[0] = dist
		}

		end := pos + int(copyLen)
		if end > numBytes {
			end = numBytes
		}
		finder.StoreRange(data, pos+1, end)
		pos += int(copyLen)
		lastEmit = pos
	}

	tail := uint32(numBytes - lastEmit)
	if len(commands) == 0 {
		tail += *lastInsertLen
		*lastInsertLen = 0
	}
	*lastInsertLen += tail
	return commands, numLiterals
}
