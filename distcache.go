// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

package brzopfli

// computeDistanceCache reconstructs what the rolling four-entry distance
// cache would look like at position pos, by walking the chosen path
// backward from pos one arriving command at a time (each node's insert plus
// copy length) and collecting up to four "qualifying" distances: ones from
// commands whose distance code is not 0 (not a reuse of the last distance),
// stayed within maxBackward, and did not reach before the start of the data. Needed because the DP only ever stores the node array, not a
// cache snapshot per position; ported from the reference encoder's
// ComputeDistanceCache.
func computeDistanceCache(blockStart, pos, maxBackward int, startingDistCache [4]int, nodes []node) [4]int {
	var result [4]int
	idx := 0
	p := pos
	for idx < 4 && p > 0 {
		n := nodes[p]
		clen := int(n.copyLength())
		dist := int(n.copyDistance())
		distCode := n.distanceCode()
		cmdLen := int(n.commandLength())
		startOfCommand := p - cmdLen

		if distCode != 0 && dist <= maxBackward && dist+clen <= blockStart+p {
			result[idx] = dist
			idx++
		}
		p = startOfCommand
	}
	for i := idx; i < 4; i++ {
		result[i] = startingDistCache[i-idx]
	}
	return result
}
