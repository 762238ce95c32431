// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

package brzopfli

import "fmt"

// decodeCommands is a minimal conforming decoder used only by tests to
// verify the round-trip property (spec.md §8 property 2): brzopfli itself
// never writes or reads a bit-stream (§1 Non-goals), so a real decoder has
// no home in the package proper. original is the full source window a
// correct command list was chosen against; literal runs are read from it at
// the position already reconstructed (len(out)), since a valid command
// stream reconstructs original byte-for-byte. It resolves short distance
// codes against a shadow copy of the rolling distance cache the same way
// createCommands maintains the real one.
func decodeCommands(commands []Command, startDistCache [4]int, original []byte) ([]byte, error) {
	distCache := startDistCache
	var out []byte

	for _, c := range commands {
		srcPos := len(out)
		if srcPos+int(c.InsertLen) > len(original) {
			return nil, fmt.Errorf("decodeCommands: literal run exceeds source at %d", srcPos)
		}
		out = append(out, original[srcPos:srcPos+int(c.InsertLen)]...)

		if c.CopyLen == 0 {
			continue
		}

		var dist int
		if c.DistanceCode < numDistanceShortCodes {
			idx := int(c.DistanceCode)
			dist = distCache[distanceCacheIndex[idx]] + distanceCacheOffset[idx]
		} else {
			dist = int(c.DistanceCode) - 15
		}
		if dist <= 0 || dist > len(out) {
			return nil, fmt.Errorf("decodeCommands: distance %d out of range at output length %d", dist, len(out))
		}

		start := len(out) - dist
		for i := 0; i < int(c.CopyLen); i++ {
			out = append(out, out[start+i])
		}

		if c.DistanceCode > 0 {
			distCache[3] = distCache[2]
			distCache[2] = distCache[1]
			distCache[1] = distCache[0]
			distCache[0] = dist
		}
	}
	return out, nil
}
