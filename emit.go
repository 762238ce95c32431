// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

package brzopfli

// endOfPath marks the terminal node.next value once the backtrace reaches
// the window end: BROTLI_UINT32_MAX in the reference encoder.
const endOfPath = ^uint32(0)

// computeShortestPathFromNodes walks the finished node array backward from
// the last reachable position, turning each node's packed state into a
// forward-linked chain of "next" offsets starting at nodes[0]. Ported from
// ComputeShortestPathFromNodes. Returns the number of commands on the chosen
// path.
//
// Nodes are only reached by copies, so nodes[numBytes] is often unreached;
// the walk then starts from the largest reached index, and the bytes after
// it are left for createCommands to fold into lastInsertLen. nodes[0] is
// always reached, so ErrNoReach is returned only if even it has infinite
// cost.
func computeShortestPathFromNodes(numBytes int, nodes []node) (int, error) {
	index := numBytes
	for nodes[index].cost == infCost {
		if index == 0 {
			return 0, ErrNoReach
		}
		index--
	}
	nodes[index].next = endOfPath

	numCommands := 0
	for index != 0 {
		length := int(nodes[index].commandLength())
		if length <= 0 || length > index {
			return 0, ErrInvariantViolation
		}
		index -= length
		nodes[index].next = uint32(length)
		numCommands++
	}
	return numCommands, nil
}

// createCommands walks the next-offset chain built by
// computeShortestPathFromNodes, turning it into the external Command list
// while mutating the caller's persistent distance cache and lastInsertLen in
// place. Ported from BrotliZopfliCreateCommands.
func createCommands(numBytes, blockStart, maxBackwardLimit int, nodes []node, distCache *[4]int, lastInsertLen *uint32) ([]Command, int) {
	var commands []Command
	numLiterals := 0
	pos := 0
	offset := nodes[0].next

	for i := 0; offset != endOfPath; i++ {
		next := nodes[pos+int(offset)]
		copyLength := next.copyLength()
		insertLength := next.insertLength
		pos += int(insertLength)
		offset = next.next

		if i == 0 {
			insertLength += *lastInsertLen
			*lastInsertLen = 0
		}

		distance := next.copyDistance()
		lenCode := next.lengthCode()
		maxDistance := minInt(blockStart+pos, maxBackwardLimit)
		isDictionary := int(distance) > maxDistance
		distCode := next.distanceCode()
		_, distExtra := encodeDistance(int(distCode))

		commands = append(commands, Command{
			InsertLen:     insertLength,
			CopyLen:       copyLength,
			CopyLenCode:   lenCode,
			DistanceCode:  distCode,
			DistanceExtra: distExtra,
		})

		if !isDictionary && distCode > 0 {
			distCache[3] = distCache[2]
			distCache[2] = distCache[1]
			distCache[1] = distCache[0]
			distCache[0] = int(distance)
		}

		numLiterals += int(insertLength)
		pos += int(copyLength)
	}

	*lastInsertLen += uint32(numBytes - pos)
	return commands, numLiterals
}
