// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

package brzopfli

import "math"

// infCost marks a node the shortest-path frontier has not reached yet.
const infCost = math.MaxFloat32

// node is one arrival record in the shortest-path DP: the cheapest way found
// so far to reach this input position, and enough packed state to both
// backtrace the chosen command and reconstruct the rolling distance cache
// without storing either explicitly. Mirrors the reference encoder's
// ZopfliNode, which packs length/length-code and distance/short-code into
// single words to keep the node array cache-small; Go has no bitfields, so
// this keeps the packing but in two explicit uint32 fields per kind instead
// of one each, trading a few bytes for clarity.
type node struct {
	// cost is the minimum predicted bit-cost of any path from the window
	// start to this position. infCost until relaxed.
	cost float32

	// length is the copy length of the command arriving here (0 at the
	// start-of-window sentinel node and for nodes only ever used as a literal
	// insert continuation).
	length uint32

	// lengthCodeDelta is lengthCode's distance from length + 9; stored as a
	// delta, matching the reference encoder's (length+9-length_code) packing,
	// so a delta of 9 means the length code equals the length.
	lengthCodeDelta uint32

	// distance is the raw copy distance of the command arriving here.
	distance uint32

	// shortCode is 0 if distance was encoded fresh, or 1+the short code index
	// (0..15) if it came from the rolling distance cache (see
	// computeDistanceCode).
	shortCode uint32

	// insertLength is the literal run length immediately preceding this
	// node's copy, i.e. the gap from startPos to the start of the copy.
	insertLength uint32

	// next is the forward chain link: the length of the command that leaves
	// this position on the chosen path, or endOfPath at the last node. Set
	// only during the shortest-path backward trace.
	next uint32
}

func newNodes(numBytes int) []node {
	nodes := make([]node, numBytes+1)
	for i := range nodes {
		nodes[i].cost = infCost
	}
	nodes[0].cost = 0
	return nodes
}

// copyLength is the copy length of the command arriving at this node.
func (n node) copyLength() uint32 { return n.length }

// lengthCode is the container length-code symbol for this node's command,
// which can differ from copyLength() for dictionary matches.
func (n node) lengthCode() uint32 {
	return n.length + 9 - n.lengthCodeDelta
}

// copyDistance is the raw backward distance of the command arriving here.
func (n node) copyDistance() uint32 { return n.distance }

// distanceCode reports the container distance code: either the short code
// (distance-cache hit) or distance+15 for a fresh encode.
func (n node) distanceCode() uint32 {
	if n.shortCode == 0 {
		return n.distance + 15
	}
	return n.shortCode - 1
}

// commandLength is the number of input bytes the command arriving at this
// node consumes: its insert plus its copy.
func (n node) commandLength() uint32 {
	return n.insertLength + n.length
}

// updateNode records a new, cheaper arrival at nodes[pos]: a command of length l
// (encoded as length code lenCode) and distance dist (encoded via shortCode,
// 0 for fresh) starting at startPos, with total path cost newCost. pos is the
// arrival index (startPos + insert-length + l), not the relaxing position the
// command was considered from, so the insert length is what's left of the gap
// after removing the copy itself.
func updateNode(nodes []node, pos, startPos int, l, lenCode uint32, dist uint32, shortCode uint32, newCost float32) {
	n := &nodes[pos]
	n.length = l
	n.lengthCodeDelta = l + 9 - lenCode
	n.distance = dist
	n.shortCode = shortCode
	n.insertLength = uint32(pos-startPos) - l
	n.cost = newCost
}
