// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

package brzopfli

// Command is one selected backward-reference command: copy InsertLen literal
// bytes from the input, then copy CopyLen bytes from the position the
// container distance code DistanceCode names. DistanceCode 0..15 names one
// of the sixteen short codes (a distance-cache slot, possibly perturbed);
// 16 and above encodes a raw distance (DistanceCode - 15).
type Command struct {
	InsertLen     uint32
	CopyLen       uint32
	CopyLenCode   uint32 // length code, differs from CopyLen only for dictionary matches
	DistanceCode  uint32 // raw container distance code, see distance.go
	DistanceExtra uint32
}

// commandLength is the total number of input bytes this command consumes:
// the literal run plus the copy.
func (c Command) commandLength() uint32 {
	return c.InsertLen + c.CopyLen
}

// Match is one backward-reference candidate reported by a MatchFinder:
// "copying Len bytes from Distance bytes back is possible". A MatchFinder
// reports these ascending by Len with non-decreasing Distance, the shape the
// relaxation step in relax.go depends on to prune its search (see
// MatchFinder's doc comment).
type Match struct {
	Distance uint32
	Len      uint32
}
