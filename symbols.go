// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

package brzopfli

// Insert-length and copy-length code tables: the container's prefix-code
// alphabet groups run lengths into 24 buckets each, a base value plus some
// number of raw extra bits. These tables are a collaborator the selector
// depends on (to know how many extra bits a length candidate costs) but does
// not own; kept here as a small, internally consistent stand-in so the
// package is runnable standalone.
const numLengthCodes = 24

var insertLengthBase = [numLengthCodes]uint32{
	0, 1, 2, 3, 4, 5, 6, 8, 10, 14, 18, 26,
	34, 50, 66, 98, 130, 194, 322, 578, 1090, 2114, 6210, 22594,
}

var insertLengthExtraBits = [numLengthCodes]uint8{
	0, 0, 0, 0, 0, 0, 1, 1, 2, 2, 3, 3,
	4, 4, 5, 5, 6, 7, 8, 9, 10, 12, 14, 24,
}

var copyLengthBase = [numLengthCodes]uint32{
	2, 3, 4, 5, 6, 7, 8, 9, 10, 12, 14, 18,
	22, 30, 38, 54, 70, 102, 134, 198, 326, 582, 1094, 2118,
}

var copyLengthExtraBits = [numLengthCodes]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 2, 2,
	3, 3, 4, 4, 5, 5, 6, 7, 8, 9, 10, 24,
}

// insertLengthCode maps a literal run length to its 24-symbol code.
func insertLengthCode(insertLen uint32) uint16 {
	if insertLen < 6 {
		return uint16(insertLen)
	} else if insertLen < 130 {
		nbits := log2FloorNonZero(insertLen-2) - 1
		return uint16((nbits<<1)+uint32((insertLen-2)>>uint(nbits))+2)
	} else if insertLen < 2114 {
		return uint16(log2FloorNonZero(insertLen-66) + 10)
	} else if insertLen < 6210 {
		return 21
	} else if insertLen < 22594 {
		return 22
	}
	return 23
}

// copyLengthCode maps a copy length to its 24-symbol code.
func copyLengthCode(copyLen uint32) uint16 {
	if copyLen < 10 {
		return uint16(copyLen - 2)
	} else if copyLen < 134 {
		nbits := log2FloorNonZero(copyLen-6) - 1
		return uint16((nbits<<1)+uint32((copyLen-6)>>uint(nbits))+4)
	} else if copyLen < 2118 {
		return uint16(log2FloorNonZero(copyLen-70) + 12)
	}
	return 23
}

func log2FloorNonZero(n uint32) uint32 {
	var result uint32
	for n > 1 {
		n >>= 1
		result++
	}
	return result
}

// getInsertExtra and getCopyExtra report the number of raw extra bits a code
// carries; GetCopyExtra in the reference encoder.
func getInsertExtra(code uint16) uint32 {
	return uint32(insertLengthExtraBits[code])
}

func getCopyExtra(code uint16) uint32 {
	return uint32(copyLengthExtraBits[code])
}

// combineLengthCodes packs an insert-code/copy-code pair (and whether this
// command reuses the last distance) into the single command code (0..703) the
// cost model's cost_cmd_ table is indexed by. Ported from the reference
// encoder's CombineLengthCodes bit-twiddling (command.cc), which exploits a
// 9-entry lookup folded into one integer literal (0x520d40) rather than a
// table.
func combineLengthCodes(inscode, copycode uint16, useLastDistance bool) uint16 {
	bits64 := (copycode & 7) | ((inscode & 7) << 3)
	if useLastDistance && inscode < 8 && copycode < 16 {
		if copycode < 8 {
			return bits64
		}
		return bits64 | 64
	}
	offset := 2 * (uint32(copycode>>3) + 3*uint32(inscode>>3))
	offset = (offset << 5) + 0x40 + ((0x520d40 >> offset) & 0xc0)
	return uint16(offset) | bits64
}
