// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

package brzopfli

// qualityParams holds the internal per-quality tuning knobs: how hard the
// match finder searches, whether lazy matching is used on the greedy path,
// and the longest match length the zopflifying DP will trust without
// re-verifying every length between min and max.
type qualityParams struct {
	hasher       MatchFinderKind
	maxChain     int  // hash-chain probe depth
	niceLen      int  // greedy path: stop searching once a match this long is found
	lazyMatching bool // greedy path: try the next position before committing
	useDP        bool // quality 10/11: zopflifying shortest-path DP
	maxZopfliLen int  // DP path: longest length tried exhaustively per candidate
}

// fixedQualities mirrors the teacher's fixedLevels table shape, one row per
// quality level 0..11. kMaxZopfliLenQuality10 (150) and
// kMaxZopfliLenQuality11 (325) come from the reference encoder.
var fixedQualities = [12]qualityParams{
	{hasher: H2, maxChain: 4, niceLen: 8, lazyMatching: false},
	{hasher: H2, maxChain: 8, niceLen: 16, lazyMatching: false},
	{hasher: H3, maxChain: 16, niceLen: 32, lazyMatching: false},
	{hasher: H4, maxChain: 16, niceLen: 16, lazyMatching: true},
	{hasher: H5, maxChain: 32, niceLen: 32, lazyMatching: true},
	{hasher: H5, maxChain: 128, niceLen: 32, lazyMatching: true},
	{hasher: H6, maxChain: 256, niceLen: 128, lazyMatching: true},
	{hasher: H7, maxChain: 512, niceLen: 128, lazyMatching: true},
	{hasher: H8, maxChain: 1024, niceLen: 128, lazyMatching: true},
	{hasher: H9, maxChain: 2048, niceLen: 256, lazyMatching: true},
	{hasher: H10, maxChain: 2048, useDP: true, maxZopfliLen: 150},
	{hasher: H10, maxChain: 4096, useDP: true, maxZopfliLen: 325},
}

func paramsForQuality(o *Options) qualityParams {
	p := fixedQualities[o.Quality]
	if o.MatchFinder != autoMatchFinder {
		p.hasher = o.MatchFinder
	}
	return p
}

func maxZopfliLenForQuality(quality int) int {
	if quality <= 10 {
		return 150
	}
	return 325
}
