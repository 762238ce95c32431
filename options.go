// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

package brzopfli

// MatchFinderKind selects which hasher variant CreateBackwardReferences uses
// to enumerate candidate matches. H2..H9 are single-candidate, greedy/lazy
// hashers used by quality levels 0..9; H10 is the multi-candidate hasher the
// zopflifying DP (quality 10/11) depends on.
type MatchFinderKind int

const (
	// autoMatchFinder is the zero value: "use whatever hasher the quality
	// level normally selects".
	autoMatchFinder MatchFinderKind = iota
	H2
	H3
	H4
	H5
	H6
	H7
	H8
	H9
	H10
)

// Options configures CreateBackwardReferences.
type Options struct {
	// Quality selects the encode effort, 0 (fastest) to 11 (best, fully
	// zopflifying DP). Quality <= 9 uses a greedy/lazy single pass; 10 uses
	// the DP with one literal-cost-model pass; 11 uses the DP with
	// ZopfliIterations total passes, refitting the cost model from the
	// previous pass's own provisional commands.
	Quality int

	// LgWin is the base-2 log of the maximum backward-reference distance
	// (window size), 10..24. Matches farther back than 1<<LgWin are never
	// considered.
	LgWin int

	// MatchFinder overrides the hasher variant CreateBackwardReferences picks
	// for the configured Quality. Zero value means "pick the variant the
	// quality level normally uses".
	MatchFinder MatchFinderKind

	// ZopfliIterations is the total number of DP passes at quality 11: the
	// first uses the literal-cost model, each later one a model refit from the
	// previous pass's commands. The reference encoder hard-codes two; this is exposed for callers
	// who want to trade CPU for a closer fixed point. Zero means "use the
	// default of 2".
	ZopfliIterations int
}

// DefaultOptions returns quality-11 options with a 22-bit (4 MiB) window and
// two zopfli iterations, matching the reference encoder's default "best"
// configuration.
func DefaultOptions() *Options {
	return &Options{
		Quality:          11,
		LgWin:            22,
		ZopfliIterations: 2,
	}
}

func (o *Options) maxBackwardDistance() int {
	return (1 << uint(o.LgWin)) - 16
}

func (o *Options) zopfliIterations() int {
	if o.ZopfliIterations <= 0 {
		return 2
	}
	return o.ZopfliIterations
}

func (o *Options) validate() error {
	if o.Quality < 0 || o.Quality > 11 {
		return ErrInvalidQuality
	}
	if o.LgWin < 10 || o.LgWin > 24 {
		return ErrInvalidWindowBits
	}
	return nil
}
