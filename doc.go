// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

/*
Package brzopfli implements the backward-reference selector of a Brotli-style
compressor: given a raw byte window it chooses the sequence of
(insert_length, copy_length, distance) commands that minimizes predicted
bit-cost under the container's prefix-code tables.

At quality 10 and 11 this is a "zopflifying" shortest-path optimizer: a
dynamic-programming pass over input positions, aided by a candidate-match
enumerator (the H10 hash-chain matcher) and a histogram-fitted cost model,
carrying a rolling four-entry distance cache along the chosen path. Lower
quality levels fall back to a greedy/lazy single-pass parser sharing the same
MatchFinder interface without the DP.

# Usage

	opts := brzopfli.DefaultOptions()
	opts.Quality = 11
	result, err := brzopfli.CreateBackwardReferences(window, opts, distCache, lastInsertLen, nil)

result.Commands is the chosen command list; result.DistanceCache is the
updated rolling cache to feed into the next meta-block.

# Scope

This package only selects commands — it does not write a Brotli bit-stream,
does not implement entropy coding, and knows nothing about dictionary
contents. Those concerns belong to the container-level encoder.
*/
package brzopfli
