// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

package brzopfli

// Result is what CreateBackwardReferences returns for one window: the
// chosen command list plus the persistent state a caller threads into the
// next meta-block (distance cache, residual insert length).
type Result struct {
	Commands      []Command
	NumLiterals   int
	DistanceCache [4]int
	LastInsertLen uint32
}

// precomputeMatches runs the H10 finder once over the whole window,
// producing each position's candidate list up front so a quality-11 run can
// reuse it across cost-model refit passes without re-searching. Mirrors the
// match-collection loop in BrotliCreateBackwardReferences's quality>9 branch:
// a position whose longest match exceeds maxZopfliLen is trimmed to that one
// match and the hasher is fast-forwarded (StoreRange) over the bytes the DP
// will skip, since ZopfliIterate advances over them without visiting them.
func precomputeMatches(data []byte, finder MatchFinder, maxBackwardLimit, quality int) [][]Match {
	numBytes := len(data)
	lookahead := finder.Lookahead()
	matches := make([][]Match, numBytes)
	maxZopfliLen := maxZopfliLenForQuality(quality)

	storeEnd := 0
	if numBytes >= lookahead {
		storeEnd = numBytes - lookahead + 1
	}

	for i := 0; i+lookahead-1 < numBytes; i++ {
		pos := i
		maxDistance := minInt(pos, maxBackwardLimit)
		found := finder.FindAll(data, pos, maxDistance)
		matches[i] = found

		if len(found) == 0 {
			continue
		}
		longest := int(found[len(found)-1].Len)
		if longest <= maxZopfliLen {
			continue
		}
		matches[i] = found[len(found)-1:]
		end := pos + longest
		if end > storeEnd {
			end = storeEnd
		}
		finder.StoreRange(data, pos+1, end)
		skip := longest - 1
		i += skip
	}
	return matches
}

// zopfliIterate runs one DP pass over the window using a precomputed match
// list, then backtraces it into a command count. A candidate list with a zero
// distance, a match past the window end, lengths that do not strictly
// increase, or a non-dictionary distance smaller than the one before it fails
// the pass with ErrInvariantViolation. Ported from ZopfliIterate:
// a position whose only candidate is a single match longer than
// maxZopfliLen resets the start-position queue after being relaxed, since
// the skip ahead breaks the DP's positional locality (the queue's entries
// would otherwise point at positions the pass never revisits).
func zopfliIterate(data []byte, numBytes, quality, maxBackwardLimit int, distCache [4]int, model *costModel, matches [][]Match, nodes []node) (int, error) {
	queue := &startPosQueue{}
	nodes[0].length = 0
	nodes[0].cost = 0
	maxZopfliLen := maxZopfliLenForQuality(quality)

	for i := 0; i+3 < numBytes; i++ {
		m := matches[i]
		for j, mm := range m {
			if mm.Distance == 0 || i+int(mm.Len) > numBytes {
				return 0, ErrInvariantViolation
			}
			nonDictionary := int(mm.Distance) <= minInt(i, maxBackwardLimit)
			if j > 0 && (mm.Len <= m[j-1].Len || (nonDictionary && mm.Distance < m[j-1].Distance)) {
				return 0, ErrInvariantViolation
			}
		}
		updateNodes(data, numBytes, i, 0, maxBackwardLimit, distCache, m, model, queue, quality, nodes)
		if len(m) == 1 && int(m[0].Len) > maxZopfliLen {
			i += int(m[0].Len) - 1
			*queue = startPosQueue{}
		}
	}
	return computeShortestPathFromNodes(numBytes, nodes)
}

// CreateBackwardReferences selects the cheapest backward-reference command
// stream for one window, dispatching on Options.Quality the way the
// reference encoder's BrotliCreateBackwardReferences does: quality <= 9 is
// the greedy/lazy single pass (greedy.go); 10 and 11 are the zopflifying DP,
// 11 repeating it with a cost model refit from its own provisional commands.
//
// This selector always treats blockStart as 0: data is the complete window
// for this call, and meta-block splitting across a longer stream (the
// "position" argument of spec.md §6) is the out-of-scope outer driver's
// responsibility. distCache and lastInsertLen carry state across calls for
// a caller that does implement that splitting.
func CreateBackwardReferences(data []byte, opts *Options, distCache [4]int, lastInsertLen uint32, alloc *Allocator) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyWindow
	}
	if alloc == nil {
		alloc = NewAllocator()
	}

	numBytes := len(data)
	maxBackwardLimit := opts.maxBackwardDistance()
	params := paramsForQuality(opts)

	result := &Result{DistanceCache: distCache, LastInsertLen: lastInsertLen}

	if !params.useDP {
		finder := newMatchFinder(params.hasher, params.maxChain, numBytes)
		finder.SetNiceLen(params.niceLen)
		commands, numLiterals := createBackwardReferencesGreedy(
			data, finder, maxBackwardLimit, params.lazyMatching, opts.Quality,
			&result.DistanceCache, &result.LastInsertLen)
		result.Commands = commands
		result.NumLiterals = numLiterals
		return result, nil
	}

	finder := newMatchFinder(params.hasher, params.maxChain, numBytes)
	matches := precomputeMatches(data, finder, maxBackwardLimit, opts.Quality)

	nodes := alloc.nodes(numBytes)
	if nodes == nil {
		return nil, ErrOutOfMemory
	}
	defer alloc.release(nodes)

	iterations := 1
	if opts.Quality >= 11 {
		iterations = opts.zopfliIterations()
	}

	origDistCache := result.DistanceCache
	origLastInsertLen := result.LastInsertLen
	var commands []Command
	numLiterals := 0

	for iter := 0; iter < iterations; iter++ {
		resetNodes(nodes)

		var model *costModel
		if iter == 0 {
			model = newCostModelFromLiteralCosts(data, 0, maxBackwardLimit)
		} else {
			model = newCostModelFromCommands(data, 0, maxBackwardLimit, commands, origLastInsertLen)
		}

		result.DistanceCache = origDistCache
		result.LastInsertLen = origLastInsertLen
		numLiterals = 0

		if _, err := zopfliIterate(data, numBytes, opts.Quality, maxBackwardLimit, result.DistanceCache, model, matches, nodes); err != nil {
			return nil, err
		}

		commands, numLiterals = createCommands(numBytes, 0, maxBackwardLimit, nodes, &result.DistanceCache, &result.LastInsertLen)
	}

	result.Commands = commands
	result.NumLiterals = numLiterals
	return result, nil
}

func resetNodes(nodes []node) {
	for i := range nodes {
		nodes[i] = node{cost: infCost}
	}
	nodes[0].cost = 0
}
