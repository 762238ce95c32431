// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

package brzopfli

import "testing"

func TestCreateBackwardReferencesGreedyRoundTrips(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog the quick brown fox")
	finder := newMatchFinder(H6, fixedQualities[6].maxChain, len(data))
	var distCache [4]int
	var lastInsertLen uint32
	commands, numLiterals := createBackwardReferencesGreedy(data, finder, 1<<20, true, 6, &distCache, &lastInsertLen)

	if len(commands) == 0 {
		t.Fatal("expected at least one command for repetitive input")
	}
	var consumed int
	for _, c := range commands {
		consumed += int(c.InsertLen) + int(c.CopyLen)
	}
	consumed += int(lastInsertLen)
	if consumed != len(data) {
		t.Fatalf("commands consume %d bytes, want %d", consumed, len(data))
	}

	decoded, err := decodeCommands(commands, [4]int{}, data)
	if err != nil {
		t.Fatalf("decodeCommands: %v", err)
	}
	// Append the residual tail the greedy path folds into lastInsertLen.
	decoded = append(decoded, data[len(decoded):len(decoded)+int(lastInsertLen)]...)
	if string(decoded) != string(data) {
		t.Fatalf("round trip mismatch:\n got  %q\n want %q", decoded, data)
	}
	if numLiterals <= 0 {
		t.Fatalf("numLiterals = %d, want > 0", numLiterals)
	}
}

func TestCreateBackwardReferencesGreedyAllLiteralsWhenNoMatches(t *testing.T) {
	data := []byte("abcdefghijklmnopqrstuvwxyz")
	finder := newMatchFinder(H2, 4, len(data))
	var distCache [4]int
	var lastInsertLen uint32
	commands, numLiterals := createBackwardReferencesGreedy(data, finder, 1<<20, false, 0, &distCache, &lastInsertLen)

	if len(commands) != 0 {
		t.Fatalf("expected no commands for data with no repeats, got %d", len(commands))
	}
	if numLiterals != 0 {
		t.Fatalf("numLiterals = %d, want 0 (all bytes folded into lastInsertLen)", numLiterals)
	}
	if int(lastInsertLen) != len(data) {
		t.Fatalf("lastInsertLen = %d, want %d", lastInsertLen, len(data))
	}
}
