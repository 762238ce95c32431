// SPDX-License-Identifier: MIT
// Source: github.com/brzopfli/brzopfli

package brzopfli

import "testing"

func TestEstimateLiteralCostsReturnsPrefixSumOfLength(t *testing.T) {
	data := []byte("mississippi")
	costs := estimateLiteralCosts(data, 0, 1<<20)
	if len(costs) != len(data)+1 {
		t.Fatalf("len(costs) = %d, want %d", len(costs), len(data)+1)
	}
	if costs[0] != 0 {
		t.Fatalf("costs[0] = %v, want 0", costs[0])
	}
	for i := 1; i < len(costs); i++ {
		if costs[i] < costs[i-1] {
			t.Fatalf("costs[%d] = %v, decreased from costs[%d] = %v; prefix sums must be non-decreasing", i, costs[i], i-1, costs[i-1])
		}
	}
}

func TestEstimateLiteralCostsRewardsRepetition(t *testing.T) {
	repetitive := make([]byte, 200)
	for i := range repetitive {
		repetitive[i] = 'a'
	}
	random := []byte("qwz7KpL2xVbN9fJ8mRtYc4hWs0uDgAoE1iZkXnCvB6jQlP5r")

	repCosts := estimateLiteralCosts(repetitive, 0, 1<<20)
	randCosts := estimateLiteralCosts(random, 0, 1<<20)

	repAvg := repCosts[len(repCosts)-1] / float32(len(repetitive))
	randAvg := randCosts[len(randCosts)-1] / float32(len(random))
	if repAvg >= randAvg {
		t.Fatalf("repeated bytes should average cheaper per byte than varied ones: rep=%v rand=%v", repAvg, randAvg)
	}
}

func TestEstimateLiteralCostsEmptyInput(t *testing.T) {
	costs := estimateLiteralCosts(nil, 0, 1<<20)
	if len(costs) != 1 {
		t.Fatalf("len(costs) = %d, want 1 for empty input", len(costs))
	}
}
