//go:build debug

package bptree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// These assertions only fire when checkInvariant is wired to a real
// assert (built with -tags debug); see debug_on.go / debug_off.go.

func TestSpreadPanicsOnOverflowUnderDebugBuild(t *testing.T) {
	live := []liveEntry[int64, string]{{key: 1}, {key: 2}, {key: 3}}
	assert.Panics(t, func() {
		spread[int64, string](live, 2)
	})
}

func TestCheckSortedPanicsOnOutOfOrderSlotsUnderDebugBuild(t *testing.T) {
	l := newLeaf[int64, string](&Config{InitialLeafCapacity: 4})
	l.slots[0] = slot[int64, string]{key: 5, value: "a", live: true}
	l.slots[1] = slot[int64, string]{key: 1, value: "b", live: true}
	l.liveCount = 2

	assert.Panics(t, func() {
		l.checkSorted()
	})
}
