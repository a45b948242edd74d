package fpidioms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Add1 itself never terminates and is deliberately not tested here.

func TestAdd1Until(t *testing.T) {
	assert.Equal(t, int64(1000), Add1Until(0, 1000))
	assert.Equal(t, int64(5), Add1Until(5, 3), "already past the limit")
}

func TestTrampoline(t *testing.T) {
	// Sum 1..n as a trampolined self-recursion.
	var sum func(n, acc int64) Thunk[int64]
	sum = func(n, acc int64) Thunk[int64] {
		return func() (int64, Thunk[int64]) {
			if n == 0 {
				return acc, nil
			}
			return 0, sum(n-1, acc+n)
		}
	}

	assert.Equal(t, int64(55), Trampoline(sum(10, 0)))
	assert.Equal(t, int64(500000500000), Trampoline(sum(1_000_000, 0)))
}

func TestCountTo_DeepInConstantStack(t *testing.T) {
	var reports []int64
	n := CountTo(0, 1_000_000, func(depth int64) { reports = append(reports, depth) })

	assert.Equal(t, int64(1_000_000), n)
	assert.Len(t, reports, 1_000_000/ProgressInterval+1)
	assert.Equal(t, int64(0), reports[0])
	assert.Equal(t, int64(1_000_000), reports[len(reports)-1])
}

func TestCountTo_NilProgress(t *testing.T) {
	assert.Equal(t, int64(42), CountTo(40, 42, nil))
}
