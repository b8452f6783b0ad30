package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	testCases := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"camry", "camry", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"camery", "camry", 1},
		{"kitten", "sitting", 3},
		{"dodg", "dodge", 1},
		{"تشارجر", "شارجر", 1},
		{"سوناتا", "سوناتا", 0},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, Distance(tc.a, tc.b), "Distance(%q, %q)", tc.a, tc.b)
	}
}

func TestDistanceIsSymmetric(t *testing.T) {
	pairs := [][2]string{{"charger", "challenger"}, {"camry", "camaro"}, {"hundai", "hyundai"}}
	for _, p := range pairs {
		assert.Equal(t, Distance(p[0], p[1]), Distance(p[1], p[0]))
	}
}

func TestClosest(t *testing.T) {
	t.Run("returns best candidate within bound", func(t *testing.T) {
		got, ok := Closest("camery", []string{"camry", "corolla"}, 3)
		require.True(t, ok)
		assert.Equal(t, "camry", got)
	})

	t.Run("rejects when nothing within bound", func(t *testing.T) {
		_, ok := Closest("xyz123", []string{"camry", "corolla"}, 3)
		assert.False(t, ok)
	})

	t.Run("exact match wins", func(t *testing.T) {
		got, ok := Closest("rio", []string{"rio", "r10"}, 1)
		require.True(t, ok)
		assert.Equal(t, "rio", got)
	})

	t.Run("ties break to lexicographically first", func(t *testing.T) {
		// both at distance 1 from "ax"
		got, ok := Closest("ax", []string{"bx", "aa"}, 1)
		require.True(t, ok)
		assert.Equal(t, "aa", got)

		// same result regardless of candidate order
		got, ok = Closest("ax", []string{"aa", "bx"}, 1)
		require.True(t, ok)
		assert.Equal(t, "aa", got)
	})

	t.Run("empty candidate list", func(t *testing.T) {
		_, ok := Closest("camry", nil, 3)
		assert.False(t, ok)
	})
}

func TestMaxDistanceFor(t *testing.T) {
	assert.Equal(t, 1, MaxDistanceFor("kia"))
	assert.Equal(t, 1, MaxDistanceFor("vw"))
	assert.Equal(t, 2, MaxDistanceFor("ford"))
	assert.Equal(t, 3, MaxDistanceFor("toyota"))
	assert.Equal(t, 3, MaxDistanceFor("mitsubishi"))
	// measured in runes, not bytes
	assert.Equal(t, 1, MaxDistanceFor("كيا"))
}
