package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	res := Compare("A\nB\nB", "B\nC")

	// Totals count unique non-empty values, so the repeated B is one.
	assert.Equal(t, 2, res.TotalA)
	assert.Equal(t, 2, res.TotalB)
	assert.Equal(t, []string{"A"}, res.InAOnly)
	assert.Equal(t, []string{"C"}, res.InBOnly)
	// The intersection is a unique set even when one side repeats the value.
	assert.Equal(t, []string{"B"}, res.Intersection)

	require.Len(t, res.DetailA, 3)
	assert.False(t, res.DetailA[1].IsDuplicate)
	assert.True(t, res.DetailA[2].IsDuplicate)
	assert.True(t, res.DetailA[2].ExistsInOther)
}

func TestCompareCaseSensitive(t *testing.T) {
	res := Compare("X000001", "x000001")
	assert.Equal(t, []string{"X000001"}, res.InAOnly)
	assert.Equal(t, []string{"x000001"}, res.InBOnly)
	assert.Empty(t, res.Intersection)
}

func TestCompareEmptyLines(t *testing.T) {
	res := Compare("X000001\n\nX000002", "X000002")

	// Empty lines stay out of the sets but keep their slot in the details.
	assert.Equal(t, 2, res.TotalA)
	require.Len(t, res.DetailA, 3)
	assert.False(t, res.DetailA[1].IsValid)
	assert.False(t, res.DetailA[1].ExistsInOther)
	assert.Equal(t, 1, res.DetailA[1].Index)

	assert.Equal(t, []string{"X000001"}, res.InAOnly)
	assert.Equal(t, []string{"X000002"}, res.Intersection)
}

func TestCompareDuplicatesPreservedInOnlyLists(t *testing.T) {
	res := Compare("X000003\nX000003", "X000004")
	assert.Equal(t, []string{"X000003", "X000003"}, res.InAOnly)
}
