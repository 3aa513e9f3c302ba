/* novelty_test.go
 * Contains unit tests for novelty.go
 * Authors: Zachary Bower
 */

package archive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsPotentialNovelty_RecordedPair tests that an occurred pair is never flagged
func TestIsPotentialNovelty_RecordedPair(t *testing.T) {
	a, err := Build(sampleGames(), 180)
	require.NoError(t, err)

	assert.False(t, a.IsPotentialNovelty(100, 98))
	assert.False(t, a.IsPotentialNovelty(121, 103))
}

// TestIsPotentialNovelty_UnrecordedPair tests that a never-occurred pair is flagged
func TestIsPotentialNovelty_UnrecordedPair(t *testing.T) {
	a, err := Build(sampleGames(), 180)
	require.NoError(t, err)

	assert.True(t, a.IsPotentialNovelty(155, 154))
}

// TestIsPotentialNovelty_ImpossiblePairs tests that ws <= ls is never flagged, even
// when the pair has no record
func TestIsPotentialNovelty_ImpossiblePairs(t *testing.T) {
	a, err := Build(sampleGames(), 180)
	require.NoError(t, err)

	assert.False(t, a.IsPotentialNovelty(98, 100))
	assert.False(t, a.IsPotentialNovelty(110, 110))
}

// TestIsPotentialNovelty_IndependentOfFilterViews tests that novelty is answered from
// the archive the method is called on, so callers holding the unfiltered archive get
// historical-fact answers regardless of the active view
func TestIsPotentialNovelty_IndependentOfFilterViews(t *testing.T) {
	a, err := Build(sampleGames(), 180)
	require.NoError(t, err)

	// A view that drops the 2023 Lakers game would claim (100, 98) never happened;
	// the unfiltered archive still knows it did
	view := a.Filter(YearRange{Min: 2024, Max: 2024}, AllFranchises)
	assert.False(t, a.IsPotentialNovelty(100, 98))
	assert.True(t, view.IsPotentialNovelty(121, 103))
}
