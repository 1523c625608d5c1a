package shapes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIntegrity(t *testing.T) {
	require.NotEmpty(t, Catalog)
	seen := map[string]bool{}
	for _, s := range Catalog {
		assert.NotEmpty(t, s.ID)
		assert.False(t, seen[s.ID], "duplicate id %s", s.ID)
		seen[s.ID] = true

		require.Positive(t, s.Matrix.Rows(), "%s has rows", s.ID)
		for _, row := range s.Matrix {
			assert.Len(t, row, s.Matrix.Cols(), "%s is rectangular", s.ID)
		}
		assert.Positive(t, s.Matrix.Area(), "%s has filled cells", s.ID)
		assert.Positive(t, s.Weight, "%s has a deal weight", s.ID)
		assert.NotEmpty(t, s.Category)
	}
}

func TestByID(t *testing.T) {
	s, ok := ByID("line5h")
	require.True(t, ok)
	assert.Equal(t, 5, s.Matrix.Area())
	assert.Equal(t, 1, s.Matrix.Rows())
	assert.Equal(t, 5, s.Matrix.Cols())

	_, ok = ByID("no-such-shape")
	assert.False(t, ok)
}

func TestParseMatrix(t *testing.T) {
	m := parse(".X", "XX")
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, 3, m.Area())
	assert.False(t, m[0][0])
	assert.True(t, m[0][1])
}
