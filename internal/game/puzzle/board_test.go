package puzzle

import (
	"testing"

	"gridplay/internal/game/shapes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustShape(t *testing.T, id string) *shapes.Shape {
	t.Helper()
	s, ok := shapes.ByID(id)
	require.True(t, ok, "catalog shape %q", id)
	return s
}

func TestCanPlaceBoundsAndOverlap(t *testing.T) {
	b := NewBoard(DuelSize)
	sq := mustShape(t, "sq2")

	assert.True(t, b.CanPlace(sq.Matrix, 0, 0))
	assert.True(t, b.CanPlace(sq.Matrix, 8, 8))
	assert.False(t, b.CanPlace(sq.Matrix, 9, 9), "crosses the boundary")
	assert.False(t, b.CanPlace(sq.Matrix, -1, 0))

	b.Cells[1][1] = Owner1
	assert.False(t, b.CanPlace(sq.Matrix, 0, 0), "overlaps an occupied cell")
	assert.True(t, b.CanPlace(sq.Matrix, 2, 2))
}

func TestCanPlaceIgnoresUnfilledShapeCells(t *testing.T) {
	b := NewBoard(DuelSize)
	corner := mustShape(t, "corner2a") // X. / XX
	// Occupy the cell under the unfilled corner of the bounding box.
	b.Cells[0][1] = Owner1
	assert.True(t, b.CanPlace(corner.Matrix, 0, 0))
}

func TestPlaceReturnsArea(t *testing.T) {
	b := NewBoard(DuelSize)
	line := mustShape(t, "line5h")
	placed := b.Place(line.Matrix, 4, 2, Owner2)
	assert.Equal(t, 5, placed)
	for c := 2; c < 7; c++ {
		assert.Equal(t, Owner2, b.Cells[4][c])
	}
}

func TestFullLinesCountsIntersectionsForBoth(t *testing.T) {
	b := NewBoard(DuelSize)
	for c := 0; c < b.Size; c++ {
		b.Cells[3][c] = Owner1
	}
	for r := 0; r < b.Size; r++ {
		b.Cells[r][7] = Owner1
	}
	rows, cols := b.FullLines()
	assert.Equal(t, []int{3}, rows)
	assert.Equal(t, []int{7}, cols)
}

func TestClearLinesIsAtomicUnion(t *testing.T) {
	b := NewBoard(DuelSize)
	for c := 0; c < b.Size; c++ {
		b.Cells[0][c] = Owner1
	}
	for r := 0; r < b.Size; r++ {
		b.Cells[r][0] = Owner1
	}
	b.Cells[5][5] = Owner2

	rows, cols := b.FullLines()
	b.ClearLines(rows, cols)

	for c := 0; c < b.Size; c++ {
		assert.Equal(t, None, b.Cells[0][c])
	}
	for r := 0; r < b.Size; r++ {
		assert.Equal(t, None, b.Cells[r][0])
	}
	assert.Equal(t, Owner2, b.Cells[5][5], "cells outside the union survive")

	rows, cols = b.FullLines()
	assert.Empty(t, rows, "no full line may persist after resolution")
	assert.Empty(t, cols)
}

func TestFitsSearchesAllPositions(t *testing.T) {
	b := NewBoard(SoloSize)
	big := mustShape(t, "sq3")
	assert.True(t, b.Fits(big.Matrix))

	// Fill everything except a lone corner cell.
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			b.Cells[r][c] = Owner1
		}
	}
	b.Cells[7][7] = None
	assert.False(t, b.Fits(big.Matrix))
	assert.True(t, b.Fits(mustShape(t, "dot1").Matrix))
}

func TestIsEmptyAndFillRatio(t *testing.T) {
	b := NewBoard(SoloSize)
	assert.True(t, b.IsEmpty())
	assert.Zero(t, b.FillRatio())
	b.Cells[0][0] = Owner1
	assert.False(t, b.IsEmpty())
	assert.InDelta(t, 1.0/64.0, b.FillRatio(), 1e-9)
}
