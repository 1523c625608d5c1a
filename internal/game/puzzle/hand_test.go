package puzzle

import (
	"testing"

	"gridplay/internal/game/shapes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingDealer tracks how often dealing was requested.
type countingDealer struct {
	inner Dealer
	calls int
}

func (d *countingDealer) Deal(b *Board, n int) []*shapes.Shape {
	d.calls++
	return d.inner.Deal(b, n)
}

func TestHandRefillDealsFullBatch(t *testing.T) {
	b := NewBoard(SoloSize)
	var h Hand
	h.Refill(NewRandomDealer(1), &b)
	for i := 0; i < HandSize; i++ {
		_, ok := h.Slot(i)
		assert.True(t, ok, "slot %d dealt", i)
	}
}

func TestHandRefillOnlyWhenExhausted(t *testing.T) {
	b := NewBoard(SoloSize)
	d := &countingDealer{inner: NewRandomDealer(1)}
	var h Hand
	h.Refill(d, &b)
	require.Equal(t, 1, d.calls)

	h.Take(0)
	h.Refill(d, &b)
	assert.Equal(t, 1, d.calls, "partial hand must not refill")
	_, ok := h.Slot(0)
	assert.False(t, ok)

	h.Take(1)
	h.Take(2)
	assert.True(t, h.Exhausted())
	h.Refill(d, &b)
	assert.Equal(t, 2, d.calls, "exactly one refill once all slots are empty")
	for i := 0; i < HandSize; i++ {
		_, ok := h.Slot(i)
		assert.True(t, ok)
	}
}

func TestHandTakeOutOfRange(t *testing.T) {
	var h Hand
	assert.Nil(t, h.Take(-1))
	assert.Nil(t, h.Take(HandSize))
	assert.Nil(t, h.Take(0), "empty slot yields nil")
}

func TestHandAnyFitsDetectsStalemate(t *testing.T) {
	b := NewBoard(SoloSize)
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			b.Cells[r][c] = Owner1
		}
	}
	b.Cells[0][0] = None

	sq, _ := shapes.ByID("sq2")
	dot, _ := shapes.ByID("dot1")
	h := Hand{sq, nil, nil}
	assert.False(t, h.AnyFits(&b))
	h[1] = dot
	assert.True(t, h.AnyFits(&b))
}

func TestRandomDealerDealsFromCatalog(t *testing.T) {
	b := NewBoard(DuelSize)
	d := NewRandomDealer(42)
	dealt := d.Deal(&b, HandSize)
	require.Len(t, dealt, HandSize)
	for _, s := range dealt {
		require.NotNil(t, s)
		_, ok := shapes.ByID(s.ID)
		assert.True(t, ok)
	}
}

func TestDensityDealerLeansSmallWhenCrowded(t *testing.T) {
	b := NewBoard(DuelSize)
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			if (r+c)%4 != 0 {
				b.Cells[r][c] = Owner1
			}
		}
	}
	require.GreaterOrEqual(t, b.FillRatio(), 0.5)

	d := NewDensityDealer(7)
	crowded := 0.0
	n := 300
	for i := 0; i < n; i++ {
		for _, s := range d.Deal(&b, 1) {
			crowded += float64(s.Matrix.Area())
		}
	}
	empty := NewBoard(DuelSize)
	d2 := NewDensityDealer(7)
	open := 0.0
	for i := 0; i < n; i++ {
		for _, s := range d2.Deal(&empty, 1) {
			open += float64(s.Matrix.Area())
		}
	}
	assert.Less(t, crowded/float64(n), open/float64(n),
		"mean dealt area should shrink as the board fills")
}
