package puzzle

import (
	"math/rand"
	"time"

	"gridplay/internal/game/shapes"
)

// Dealer chooses which catalog shapes to hand out at each batch refill. The
// engine only cares when dealing happens, never which heuristic picked the
// shapes.
type Dealer interface {
	Deal(b *Board, n int) []*shapes.Shape
}

// RandomDealer deals uniformly from the full catalog.
type RandomDealer struct {
	rng *rand.Rand
}

func NewRandomDealer(seed int64) *RandomDealer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomDealer{rng: rand.New(rand.NewSource(seed))}
}

func (d *RandomDealer) Deal(_ *Board, n int) []*shapes.Shape {
	out := make([]*shapes.Shape, n)
	for i := range out {
		out[i] = &shapes.Catalog[d.rng.Intn(len(shapes.Catalog))]
	}
	return out
}

// DensityDealer samples by catalog weight and leans toward small shapes as
// the board fills up, so a crowded board still tends to receive something
// playable.
type DensityDealer struct {
	rng *rand.Rand
}

func NewDensityDealer(seed int64) *DensityDealer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &DensityDealer{rng: rand.New(rand.NewSource(seed))}
}

func (d *DensityDealer) Deal(b *Board, n int) []*shapes.Shape {
	ratio := 0.0
	if b != nil {
		ratio = b.FillRatio()
	}
	weights := make([]int, len(shapes.Catalog))
	total := 0
	for i := range shapes.Catalog {
		s := &shapes.Catalog[i]
		w := s.Weight * 10
		if ratio >= 0.5 {
			// Up to +20 per unit of smallness once the board is half full.
			w += (10 - s.Matrix.Area()) * int(ratio*20)
		}
		if w < 1 {
			w = 1
		}
		weights[i] = w
		total += w
	}
	out := make([]*shapes.Shape, n)
	for i := range out {
		pick := d.rng.Intn(total)
		for j, w := range weights {
			pick -= w
			if pick < 0 {
				out[i] = &shapes.Catalog[j]
				break
			}
		}
	}
	return out
}
