// Package combination finds every rectangle on a board whose four corners share a color.
package combination

import "github.com/mcoot/cornergame/internal/model"

// Finder holds the combinations present on a board at the time it was built.
// It is a value computed per call; build a new one after the board changes.
type Finder struct {
	bounds []model.Bounds
}

// Find searches the board for every matching rectangle.
//
// For each reference ball not on the last row or column it collects the
// same-colored balls to its right and above it, then checks the crossing
// ball of every (right, above) pair. Results keep discovery order (x outer,
// y inner) and are not deduplicated.
func Find(b *model.Board) *Finder {
	size := b.Size()
	found := make([]model.Bounds, 0)

	right := make([]int, 0, size)
	above := make([]int, 0, size)

	for x := 0; x < size-1; x++ {
		for y := 0; y < size-1; y++ {
			color := b.ColorAt(x, y)
			if !color.IsSet() {
				continue
			}

			right = right[:0]
			for x2 := x + 1; x2 < size; x2++ {
				if b.ColorAt(x2, y) == color {
					right = append(right, x2)
				}
			}
			if len(right) == 0 {
				continue
			}

			above = above[:0]
			for y2 := y + 1; y2 < size; y2++ {
				if b.ColorAt(x, y2) == color {
					above = append(above, y2)
				}
			}

			for _, x2 := range right {
				for _, y2 := range above {
					if b.ColorAt(x2, y2) == color {
						found = append(found, model.Bounds{MinX: x, MinY: y, MaxX: x2, MaxY: y2})
					}
				}
			}
		}
	}

	return &Finder{bounds: found}
}

// PossibleBounds returns every combination found, in discovery order
func (f *Finder) PossibleBounds() []model.Bounds {
	result := make([]model.Bounds, len(f.bounds))
	copy(result, f.bounds)
	return result
}

// Count returns the number of combinations found
func (f *Finder) Count() int {
	return len(f.bounds)
}

// HasCombinations returns true if at least one combination exists
func (f *Finder) HasCombinations() bool {
	return len(f.bounds) > 0
}

// Combination returns the first combination found
func (f *Finder) Combination() (model.Bounds, bool) {
	if len(f.bounds) == 0 {
		return model.Bounds{}, false
	}
	return f.bounds[0], true
}

// Best returns the combination with the largest area; the first one wins ties
func (f *Finder) Best() (model.Bounds, bool) {
	return f.pick(func(candidate, current int) bool { return candidate > current })
}

// Worst returns the combination with the smallest area; the first one wins ties
func (f *Finder) Worst() (model.Bounds, bool) {
	return f.pick(func(candidate, current int) bool { return candidate < current })
}

func (f *Finder) pick(better func(candidate, current int) bool) (model.Bounds, bool) {
	if len(f.bounds) == 0 {
		return model.Bounds{}, false
	}
	chosen := f.bounds[0]
	for _, b := range f.bounds[1:] {
		if better(b.Area(), chosen.Area()) {
			chosen = b
		}
	}
	return chosen, true
}

// Contains returns true if the given bounds is one of the combinations found
func (f *Finder) Contains(b model.Bounds) bool {
	for _, candidate := range f.bounds {
		if candidate == b {
			return true
		}
	}
	return false
}
