package pixeltext

import "fmt"

// Region is a rectangle inside the glyph atlas, in atlas pixels.
type Region struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the region covers no pixel.
func (r Region) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

func (r Region) String() string {
	return fmt.Sprintf("Region(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

type shelf struct {
	y, height, nextX int
}

// shelfAllocator packs rectangles into horizontal shelves. A shelf takes the
// height of the rectangle that opened it. A rectangle goes on the first shelf
// tall enough with room left, or on a new shelf below the last.
type shelfAllocator struct {
	width, height int
	padding       int
	shelves       []shelf
	used          int
}

func newShelfAllocator(width, height, padding int) *shelfAllocator {
	return &shelfAllocator{width: width, height: height, padding: max(padding, 0)}
}

// allocate returns the region for a w×h rectangle, or false when the
// atlas has no room left.
func (a *shelfAllocator) allocate(w, h int) (Region, bool) {
	if w <= 0 || h <= 0 {
		return Region{}, false
	}
	pw, ph := w+a.padding, h+a.padding
	if pw > a.width || ph > a.height {
		return Region{}, false
	}

	for i := range a.shelves {
		s := &a.shelves[i]
		if s.nextX+pw > a.width || ph > s.height {
			continue
		}
		r := Region{X: s.nextX, Y: s.y, Width: w, Height: h}
		s.nextX += pw
		a.used += w * h
		return r, true
	}

	y := 0
	if n := len(a.shelves); n > 0 {
		y = a.shelves[n-1].y + a.shelves[n-1].height
	}
	if y+ph > a.height {
		return Region{}, false
	}
	a.shelves = append(a.shelves, shelf{y: y, height: ph, nextX: pw})
	a.used += w * h
	return Region{X: 0, Y: y, Width: w, Height: h}, true
}

// utilization returns the fraction of the atlas covered by allocations.
func (a *shelfAllocator) utilization() float64 {
	return float64(a.used) / float64(a.width*a.height)
}
