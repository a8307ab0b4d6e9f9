package geometry

type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Rect is an axis-aligned rectangle in canonical form: From is the minimum
// corner on both axes, To the maximum. Zero-extent rects are valid.
type Rect struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// FromPoints builds the canonical Rect spanned by two corners given in any order.
func FromPoints(a, b Point) Rect {
	return Rect{
		From: Point{Min32(a.X, b.X), Min32(a.Y, b.Y)},
		To:   Point{Max32(a.X, b.X), Max32(a.Y, b.Y)},
	}
}

func (r Rect) IsEmpty() bool   { return r.From.X >= r.To.X || r.From.Y >= r.To.Y }
func (r Rect) Width() float32  { return r.To.X - r.From.X }
func (r Rect) Height() float32 { return r.To.Y - r.From.Y }

func (r Rect) Area() float32 {
	if r.IsEmpty() {
		return 0
	}
	return r.Width() * r.Height()
}

func (r Rect) SpanX() Interval { return Interval{r.From.X, r.To.X} }
func (r Rect) SpanY() Interval { return Interval{r.From.Y, r.To.Y} }

func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	return Rect{
		From: Point{Min32(r.From.X, other.From.X), Min32(r.From.Y, other.From.Y)},
		To:   Point{Max32(r.To.X, other.To.X), Max32(r.To.Y, other.To.Y)},
	}
}

// Intersect reports the overlap of two rects, if any. A shared edge or corner
// is not an overlap: the per-axis check is strict.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	x, ok := r.SpanX().Intersect(other.SpanX())
	if !ok {
		return Rect{}, false
	}
	y, ok := r.SpanY().Intersect(other.SpanY())
	if !ok {
		return Rect{}, false
	}
	return FromPoints(Point{x.Lo, y.Lo}, Point{x.Hi, y.Hi}), true
}

// Interval is a closed 1D range with Lo <= Hi.
type Interval struct{ Lo, Hi float32 }

// Intersect computes the overlap of two intervals. The result is independent
// of argument order. Touching intervals (second.Lo == first.Hi) do not overlap.
func (iv Interval) Intersect(other Interval) (Interval, bool) {
	a, b := iv, other
	if b.Lo < a.Lo {
		a, b = b, a
	}
	if b.Lo >= a.Hi {
		return Interval{}, false
	}
	return Interval{b.Lo, Min32(a.Hi, b.Hi)}, true
}

func Min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func Max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
