package flappy

// OutOfBounds reports whether the body left the playfield vertically.
// Touching either boundary exactly is still in bounds.
func OutOfBounds(b Body, playfieldH float64) bool {
	return b.Y < 0 || b.Y > playfieldH-b.H
}

// Overlaps reports whether the body's horizontal extent overlaps the pair.
func Overlaps(b Body, p Pair, pairWidth float64) bool {
	return b.X > p.X-b.W && b.X < p.X+pairWidth
}

// InsideGap reports whether the body's vertical span lies within the gap.
func InsideGap(b Body, p Pair) bool {
	return b.Y >= p.TopY && b.Y <= p.BottomY-b.H
}

// Colliding reports whether the body hits a boundary or any pair.
// It stops at the first hit.
func Colliding(b Body, pairs []Pair, pairWidth, playfieldH float64) bool {
	if OutOfBounds(b, playfieldH) {
		return true
	}
	for _, p := range pairs {
		if !Overlaps(b, p, pairWidth) {
			continue
		}
		if !InsideGap(b, p) {
			return true
		}
	}
	return false
}
