package main

// CheckCircleOverlap checks if two circles overlap. Touching circles
// (distance exactly equal to the radius sum) do not count as overlapping.
func CheckCircleOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	if r1 < 0 {
		r1 = 0
	}
	if r2 < 0 {
		r2 = 0
	}
	dx := x2 - x1
	dy := y2 - y1
	dist2 := dx*dx + dy*dy
	radSum := r1 + r2
	return dist2 < radSum*radSum
}
