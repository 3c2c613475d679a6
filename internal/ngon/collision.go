package ngon

// IsColliding reports whether the cursor in lane touches a wall. Batches are
// walked nearest first; the first one reaching beyond radius decides, solid
// meaning a hit. If no batch reaches radius there is nothing to hit.
//
// Only the current lane is tested once per tick. A cursor sweeping across a
// wall between two ticks is not detected.
func IsColliding(lane int, t *Track, radius float64) bool {
	hit := false
	t.Walk(func(_, outer float64, b *WallBatch) bool {
		if outer <= radius {
			return true
		}
		hit = b.Solid(lane)
		return false
	})
	return hit
}
