package scmap

// tileStride returns a value strictly greater than both grid dimensions,
// suitable as the multiplier in tileID. Per spec.md §9 ("Recursion →
// iteration"): a canonical id x + y*STRIDE requires STRIDE > max(W, H) to
// avoid collisions.
func tileStride(width, height int) int {
	if width > height {
		return width + 1
	}
	return height + 1
}

// tileID packs a grid coordinate into a single comparable integer, used as
// the key of the visited and handled sets of the overlord flood-fill
// (overlord.go, chokes.go).
func tileID(x, y, stride int) int {
	return x + y*stride
}
