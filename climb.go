package scmap

// climb probes the two-tile span starting at the walkable tile (x, y) in
// direction (dx, dy): a cliff face at (x+dx, y+dy) followed by a walkable
// ledge at (x+2dx, y+2dy). When the height step between (x, y) and that
// ledge falls in the Low or High tolerance band, the ledge is marked
// climbable and its CliffType updated (spec.md §4.3's climb-rule contract,
// detailed in SPEC_FULL.md since spec.md treats it as an external contract).
//
// Only four of the eight possible directions are probed — the Pass 2
// caller always invokes this with (dx,dy) in
// {(-1,-1),(1,-1),(1,0),(0,1)} — so that a climbable pair is marked once,
// from the low side looking up, instead of twice (spec.md §4.3).
func climb(points [][]MapPoint, width, height, x, y, dx, dy int, settings Settings) {
	nearX, nearY := x+dx, y+dy
	farX, farY := x+2*dx, y+2*dy

	if !inBounds(width, height, nearX, nearY) || !inBounds(width, height, farX, farY) {
		return
	}
	if points[nearX][nearY].Walkable {
		// not a cliff face: the adjacent tile is already walkable ground.
		return
	}
	if !points[farX][farY].Walkable {
		// the far tile never reaches walkable ground; no ledge to climb to.
		return
	}

	step := points[farX][farY].Height - points[x][y].Height
	switch {
	case step >= settings.ClimbLowMin && step < settings.ClimbLowMax:
		points[farX][farY].Climbable = true
		points[farX][farY].CliffType = points[farX][farY].CliffType.combine(CliffLow)
	case step >= settings.ClimbHighMin && step <= settings.ClimbHighMax:
		points[farX][farY].Climbable = true
		points[farX][farY].CliffType = points[farX][farY].CliffType.combine(CliffHigh)
	}
}

func inBounds(width, height, x, y int) bool {
	return x >= 0 && x < width && y >= 0 && y < height
}
