package scmap

// eightNeighbors lists the 8-connected neighbor offsets used by the border
// test (spec.md §4.3, invariant i of spec.md §3).
var eightNeighbors = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// classifyBordersAndClimbs runs Pass 2 (spec.md §4.3) over the pathable
// box: for non-walkable tiles it marks overlord candidates and borders; for
// walkable tiles it invokes the climb rule in the four directions that
// avoid double-marking symmetric cliff pairs.
func classifyBordersAndClimbs(points [][]MapPoint, width, height int, box playableBox, settings Settings) {
	for x := box.xStart; x <= box.xEnd; x++ {
		for y := box.yStart; y <= box.yEnd; y++ {
			p := &points[x][y]
			if !p.Walkable {
				markOverlordCandidate(points, width, height, x, y, settings.Difference)
				markBorder(points, width, height, x, y)
				continue
			}

			climb(points, width, height, x, y, -1, -1, settings)
			climb(points, width, height, x, y, 1, -1, settings)
			climb(points, width, height, x, y, 1, 0, settings)
			climb(points, width, height, x, y, 0, 1, settings)
		}
	}
}

// markOverlordCandidate flags (x, y) as a precursor vantage plateau tile
// when its height clears a vertical neighbor's height by at least
// difference, and that neighbor's height is itself positive (spec.md
// §4.3.1).
func markOverlordCandidate(points [][]MapPoint, width, height, x, y, difference int) {
	h := points[x][y].Height
	if y+1 < height {
		h0 := points[x][y+1].Height
		if h0 > 0 && h >= h0+difference {
			points[x][y].overlordCandidate = true
			return
		}
	}
	if y > 0 {
		h1 := points[x][y-1].Height
		if h1 > 0 && h >= h1+difference {
			points[x][y].overlordCandidate = true
		}
	}
}

// markBorder flags (x, y) as a border tile if any of its eight neighbors
// is walkable (spec.md §4.3.2, invariant i).
func markBorder(points [][]MapPoint, width, height, x, y int) {
	for _, off := range eightNeighbors {
		nx, ny := x+off[0], y+off[1]
		if inBounds(width, height, nx, ny) && points[nx][ny].Walkable {
			points[x][y].IsBorder = true
			return
		}
	}
}
