package scmap

// OverlordSpot is the centroid of a confirmed vantage plateau (spec.md
// §3, §4.4; glossary "Overlord spot").
type OverlordSpot struct {
	X, Y float64
}

// consolidateOverlordSpot resolves an un-handled overlord candidate at
// (x, y) into either a confirmed vantage plateau (every member tile's
// OverlordSpot flag set, handled updated, spot returned) or a rejected one
// (every visited tile left unflagged, ok=false), using an explicit
// work-queue flood-fill over 4-connected non-walkable tiles (spec.md §4.4,
// §9 "Recursion → iteration").
func consolidateOverlordSpot(points [][]MapPoint, width, height, x, y int, handled map[int]bool, stride, difference int, log *BuildLog) (spot OverlordSpot, ok bool) {
	targetHeight := points[x][y].Height

	visited := make(map[int]bool)
	accepted := floodFillOverlord(points, width, height, x, y, targetHeight, difference, true, visited)

	if accepted {
		var sumX, sumY float64
		count := 0
		for id := range visited {
			cx, cy := id%stride, id/stride
			if points[cx][cy].Height != targetHeight {
				// a lower boundary tile: visited, but not part of the plateau.
				continue
			}
			handled[id] = true
			count++
			points[cx][cy].OverlordSpot = true
			sumX += float64(cx)
			sumY += float64(cy)
		}
		spot = OverlordSpot{X: sumX / float64(count), Y: sumY / float64(count)}
		log.Progressf("overlord spot at (%.1f, %.1f), %d tiles", spot.X, spot.Y, count)
		return spot, true
	}

	// Rejected: clear OverlordSpot on every tile the failed fill touched,
	// re-running the fill with replacement=false exactly as the reference
	// does, since the first pass may have already set some of them.
	visited2 := make(map[int]bool)
	floodFillOverlord(points, width, height, x, y, targetHeight, difference, false, visited2)
	return OverlordSpot{}, false
}

// floodFillWork is one entry of the explicit flood-fill work queue.
type floodFillWork struct {
	x, y int
}

// floodFillOverlord flood-fills the 4-connected non-walkable region
// starting at (x, y), setting OverlordSpot=replacement on every tile of
// equal height to targetHeight. It returns false if it met a non-walkable
// neighbor of a different height that is not at least Difference below
// targetHeight (a too-shallow plateau edge, or a higher neighbor); the fill
// still runs over the whole region in that case. A neighbor at least
// Difference below targetHeight is accepted as a boundary without
// extending the fill.
func floodFillOverlord(points [][]MapPoint, width, height, x, y, targetHeight, difference int, replacement bool, visited map[int]bool) bool {
	stride := tileStride(width, height)
	start := tileID(x, y, stride)
	if visited[start] {
		return true
	}

	queue := []floodFillWork{{x, y}}
	visited[start] = true
	result := true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		cx, cy := cur.x, cur.y

		if targetHeight != points[cx][cy].Height {
			// A boundary tile: accepted only if it's at least Difference
			// below the plateau; otherwise the plateau fails.
			if targetHeight < points[cx][cy].Height+difference {
				result = false
			}
			continue
		}

		points[cx][cy].OverlordSpot = replacement

		for _, off := range fourNeighbors {
			nx, ny := cx+off[0], cy+off[1]
			if !inBounds(width, height, nx, ny) {
				continue
			}
			if points[nx][ny].Walkable {
				continue
			}
			id := tileID(nx, ny, stride)
			if visited[id] {
				continue
			}
			visited[id] = true
			queue = append(queue, floodFillWork{nx, ny})
		}
	}
	return result
}
