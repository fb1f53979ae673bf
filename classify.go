package scmap

// classify runs Pass 1 (spec.md §4.2): for every cell in the full grid,
// set Walkable, Pathable and Height, and build the three 0/1 masks the
// path-finder collaborators are later constructed from.
//
// walk and reaper start out identical (both seeded from Walkable); reaper
// is augmented with climb routes in Pass 3 (runPass3, chokes.go), and colossus is
// cloned from the finished reaper mask once Pass 3 completes.
func classify(points [][]MapPoint, pathing, placement, height [][]int, box playableBox) (walk, fly, reaper [][]int) {
	width := len(pathing)
	ht := len(pathing[0])

	walk = make([][]int, width)
	fly = make([][]int, width)
	reaper = make([][]int, width)

	for x := 0; x < width; x++ {
		walk[x] = make([]int, ht)
		fly[x] = make([]int, ht)
		reaper[x] = make([]int, ht)

		for y := 0; y < ht; y++ {
			walkable := pathing[x][y] > 0 || placement[x][y] > 0
			pathable := box.contains(x, y)

			points[x][y].Walkable = walkable
			points[x][y].Pathable = pathable
			points[x][y].Height = height[x][y]

			if pathable {
				fly[x][y] = 1
			}
			if walkable {
				walk[x][y] = 1
				reaper[x][y] = 1
			}
		}
	}
	return walk, fly, reaper
}

// playableBox is the inclusive bounding box of the playable area
// (spec.md §3, §6).
type playableBox struct {
	xStart, yStart, xEnd, yEnd int
}

func (b playableBox) contains(x, y int) bool {
	return b.xStart <= x && x <= b.xEnd && b.yStart <= y && y <= b.yEnd
}
