package scmap

import "github.com/arl/go-scmap/pathfind"

// ChokeSegment is a single accepted choke detection: an ordered pair of
// border tiles separated by 2-13 map units, not mutually reachable along
// walkable terrain within a graph distance of 30, joined by a straight
// line free of other border tiles (spec.md §3, invariant iv; glossary).
type ChokeSegment struct {
	A, B Pos
}

// runPass3 runs Pass 3 (spec.md §4.4) over the pathable box: climb
// smoothing, choke detection, cliff smoothing and overlord flood-fill
// consolidation, in that order per tile, matching the single interleaved
// loop of the reference implementation. It returns the accepted choke
// segments and confirmed overlord spots directly; no package-level state
// is touched (spec.md §9, Design Note "Global mutable state").
func runPass3(points [][]MapPoint, ground *pathfind.Grid, width, height int, box playableBox, reaper [][]int, settings Settings, log *BuildLog) ([]ChokeSegment, []OverlordSpot) {
	var segments []ChokeSegment
	var spots []OverlordSpot
	handled := make(map[int]bool)
	stride := tileStride(width, height)

	for x := box.xStart; x <= box.xEnd; x++ {
		for y := box.yStart; y <= box.yEnd; y++ {
			if smoothClimb(points, width, height, x, y) {
				reaper[x][y] = 1
			}

			if points[x][y].IsBorder {
				segments = append(segments, detectChokesAt(points, ground, width, height, box, x, y, settings)...)
			}

			smoothCliff(points, width, height, x, y)

			if points[x][y].overlordCandidate && !points[x][y].OverlordSpot && !handled[tileID(x, y, stride)] {
				if spot, ok := consolidateOverlordSpot(points, width, height, x, y, handled, stride, settings.Difference, log); ok {
					spots = append(spots, spot)
				}
			}
		}
	}
	return segments, spots
}

// smoothClimb un-marks a climbable tile whose four cardinal neighbors are
// all non-climbable (spec.md §4.4 "climb smoothing"), and reports whether
// the tile remains climbable (in which case its reaper mask bit must be
// set by the caller).
func smoothClimb(points [][]MapPoint, width, height, x, y int) bool {
	p := &points[x][y]
	if !p.Climbable {
		return false
	}

	var anyNeighborClimbable bool
	for _, off := range fourNeighbors {
		nx, ny := x+off[0], y+off[1]
		if inBounds(width, height, nx, ny) && points[nx][ny].Climbable {
			anyNeighborClimbable = true
			break
		}
	}
	p.Climbable = anyNeighborClimbable
	return p.Climbable
}

// smoothCliff resets a tile's CliffType to CliffNone if no 4-neighbor
// shares that CliffType, preserving invariant (iii) of spec.md §3.
func smoothCliff(points [][]MapPoint, width, height, x, y int) {
	p := &points[x][y]
	if p.CliffType == CliffNone {
		return
	}
	for _, off := range fourNeighbors {
		nx, ny := x+off[0], y+off[1]
		if inBounds(width, height, nx, ny) && points[nx][ny].CliffType == p.CliffType {
			return
		}
	}
	p.CliffType = CliffNone
}

var fourNeighbors = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// detectChokesAt runs the Pass-3-inlined, authoritative choke detection
// (spec.md §4.4, design note "Dual choke-detection sites") for the border
// tile S=(x,y): it searches every border tile T within the axis-aligned
// choke-distance square, accepts T when it is 2-13 map units away, not
// reachable from S along walkable terrain within graph distance 30, and
// joined to S by a line free of other border tiles.
func detectChokesAt(points [][]MapPoint, ground *pathfind.Grid, width, height int, box playableBox, x, y int, settings Settings) []ChokeSegment {
	start := Pos{X: x, Y: y}
	reachable := ground.ReverseDijkstraFrom(pathfind.Pos{X: x, Y: y}, settings.ChokeBorderGraphDistance)
	reachableSet := make(map[Pos]bool, len(reachable))
	for _, v := range reachable {
		reachableSet[Pos{X: v.Pos.X, Y: v.Pos.Y}] = true
	}

	xMin := clampInt(x-int(settings.ChokeDistanceMax), box.xStart)
	xMax := clampIntMax(x+int(settings.ChokeDistanceMax), box.xEnd)
	yMin := clampInt(y-int(settings.ChokeDistanceMax), box.yStart)
	yMax := clampIntMax(y+int(settings.ChokeDistanceMax), box.yEnd)

	var segments []ChokeSegment
	for xNew := xMin; xNew <= xMax; xNew++ {
		for yNew := yMin; yNew <= yMax; yNew++ {
			if !points[xNew][yNew].IsBorder {
				continue
			}
			target := Pos{X: xNew, Y: yNew}
			if target == start {
				continue
			}

			d := Euclid(start, target)
			if d > settings.ChokeDistanceMax || d < settings.ChokeDistanceMin {
				continue
			}
			if reachableSet[target] {
				// same wall: not an opposing-sides choke.
				continue
			}

			interior := RasterizeLine(start, target)
			blocked := false
			for _, mid := range interior {
				if points[mid.X][mid.Y].IsBorder {
					blocked = true
					break
				}
			}
			if blocked {
				continue
			}

			for _, mid := range interior {
				points[mid.X][mid.Y].IsChoke = true
			}
			points[start.X][start.Y].IsChoke = true
			points[target.X][target.Y].IsChoke = true
			segments = append(segments, ChokeSegment{A: start, B: target})
		}
	}
	return segments
}

func clampInt(v, min int) int {
	if v < min {
		return min
	}
	return v
}

func clampIntMax(v, max int) int {
	if v > max {
		return max
	}
	return v
}
