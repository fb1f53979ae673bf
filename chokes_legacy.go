package scmap

import "github.com/arl/go-scmap/pathfind"

// SolveChokes is the standalone, non-authoritative choke-detection
// function kept alongside the Pass-3-inlined detectChokesAt (spec.md §9,
// design note "Dual choke-detection sites"). Like detectChokesAt it uses
// ReverseDijkstraFrom for the reachability filter. It differs from
// detectChokesAt in three ways: its rasterized line-of-sight test rejects
// on any unwalkable tile on the line rather than only on another border
// tile, so it is stricter (a line through unwalkable, non-border filler is
// rejected here and accepted there); it only scans candidates whose x is
// at or to the right of the origin's; and it marks only the target tile
// IsChoke. It is not used by NewMap.
func SolveChokes(points [][]MapPoint, ground *pathfind.Grid, x, y int, box playableBox, settings Settings) []ChokeSegment {
	start := Pos{X: x, Y: y}
	if !points[x][y].IsBorder {
		return nil
	}

	// the origin is a border tile and therefore unwalkable by definition
	// (invariant i), so this must use the reverse search, which doesn't
	// require a walkable origin; the underlying graph is undirected so the
	// set of reachable cells is identical either way.
	reachable := ground.ReverseDijkstraFrom(pathfind.Pos{X: x, Y: y}, settings.ChokeBorderGraphDistance)
	reachableSet := make(map[Pos]bool, len(reachable))
	for _, v := range reachable {
		reachableSet[Pos{X: v.Pos.X, Y: v.Pos.Y}] = true
	}

	xMin := x
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
				continue
			}

			interior := RasterizeLine(start, target)
			blocked := false
			for _, mid := range interior {
				if !points[mid.X][mid.Y].Walkable {
					blocked = true
					break
				}
			}
			if blocked {
				continue
			}

			points[target.X][target.Y].IsChoke = true
			segments = append(segments, ChokeSegment{A: start, B: target})
		}
	}
	return segments
}
