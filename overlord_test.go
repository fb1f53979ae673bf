package scmap

import "testing"

// buildPlateau returns a 7x7 grid with a 3x3 plateau of height 50 centered
// at (3,3), surrounded by walkable ground at height 0 (well below the
// plateau by more than Difference).
func buildPlateau(edgeHeight int) [][]MapPoint {
	points := newPoints(7, 7)
	for x := 0; x < 7; x++ {
		for y := 0; y < 7; y++ {
			points[x][y].Walkable = true
			points[x][y].Height = 0
		}
	}
	for x := 2; x <= 4; x++ {
		for y := 2; y <= 4; y++ {
			points[x][y].Walkable = false
			points[x][y].Height = 50
		}
	}
	_ = edgeHeight
	return points
}

func TestConsolidateOverlordSpotAccepted(t *testing.T) {
	points := buildPlateau(0)
	handled := make(map[int]bool)
	stride := tileStride(7, 7)
	log := NewBuildLog()

	spot, ok := consolidateOverlordSpot(points, 7, 7, 3, 3, handled, stride, Difference, log)
	if !ok {
		t.Fatal("expected a flat, sufficiently elevated 3x3 plateau to be accepted")
	}
	if spot.X != 3 || spot.Y != 3 {
		t.Errorf("spot = %+v, want centroid (3,3)", spot)
	}
	for x := 2; x <= 4; x++ {
		for y := 2; y <= 4; y++ {
			if !points[x][y].OverlordSpot {
				t.Errorf("(%d,%d) should be flagged OverlordSpot", x, y)
			}
		}
	}
}

// buildShallowPlateau surrounds the 3x3 plateau (height 50) with a ring of
// unwalkable tiles at a height too close to the plateau's own height (a
// too-shallow edge, height 50-(Difference-1)) instead of open walkable
// ground, so the flood fill's boundary check actually fires.
func buildShallowPlateau() [][]MapPoint {
	points := newPoints(9, 9)
	for x := 0; x < 9; x++ {
		for y := 0; y < 9; y++ {
			points[x][y].Walkable = true
			points[x][y].Height = 0
		}
	}
	for x := 2; x <= 6; x++ {
		for y := 2; y <= 6; y++ {
			points[x][y].Walkable = false
			points[x][y].Height = 50 - (Difference - 1)
		}
	}
	for x := 3; x <= 5; x++ {
		for y := 3; y <= 5; y++ {
			points[x][y].Height = 50
		}
	}
	return points
}

func TestConsolidateOverlordSpotRejectedOnShallowEdge(t *testing.T) {
	points := buildShallowPlateau()
	handled := make(map[int]bool)
	stride := tileStride(9, 9)
	log := NewBuildLog()

	_, ok := consolidateOverlordSpot(points, 9, 9, 4, 4, handled, stride, Difference, log)
	if ok {
		t.Fatal("a plateau edge below Difference should be rejected")
	}
	for x := 3; x <= 5; x++ {
		for y := 3; y <= 5; y++ {
			if points[x][y].OverlordSpot {
				t.Errorf("(%d,%d) should not remain flagged after rejection", x, y)
			}
		}
	}
}

func TestFloodFillOverlordRespectsWalkableBoundary(t *testing.T) {
	points := buildPlateau(0)
	visited := make(map[int]bool)
	ok := floodFillOverlord(points, 7, 7, 3, 3, 50, Difference, true, visited)
	if !ok {
		t.Fatal("expected acceptance")
	}
	if len(visited) != 9 {
		t.Errorf("visited %d tiles, want 9 (the 3x3 plateau)", len(visited))
	}
}
