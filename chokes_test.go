package scmap

import (
	"testing"

	"github.com/arl/go-scmap/pathfind"
)

func TestSmoothClimbKeepsIsolatedNeighbor(t *testing.T) {
	points := newPoints(3, 3)
	points[1][1].Climbable = true
	points[1][0].Climbable = true

	still := smoothClimb(points, 3, 3, 1, 1)
	if !still {
		t.Error("smoothClimb should keep a tile with at least one climbable neighbor")
	}
}

func TestSmoothClimbClearsTrueIsolate(t *testing.T) {
	points := newPoints(3, 3)
	points[1][1].Climbable = true

	still := smoothClimb(points, 3, 3, 1, 1)
	if still || points[1][1].Climbable {
		t.Error("smoothClimb should clear a climbable tile with no climbable neighbor")
	}
}

func TestSmoothCliffClearsIsolate(t *testing.T) {
	points := newPoints(3, 3)
	points[1][1].CliffType = CliffLow

	smoothCliff(points, 3, 3, 1, 1)
	if points[1][1].CliffType != CliffNone {
		t.Error("smoothCliff should clear a CliffType with no matching 4-neighbor")
	}
}

func TestSmoothCliffKeepsSharedType(t *testing.T) {
	points := newPoints(3, 3)
	points[1][1].CliffType = CliffLow
	points[0][1].CliffType = CliffLow

	smoothCliff(points, 3, 3, 1, 1)
	if points[1][1].CliffType != CliffLow {
		t.Error("smoothCliff should keep a CliffType shared with a 4-neighbor")
	}
}

// TestDetectChokesTwoPillars builds a 2-tile-thick wall with a walkable gap
// of 3 tiles; the border tiles of the two wall pieces facing each other
// across the gap should form a choke.
func TestDetectChokesTwoPillars(t *testing.T) {
	w, h := 20, 7
	points := newPoints(w, h)
	walk := uniformGrid(w, h, 1)

	// wall columns x=9 and x=10 spanning the full height except a 3-wide
	// gap at y=3..5.
	for y := 0; y < h; y++ {
		if y < 3 || y > 5 {
			points[9][y].Walkable = false
			walk[9][y] = 0
			points[10][y].Walkable = false
			walk[10][y] = 0
		}
	}
	box := playableBox{xStart: 0, yStart: 0, xEnd: w - 1, yEnd: h - 1}
	classifyBordersAndClimbsForTest(points, w, h, box)

	ground, err := pathfind.NewFromMask(walk)
	if err != nil {
		t.Fatalf("NewFromMask: %v", err)
	}

	var segments []ChokeSegment
	for x := box.xStart; x <= box.xEnd; x++ {
		for y := box.yStart; y <= box.yEnd; y++ {
			if points[x][y].IsBorder {
				segments = append(segments, detectChokesAt(points, ground, w, h, box, x, y, NewSettings())...)
			}
		}
	}

	if len(segments) == 0 {
		t.Fatal("expected at least one choke segment across the narrow corridor walls")
	}
}

// classifyBordersAndClimbsForTest runs only the border-marking half of
// Pass 2 (climb marking is irrelevant to this test and would require
// height data this grid doesn't set up).
func classifyBordersAndClimbsForTest(points [][]MapPoint, width, height int, box playableBox) {
	for x := box.xStart; x <= box.xEnd; x++ {
		for y := box.yStart; y <= box.yEnd; y++ {
			if !points[x][y].Walkable {
				markBorder(points, width, height, x, y)
			}
		}
	}
}
