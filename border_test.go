package scmap

import "testing"

func TestMarkBorderFlagsAdjacentToWalkable(t *testing.T) {
	points := newPoints(3, 3)
	points[1][1].Walkable = false
	points[2][1].Walkable = true

	markBorder(points, 3, 3, 1, 1)

	if !points[1][1].IsBorder {
		t.Error("tile adjacent to a walkable neighbor should be flagged as a border")
	}
}

func TestMarkBorderSkipsInterior(t *testing.T) {
	points := newPoints(3, 3)
	// every tile unwalkable: (1,1) has no walkable neighbor.
	markBorder(points, 3, 3, 1, 1)

	if points[1][1].IsBorder {
		t.Error("an unwalkable tile with only unwalkable neighbors should not be a border")
	}
}

func TestMarkOverlordCandidateRequiresDifference(t *testing.T) {
	points := newPoints(3, 3)
	points[1][0].Height = 4
	points[1][1].Height = 4 + Difference
	points[1][2].Height = 4

	markOverlordCandidate(points, 3, 3, 1, 1, Difference)

	if !points[1][1].overlordCandidate {
		t.Error("tile clearing a positive-height neighbor by Difference should be an overlord candidate")
	}
}

func TestMarkOverlordCandidateRejectsZeroNeighborHeight(t *testing.T) {
	points := newPoints(3, 3)
	points[1][0].Height = 0
	points[1][1].Height = 100
	points[1][2].Height = 0

	markOverlordCandidate(points, 3, 3, 1, 1, Difference)

	if points[1][1].overlordCandidate {
		t.Error("a neighbor height of 0 should never qualify as an overlord candidate base")
	}
}

func TestClassifyBordersAndClimbsSkipsWalkableForBorderMarking(t *testing.T) {
	points := newPoints(3, 3)
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			points[x][y].Walkable = true
		}
	}
	box := playableBox{xStart: 0, yStart: 0, xEnd: 2, yEnd: 2}
	classifyBordersAndClimbs(points, 3, 3, box, NewSettings())

	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			if points[x][y].IsBorder {
				t.Errorf("(%d,%d) is walkable and should never be marked as a border", x, y)
			}
		}
	}
}
