package scmap

import "testing"

func uniformGrid(w, h, v int) [][]int {
	g := make([][]int, w)
	for x := range g {
		g[x] = make([]int, h)
		for y := range g[x] {
			g[x][y] = v
		}
	}
	return g
}

func newPoints(w, h int) [][]MapPoint {
	p := make([][]MapPoint, w)
	for x := range p {
		p[x] = make([]MapPoint, h)
	}
	return p
}

func TestClassifySetsWalkablePathableHeight(t *testing.T) {
	w, h := 5, 5
	pathing := uniformGrid(w, h, 1)
	placement := uniformGrid(w, h, 0)
	height := uniformGrid(w, h, 7)
	pathing[2][2] = 0

	points := newPoints(w, h)
	box := playableBox{xStart: 1, yStart: 1, xEnd: 3, yEnd: 3}

	walk, fly, reaper := classify(points, pathing, placement, height, box)

	if points[2][2].Walkable {
		t.Error("tile with pathing=0 and placement=0 should not be walkable")
	}
	if !points[0][0].Walkable {
		t.Error("tile with pathing=1 should be walkable")
	}
	if points[0][0].Pathable {
		t.Error("(0,0) is outside the playable box and should not be pathable")
	}
	if !points[2][2].Pathable {
		t.Error("(2,2) is inside the playable box and should be pathable")
	}
	if points[0][0].Height != 7 {
		t.Errorf("Height = %d, want 7", points[0][0].Height)
	}

	if walk[2][2] != 0 {
		t.Error("walk mask should be 0 at unwalkable tile")
	}
	if fly[0][0] != 0 {
		t.Error("fly mask should be 0 outside the playable box")
	}
	if fly[2][2] != 1 {
		t.Error("fly mask should be 1 inside the playable box regardless of walkability")
	}
	if reaper[2][2] != 0 {
		t.Error("reaper mask should mirror walk mask before Pass 3 augments it")
	}
}

func TestPlayableBoxContains(t *testing.T) {
	box := playableBox{xStart: 2, yStart: 2, xEnd: 4, yEnd: 4}
	if !box.contains(2, 2) || !box.contains(4, 4) {
		t.Error("contains() should be inclusive of both corners")
	}
	if box.contains(1, 2) || box.contains(2, 1) || box.contains(5, 4) {
		t.Error("contains() should reject points outside the box")
	}
}
