// Package pathfind implements the grid path-finder collaborator required by
// scmap (spec.md §6): a bounded-radius Dijkstra search over a 0/1 walkability
// mask, plus the small rectangular-block editing surface scmap.Map delegates
// to it. It is the generalization of the teacher's node-pool/binary-heap
// Dijkstra machinery (detour's node.go, nodequeue.go) from navmesh polygon
// references to plain grid cells.
package pathfind

import "math"

// step costs for the 8-connected grid graph, in map units. Diagonal moves
// cost sqrt(2) the same way octile distance weights diagonals elsewhere in
// this module.
const (
	cardinalCost = 1.0
	diagonalCost = math.Sqrt2
)

var neighborOffsets = [8][3]float64{
	{-1, -1, diagonalCost}, {0, -1, cardinalCost}, {1, -1, diagonalCost},
	{-1, 0, cardinalCost}, {1, 0, cardinalCost},
	{-1, 1, diagonalCost}, {0, 1, cardinalCost}, {1, 1, diagonalCost},
}

// Pos is a grid coordinate, duplicated from the parent scmap package's Pos
// so that pathfind has no import cycle back into it; the two are
// structurally identical and freely convertible by callers.
type Pos struct {
	X, Y int
}

// Visit is one entry of a bounded Dijkstra search result: a reached cell
// together with its graph distance from the search origin.
type Visit struct {
	Pos      Pos
	Distance float64
}

// Grid is the path-finder collaborator: a 0/1 walkability mask plus the
// Dijkstra search and block-editing operations scmap.Map needs from it
// (spec.md §6, §9 "express it as an abstract interface, not inheritance").
type Grid struct {
	width, height int
	initial       [][]int     // the mask as originally supplied, kept for ResetToInitial.
	walk          [][]bool    // current walkability, mutated by CreateBlock/RemoveBlock.
	influence     [][]float64 // accumulated influence weight, mutated by AddInfluence.
}

// NewFromMask builds a Grid from a rectangular 0/1 mask. It fails with
// StatusFailure|StatusEmptyMask if the mask is empty, or
// StatusFailure|StatusRaggedMask if its rows are not all the same length.
func NewFromMask(mask [][]int) (*Grid, error) {
	width := len(mask)
	if width == 0 || len(mask[0]) == 0 {
		return nil, StatusFailure | StatusEmptyMask
	}
	height := len(mask[0])
	walk := make([][]bool, width)
	initial := make([][]int, width)
	influence := make([][]float64, width)
	for x := range mask {
		if len(mask[x]) != height {
			return nil, StatusFailure | StatusRaggedMask
		}
		walk[x] = make([]bool, height)
		initial[x] = make([]int, height)
		influence[x] = make([]float64, height)
		copy(initial[x], mask[x])
		for y := range mask[x] {
			walk[x][y] = mask[x][y] > 0
		}
	}
	return &Grid{width: width, height: height, initial: initial, walk: walk, influence: influence}, nil
}

// Width and Height return the grid's dimensions.
func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// dijkstra runs a bounded Dijkstra search from origin, expanding only
// through walkable cells, and returns every cell reached within radius
// (inclusive), together with its graph distance. DijkstraFrom and
// ReverseDijkstraFrom both call this: the grid's adjacency is undirected
// (a walkable cell is walkable from either side), so outbound and inbound
// searches over it visit the same set of cells — see DESIGN.md for why
// the spec nonetheless keeps them as two named operations.
//
// requireWalkableOrigin gates whether origin itself must be walkable.
// DijkstraFrom requires it (a normal path search can't start on
// unwalkable terrain); ReverseDijkstraFrom doesn't, since choke detection
// searches from border tiles, which are unwalkable by definition
// (invariant i) — only the search's expansion through neighbors is
// filtered by walkability.
func (g *Grid) dijkstra(origin Pos, radius float64, requireWalkableOrigin bool) []Visit {
	if !g.inBounds(origin.X, origin.Y) {
		return nil
	}
	if requireWalkableOrigin && !g.walk[origin.X][origin.Y] {
		return nil
	}

	pool := newNodePool(g.width + 1)
	open := newNodeQueue(64)

	start := pool.get(origin.X, origin.Y)
	start.total = 0
	start.state = stateOpen
	open.push(start)

	var result []Visit
	for !open.empty() {
		cur := open.pop()
		cur.state = stateClosed
		result = append(result, Visit{Pos: Pos{X: cur.x, Y: cur.y}, Distance: cur.total})

		for _, off := range neighborOffsets {
			nx, ny := cur.x+int(off[0]), cur.y+int(off[1])
			if !g.inBounds(nx, ny) || !g.walk[nx][ny] {
				continue
			}
			next := pool.get(nx, ny)
			if next.state == stateClosed {
				continue
			}
			cand := cur.total + off[2]
			if cand > radius {
				continue
			}
			if next.state == stateUnvisited {
				next.total = cand
				next.parent = pool.id(cur.x, cur.y)
				next.state = stateOpen
				open.push(next)
			} else if cand < next.total {
				next.total = cand
				next.parent = pool.id(cur.x, cur.y)
				open.modify(next)
			}
		}
	}
	return result
}

// DijkstraFrom returns every walkable cell reachable from origin within
// radius graph distance, outbound. origin must itself be walkable; an
// unwalkable origin returns nil.
func (g *Grid) DijkstraFrom(origin Pos, radius float64) []Visit {
	return g.dijkstra(origin, radius, true)
}

// ReverseDijkstraFrom returns every walkable cell that can reach origin
// within radius graph distance, inbound. Unlike DijkstraFrom, origin need
// not itself be walkable, so it can be called directly on a border tile.
func (g *Grid) ReverseDijkstraFrom(origin Pos, radius float64) []Visit {
	return g.dijkstra(origin, radius, false)
}

// rectBounds clamps the rectangle of the given size centered on center to
// the grid, returning half-open [x0,x1) x [y0,y1) bounds.
func (g *Grid) rectBounds(center Pos, size [2]int) (x0, x1, y0, y1 int) {
	hw, hh := size[0]/2, size[1]/2
	x0, x1 = center.X-hw, center.X+(size[0]-hw)
	y0, y1 = center.Y-hh, center.Y+(size[1]-hh)
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > g.width {
		x1 = g.width
	}
	if y1 > g.height {
		y1 = g.height
	}
	return
}

// CreateBlock marks every cell in the rectangle of the given size centered
// on center as non-walkable, simulating a structure placed on the map.
func (g *Grid) CreateBlock(center Pos, size [2]int) {
	x0, x1, y0, y1 := g.rectBounds(center, size)
	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			g.walk[x][y] = false
		}
	}
}

// RemoveBlock restores every cell in the rectangle of the given size
// centered on center to its originally supplied walkability, undoing a
// prior CreateBlock (or any other edit) over that region.
func (g *Grid) RemoveBlock(center Pos, size [2]int) {
	x0, x1, y0, y1 := g.rectBounds(center, size)
	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			g.walk[x][y] = g.initial[x][y] > 0
		}
	}
}

// CreateBlocks applies CreateBlock at every center.
func (g *Grid) CreateBlocks(centers []Pos, size [2]int) {
	for _, c := range centers {
		g.CreateBlock(c, size)
	}
}

// RemoveBlocks applies RemoveBlock at every center.
func (g *Grid) RemoveBlocks(centers []Pos, size [2]int) {
	for _, c := range centers {
		g.RemoveBlock(c, size)
	}
}

// ResetToInitial restores every cell to its originally supplied
// walkability, discarding all CreateBlock/RemoveBlock edits.
func (g *Grid) ResetToInitial() {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			g.walk[x][y] = g.initial[x][y] > 0
		}
	}
}

// Walkable reports the current walkability of (x, y).
func (g *Grid) Walkable(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.walk[x][y]
}

// FindDestinationsInline returns every walkable cell within distance of
// position, along with its distance — the projection AddInfluenceWalk
// (map.go) needs to spread influence outward from a source cell. It is a
// thin, differently-named wrapper over the same bounded search DijkstraFrom
// performs, matching the shape of the original's
// find_destinations_in_inline.
func (g *Grid) FindDestinationsInline(position Pos, distance float64) []Visit {
	return g.DijkstraFrom(position, distance)
}

// AddInfluence accumulates value into pos's influence weight, used by
// scmap.Map.AddInfluenceWalk to spread decaying influence outward from a
// source cell without touching walkability.
func (g *Grid) AddInfluence(pos Pos, value float64) {
	if !g.inBounds(pos.X, pos.Y) {
		return
	}
	g.influence[pos.X][pos.Y] += value
}

// Influence returns the accumulated influence weight at (x, y).
func (g *Grid) Influence(x, y int) float64 {
	if !g.inBounds(x, y) {
		return 0
	}
	return g.influence[x][y]
}

// ResetInfluence zeroes every cell's accumulated influence weight.
func (g *Grid) ResetInfluence() {
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			g.influence[x][y] = 0
		}
	}
}
