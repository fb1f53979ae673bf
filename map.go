package scmap

import "github.com/arl/go-scmap/pathfind"

// Map is the finished preprocessing result: four path-finder collaborators
// (ground, air, colossus, reaper), the annotated point matrix, the
// confirmed overlord spots and the grouped chokes (spec.md §3, §6).
//
// Map owns all of its state; there is no package-level mutable state and
// no singleton (spec.md §9, design note "Global mutable state").
type Map struct {
	Width, Height int

	Points [][]MapPoint

	Ground   *pathfind.Grid
	Air      *pathfind.Grid
	Colossus *pathfind.Grid
	Reaper   *pathfind.Grid

	OverlordSpots []OverlordSpot
	ChokeSegments []ChokeSegment
	Chokes        []*Choke

	// InfluenceColossusMap and InfluenceReaperMap gate whether
	// AddInfluenceWalk also spreads influence over the colossus/reaper
	// collaborators, mirroring the reference's toggle fields.
	InfluenceColossusMap bool
	InfluenceReaperMap   bool

	box playableBox
}

// NewMap runs the full pipeline with the package's default Settings. It is
// a thin convenience wrapper over NewMapWithSettings.
func NewMap(pathing, placement, height [][]int, xStart, yStart, xEnd, yEnd int, log *BuildLog) (*Map, error) {
	return NewMapWithSettings(pathing, placement, height, xStart, yStart, xEnd, yEnd, NewSettings(), log)
}

// NewMapWithSettings runs the full pipeline over the three input grids
// (pathing, placement, height, all [x][y]-indexed, equal dimensions)
// restricted to the inclusive playable box [xStart..xEnd] x
// [yStart..yEnd]: Pass 1 classification, Pass 2 border/climb marking,
// ground collaborator construction, Pass 3 choke/overlord/cliff
// resolution, and C6 choke grouping, in that order (spec.md §4, grounded
// on the reference's Map::new). settings overrides every tunable
// threshold the pipeline uses.
//
// log may be nil; every BuildLog method is then a no-op.
func NewMapWithSettings(pathing, placement, height [][]int, xStart, yStart, xEnd, yEnd int, settings Settings, log *BuildLog) (*Map, error) {
	width := len(pathing)
	if width == 0 || len(pathing[0]) == 0 {
		return nil, ErrInvalidInput
	}
	ht := len(pathing[0])
	if len(placement) != width || len(height) != width {
		return nil, ErrInvalidInput
	}
	for x := 0; x < width; x++ {
		if len(pathing[x]) != ht || len(placement[x]) != ht || len(height[x]) != ht {
			return nil, ErrInvalidInput
		}
	}
	if xStart < 0 || yStart < 0 || xEnd >= width || yEnd >= ht || xStart > xEnd || yStart > yEnd {
		return nil, ErrInvalidInput
	}

	box := playableBox{xStart: xStart, yStart: yStart, xEnd: xEnd, yEnd: yEnd}
	points := make([][]MapPoint, width)
	for x := range points {
		points[x] = make([]MapPoint, ht)
	}

	log.StartTimer(TimerPass1)
	walk, fly, reaper := classify(points, pathing, placement, height, box)
	log.StopTimer(TimerPass1)

	log.StartTimer(TimerPass2)
	classifyBordersAndClimbs(points, width, ht, box, settings)
	log.StopTimer(TimerPass2)

	log.StartTimer(TimerGroundPathfinder)
	ground, err := pathfind.NewFromMask(walk)
	if err != nil {
		return nil, ErrCollaboratorUnavailable
	}
	log.StopTimer(TimerGroundPathfinder)

	log.StartTimer(TimerPass3)
	segments, spots := runPass3(points, ground, width, ht, box, reaper, settings, log)
	log.StopTimer(TimerPass3)

	log.StartTimer(TimerChokeGroup)
	chokes := groupChokes(segments, points, settings)
	log.StopTimer(TimerChokeGroup)

	air, err := pathfind.NewFromMask(fly)
	if err != nil {
		return nil, ErrCollaboratorUnavailable
	}
	// colossus and reaper collaborators both start from the final reaper
	// mask (climb-augmented walkability), matching the reference's
	// reaper_map.clone() into colossus_pathing.
	colossusMask := make([][]int, width)
	for x := range reaper {
		colossusMask[x] = append([]int(nil), reaper[x]...)
	}
	colossus, err := pathfind.NewFromMask(colossusMask)
	if err != nil {
		return nil, ErrCollaboratorUnavailable
	}
	reaperGrid, err := pathfind.NewFromMask(reaper)
	if err != nil {
		return nil, ErrCollaboratorUnavailable
	}

	log.Progressf("map built: %dx%d, %d choke segments, %d chokes, %d overlord spots",
		width, ht, len(segments), len(chokes), len(spots))

	return &Map{
		Width: width, Height: ht,
		Points:        points,
		Ground:        ground,
		Air:           air,
		Colossus:      colossus,
		Reaper:        reaperGrid,
		OverlordSpots: spots,
		ChokeSegments: segments,
		Chokes:        chokes,
		box:           box,
	}, nil
}

// Reset discards every CreateBlock/RemoveBlock edit on all four
// collaborators, restoring their originally supplied walkability.
func (m *Map) Reset() {
	m.Ground.ResetToInitial()
	m.Air.ResetToInitial()
	m.Colossus.ResetToInitial()
	m.Reaper.ResetToInitial()
}

// CreateBlock marks the rectangle of the given size centered on center as
// non-walkable on the ground, colossus and reaper collaborators (air is
// unaffected: flying units ignore ground structures).
func (m *Map) CreateBlock(center pathfind.Pos, size [2]int) {
	m.Ground.CreateBlock(center, size)
	m.Colossus.CreateBlock(center, size)
	m.Reaper.CreateBlock(center, size)
}

// RemoveBlock undoes a prior CreateBlock (or any other edit) over the
// rectangle of the given size centered on center, on the same three
// collaborators CreateBlock affects.
func (m *Map) RemoveBlock(center pathfind.Pos, size [2]int) {
	m.Ground.RemoveBlock(center, size)
	m.Colossus.RemoveBlock(center, size)
	m.Reaper.RemoveBlock(center, size)
}

// CreateBlocks applies CreateBlock at every center.
func (m *Map) CreateBlocks(centers []pathfind.Pos, size [2]int) {
	for _, c := range centers {
		m.CreateBlock(c, size)
	}
}

// RemoveBlocks applies RemoveBlock at every center.
func (m *Map) RemoveBlocks(centers []pathfind.Pos, size [2]int) {
	for _, c := range centers {
		m.RemoveBlock(c, size)
	}
}

// groundInfluenceMaps returns the collaborators AddInfluenceWalk spreads
// influence over: always ground, plus colossus and/or reaper when their
// toggles are set (spec.md §6, supplemented feature "AddInfluenceWalk").
func (m *Map) groundInfluenceMaps() []*pathfind.Grid {
	maps := []*pathfind.Grid{m.Ground}
	if m.InfluenceColossusMap {
		maps = append(maps, m.Colossus)
	}
	if m.InfluenceReaperMap {
		maps = append(maps, m.Reaper)
	}
	return maps
}

// AddInfluenceWalk adds a decaying influence value around every position in
// positions, (1 - d/distance) * max where d is a reached cell's graph
// distance from the position, to every collaborator groundInfluenceMaps
// selects. A position whose ground tile is unwalkable is skipped (spec.md
// §6, supplemented feature).
//
// This adds to the collaborators' influence weights only; it changes
// neither their walkability nor Points.
func (m *Map) AddInfluenceWalk(positions []pathfind.Pos, max, distance float64) error {
	if distance <= 0 {
		return ErrInvalidInput
	}
	mult := 1.0 / distance
	maps := m.groundInfluenceMaps()

	for _, pos := range positions {
		if !m.Ground.Walkable(pos.X, pos.Y) {
			continue
		}

		destinations := m.Ground.FindDestinationsInline(pos, distance)
		for _, dest := range destinations {
			if dest.Distance >= distance {
				continue
			}
			value := max * (1 - dest.Distance*mult)
			for _, grid := range maps {
				grid.AddInfluence(dest.Pos, value)
			}
		}
	}
	return nil
}

// DrawClimbs renders a debug overlay matrix matching the reference's
// draw_climbs: 0 unwalkable, 1 climbable, 2 plain walkable, 3/5/4
// low/high/both cliff, 6 overlord spot.
func (m *Map) DrawClimbs() [][]int {
	out := make([][]int, m.Width)
	for x := 0; x < m.Width; x++ {
		out[x] = make([]int, m.Height)
		for y := 0; y < m.Height; y++ {
			p := m.Points[x][y]
			switch {
			case m.Ground.Walkable(x, y):
				switch p.CliffType {
				case CliffHigh:
					out[x][y] = 5
				case CliffBoth:
					out[x][y] = 4
				case CliffLow:
					out[x][y] = 3
				default:
					out[x][y] = 2
				}
			case p.Climbable:
				out[x][y] = 1
			case p.OverlordSpot:
				out[x][y] = 6
			}
		}
	}
	return out
}

// DrawChokes renders a debug overlay matrix matching the reference's
// draw_chokes: 175 border-and-choke, 255 border-only, 100 choke-only.
func (m *Map) DrawChokes() [][]int {
	out := make([][]int, m.Width)
	for x := 0; x < m.Width; x++ {
		out[x] = make([]int, m.Height)
		for y := 0; y < m.Height; y++ {
			p := m.Points[x][y]
			switch {
			case p.IsBorder && p.IsChoke:
				out[x][y] = 175
			case p.IsBorder:
				out[x][y] = 255
			case p.IsChoke:
				out[x][y] = 100
			}
		}
	}
	return out
}

// Borders returns every border tile position (spec.md §6, supplemented
// feature "Borders()").
func (m *Map) Borders() []Pos {
	var result []Pos
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			if m.Points[x][y].IsBorder {
				result = append(result, Pos{X: x, Y: y})
			}
		}
	}
	return result
}
