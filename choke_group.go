package scmap

// Choke is a grouped choke point: one or more adjacent ChokeSegments that
// share the same two opposing borders, consolidated into a single
// left/right side pair and a main line through their centroids (spec.md
// §3, §4.5 "choke grouping"; glossary "Choke").
type Choke struct {
	Lines []ChokeSegment
	Side1 []Pos
	Side2 []Pos
	Pixels []Pos

	// MainLine is the pair of centroids of Side1 and Side2.
	MainLine [2]Pos2F
}

// Pos2F is a floating-point map position, used for centroids that don't
// land on an integer tile.
type Pos2F struct {
	X, Y float64
}

// groupChokes merges ChokeSegments into Choke objects by agglomerative
// growth: starting from each not-yet-consumed segment, it repeatedly pulls
// in any other not-yet-consumed segment that has some existing Side1 member
// within one octile step of its A endpoint and some existing Side2 member
// within one octile step of its B endpoint (or, failing that, matches the
// same test with A and B swapped, in which case it is added flipped), until
// no more segments can be added (spec.md §4.5, design note "Orientation asymmetry in choke
// grouping"; mirrors the original's nested `for k in side1 { for l in
// side2 { ... } }` scan over all accumulated members, not just the most
// recently added line).
//
// The reference implementation's grow loop mixed `>` with `||` on one
// branch and `&&` on the other, so a segment could be absorbed by matching
// only one endpoint. This version requires both endpoint octile distances
// to be strictly positive (i.e. the new segment is genuinely closer to the
// existing group than a duplicate) before accepting a segment, matching
// spec.md §9's resolution.
func groupChokes(segments []ChokeSegment, points [][]MapPoint, settings Settings) []*Choke {
	used := make([]bool, len(segments))
	var chokes []*Choke

	for i := range segments {
		if used[i] {
			continue
		}
		used[i] = true

		c := &Choke{
			Lines: []ChokeSegment{segments[i]},
			Side1: []Pos{segments[i].A},
			Side2: []Pos{segments[i].B},
		}
		grown := true
		for grown {
			grown = false
			for j := range segments {
				if used[j] {
					continue
				}
				seg := segments[j]
				if !chokeAdjoins(c, seg) {
					// try the opposite orientation; a match is added
					// flipped so its endpoints land on the matching sides.
					seg = ChokeSegment{A: seg.B, B: seg.A}
					if !chokeAdjoins(c, seg) {
						continue
					}
				}
				addChokeLine(c, seg)
				used[j] = true
				grown = true
			}
		}

		finalizeChoke(c, points)
		chokes = append(chokes, c)
	}
	return chokes
}

// addChokeLine appends seg to c.Lines and folds its endpoints into
// c.Side1/c.Side2, deduplicating exact repeats.
func addChokeLine(c *Choke, seg ChokeSegment) {
	c.Lines = append(c.Lines, seg)
	if !containsPos(c.Side1, seg.A) {
		c.Side1 = append(c.Side1, seg.A)
	}
	if !containsPos(c.Side2, seg.B) {
		c.Side2 = append(c.Side2, seg.B)
	}
}

func containsPos(pts []Pos, p Pos) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}

// chokeAdjoins reports whether seg can be grown into c: some member of
// c.Side1 must be within one octile step of seg.A, and some member of
// c.Side2 must be within one octile step of seg.B, per spec.md §4.5's
// "choke grouping" adjacency rule (the original's octile_distance(...) <=
// SQRT2 test, i.e. OctileAdjacent) — not the choke-distance-max threshold,
// which bounds a single segment's span, not grouping adjacency. Both
// distances must also be strictly positive (spec.md §9's symmetric fix:
// neither endpoint may be a zero-distance duplicate).
func chokeAdjoins(c *Choke, seg ChokeSegment) bool {
	for _, p1 := range c.Side1 {
		dA := OctileScaled(p1, seg.A)
		if dA == 0 || !OctileAdjacent(p1, seg.A) {
			continue
		}
		for _, p2 := range c.Side2 {
			dB := OctileScaled(p2, seg.B)
			if dB > 0 && OctileAdjacent(p2, seg.B) {
				return true
			}
		}
	}
	return false
}

// finalizeChoke computes a Choke's Pixels and MainLine from its
// accumulated Lines (Side1/Side2 are already maintained incrementally by
// addChokeLine as the group grows), fixing the reference implementation's
// calc_final_line bug where Side2's centroid was computed by re-summing
// Side1's points (spec.md §9, design note "calc_final_line copy-paste
// bug"): here each side sums only its own points.
func finalizeChoke(c *Choke, points [][]MapPoint) {
	seenPix := make(map[Pos]bool)

	for _, line := range c.Lines {
		for _, p := range RasterizeLine(line.A, line.B) {
			if !seenPix[p] {
				seenPix[p] = true
				c.Pixels = append(c.Pixels, p)
			}
		}
		if !seenPix[line.A] {
			seenPix[line.A] = true
			c.Pixels = append(c.Pixels, line.A)
		}
		if !seenPix[line.B] {
			seenPix[line.B] = true
			c.Pixels = append(c.Pixels, line.B)
		}
	}

	c.MainLine[0] = centroid(c.Side1)
	c.MainLine[1] = centroid(c.Side2)
}

// centroid returns the average position of pts; each side computes its
// own centroid independently (spec.md §9's fix for calc_final_line).
func centroid(pts []Pos) Pos2F {
	if len(pts) == 0 {
		return Pos2F{}
	}
	var sumX, sumY float64
	for _, p := range pts {
		sumX += float64(p.X)
		sumY += float64(p.Y)
	}
	n := float64(len(pts))
	return Pos2F{X: sumX / n, Y: sumY / n}
}
