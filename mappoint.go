package scmap

// CliffType identifies which cliff class a tile may be climbed against.
type CliffType int

const (
	// CliffNone means the tile is not part of any climbable cliff face.
	CliffNone CliffType = iota
	// CliffLow marks a half-height cliff ascent.
	CliffLow
	// CliffHigh marks a full-height cliff ascent.
	CliffHigh
	// CliffBoth marks a tile reachable by climbing from either a Low or a
	// High ascent.
	CliffBoth
)

func (c CliffType) String() string {
	switch c {
	case CliffNone:
		return "None"
	case CliffLow:
		return "Low"
	case CliffHigh:
		return "High"
	case CliffBoth:
		return "Both"
	default:
		return "Unknown"
	}
}

// combine folds a newly detected cliff type into an existing one, producing
// Both when Low and High are both present on the same tile.
func (c CliffType) combine(other CliffType) CliffType {
	if c == other || other == CliffNone {
		return c
	}
	if c == CliffNone {
		return other
	}
	return CliffBoth
}

// MapPoint is the annotated record for a single grid cell. It is produced by
// Pass 1 and mutated only by Pass 2 and Pass 3; once NewMap returns, every
// MapPoint in the matrix is read-only for the lifetime of the Map.
type MapPoint struct {
	// Walkable reports whether ground units can stand on this tile
	// (pathing or placement is non-zero).
	Walkable bool
	// Pathable reports whether the tile lies within the playable bounding
	// box supplied at construction.
	Pathable bool
	// Height is the raw terrain height, in units of 1/16th of a
	// cliff-step.
	Height int

	// CliffType is the cliff class this tile may be climbed against.
	// CliffType != CliffNone only if at least one 4-neighbor shares the
	// same CliffType (invariant iii).
	CliffType CliffType
	// Climbable reports whether a unit may climb onto this tile from an
	// adjacent lower tile, after climb smoothing (Pass 3).
	Climbable bool

	// IsBorder reports that this is a non-walkable, pathable tile with at
	// least one walkable 8-neighbor (invariant i).
	IsBorder bool
	// IsChoke reports that this tile belongs to at least one accepted
	// choke segment, as an endpoint or as interior.
	IsChoke bool
	// OverlordSpot reports that this tile is part of a contiguous
	// elevated vantage plateau (invariant ii).
	OverlordSpot bool

	// overlordCandidate is the Pass 2 precursor to OverlordSpot: a tile
	// whose height clears at least one vertical neighbor by Difference.
	// It is resolved (confirmed or rejected) by the Pass 3 flood-fill.
	overlordCandidate bool
}
