package scmap

// Difference is the minimum vertical step, in height-map units, required for
// a non-walkable plateau to count as an overlord vantage point.
const Difference = 16

// Mult is the fixed-point scale factor used throughout distance computations
// so that choke-detection geometry can be compared without float drift.
const Mult = 1000

// MultF64 is the floating-point form of Mult, used when converting a scaled
// integer distance back into map units.
const MultF64 = float64(Mult)

const (
	// ChokeDistanceMin and ChokeDistanceMax bound the Euclidean distance, in
	// map units, that a choke segment may span.
	ChokeDistanceMin = 2.0
	ChokeDistanceMax = 13.0

	// ChokeBorderGraphDistance is the radius, in graph distance, within
	// which two border tiles are considered part of the same wall (and
	// therefore not opposing sides of a choke).
	ChokeBorderGraphDistance = 30.0
)

// climbLowMin, climbLowMax, climbHighMin and climbHighMax bound the
// height-step tolerance bands the climb rule (climb.go) uses to classify a
// cliff ascent as Low (roughly half a cliff-step) or High (a full step).
const (
	climbLowMin   = 8
	climbLowMax   = 16
	climbHighMin  = 16
	climbHighMax  = 24
)
