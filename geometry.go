package scmap

import (
	"github.com/aurelien-rainone/gogeo/f32"
	"github.com/aurelien-rainone/math32"
)

// Pos is an integer grid coordinate.
type Pos struct {
	X, Y int
}

// octileDiag is MULT*sqrt(2), rounded, precomputed once at package init the
// same way the teacher's f32math.go precomputes its float constants.
var octileDiag = int64(math32.Round(float32(Mult) * math32.Sqrt(2)))

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// EuclidScaled returns round(MULT * euclidean_distance(a, b)), an
// integer-scaled distance that avoids float precision loss in hot paths
// (spec.md §4.1).
func EuclidScaled(a, b Pos) int64 {
	dx := float32(a.X - b.X)
	dy := float32(a.Y - b.Y)
	d := math32.Sqrt(dx*dx + dy*dy)
	return int64(math32.Round(float32(Mult) * d))
}

// Euclid returns the euclidean distance between a and b, in map units.
func Euclid(a, b Pos) float64 {
	return float64(EuclidScaled(a, b)) / MultF64
}

// OctileScaled returns the scaled octile distance between a and b:
// MULT*max(dx,dy) + (MULT*sqrt2 - MULT)*min(dx,dy). It is used for
// adjacency tests, where a threshold of MULT*sqrt2 means "within one
// 8-neighbor step".
func OctileScaled(a, b Pos) int64 {
	dx := int64(absInt(a.X - b.X))
	dy := int64(absInt(a.Y - b.Y))
	hi, lo := dx, dy
	if dy > dx {
		hi, lo = dy, dx
	}
	return Mult*hi + (octileDiag-Mult)*lo
}

// OctileAdjacent reports whether a and b are within one 8-neighbor step of
// each other, using the scaled octile distance.
func OctileAdjacent(a, b Pos) bool {
	return OctileScaled(a, b) <= octileDiag
}

// clampToBox clamps p's coordinates to the inclusive box
// [xStart..xEnd] x [yStart..yEnd], using gogeo's float32 Clamp the same way
// the teacher clamps query extents against mesh bounds.
func clampToBox(p Pos, xStart, yStart, xEnd, yEnd int) Pos {
	return Pos{
		X: int(f32.Clamp(float32(p.X), float32(xStart), float32(xEnd))),
		Y: int(f32.Clamp(float32(p.Y), float32(yStart), float32(yEnd))),
	}
}

// RasterizeLine samples the straight line from p1 to p2 at unit intervals,
// returning the ordered, intermediate cells (excluding both endpoints). Its
// length is at most floor(d)-1, fewer when a sample rounds down onto an
// endpoint, where d is the euclidean distance between p1 and p2
// (spec.md §4.1). Used both for choke visibility tests (Pass 3) and to paint
// interior choke pixels (C6).
func RasterizeLine(p1, p2 Pos) []Pos {
	d := Euclid(p1, p2)
	if d == 0 {
		return nil
	}
	dots := int(d)
	ux := (float64(p2.X) - float64(p1.X)) / d
	uy := (float64(p2.Y) - float64(p1.Y)) / d

	samples := make([]Pos, 0, dots)
	for i := 1; i < dots; i++ {
		dx := int(float64(p1.X) + ux*float64(i))
		dy := int(float64(p1.Y) + uy*float64(i))
		if (dx == p1.X && dy == p1.Y) || (dx == p2.X && dy == p2.Y) {
			continue
		}
		samples = append(samples, Pos{X: dx, Y: dy})
	}
	return samples
}
