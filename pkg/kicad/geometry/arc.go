// Package geometry re-derives KiCad arc parameters from the path-style arc
// description EasyEDA exports (start point, end point, radius, sweep
// direction). KiCad symbols encode an arc by three points on the circle, so
// the converter needs the center and an interior midpoint back out of the
// path form. All functions are pure.
package geometry

import (
	"fmt"
	"math"
)

// Point is a 2D coordinate in symbol units.
type Point struct {
	X float64
	Y float64
}

// ArcCenter solves for the circle center at distance radius from both start
// and end, on the side selected by direction (+1 or -1 for the two sweep
// directions). The center sits on the chord's perpendicular bisector, offset
// from the chord midpoint by sqrt(r^2 - (chord/2)^2).
//
// A zero-length chord or a radius smaller than half the chord has no
// solution; both are precondition violations and come back as errors rather
// than NaN coordinates.
func ArcCenter(start, end Point, direction, radius float64) (Point, error) {
	chord := math.Hypot(end.X-start.X, end.Y-start.Y)
	if chord == 0 {
		return Point{}, fmt.Errorf("degenerate arc: start and end coincide at (%g, %g)", start.X, start.Y)
	}
	if radius < chord/2 {
		return Point{}, fmt.Errorf("radius %g too small for chord length %g", radius, chord)
	}

	midX := (start.X + end.X) / 2
	midY := (start.Y + end.Y) / 2

	// Unit vector along the chord.
	u := (end.X - start.X) / chord
	v := (end.Y - start.Y) / chord

	offset := math.Sqrt(radius*radius - chord*chord/4)

	return Point{
		X: midX - direction*offset*v,
		Y: midY + direction*offset*u,
	}, nil
}

// ArcEndAngle recovers the end angle in degrees from the horizontal
// projection of the end point, folded into the 180-degree offset eeschema
// expects.
//
// The large-arc flag does not change the result today: both sweep cases
// collapse to the same fold. TODO: confirm the short-sweep convention against
// eeschema before differentiating the two branches.
func ArcEndAngle(centerX, endX, radius float64, largeArc bool) float64 {
	theta := math.Acos((endX-centerX)/radius) * 180 / math.Pi
	if largeArc {
		return 180 + theta
	}
	return 180 + theta
}

// ArcMidpoint returns the point on the circle at the angle bisecting
// angleStart and angleEnd, the interior point of KiCad's three-point arc
// encoding. The bisector is fed to sin/cos as-is, matching the exporter
// formula this projects.
func ArcMidpoint(center Point, radius, angleStart, angleEnd float64) Point {
	bisect := (angleStart + angleEnd) / 2
	return Point{
		X: center.X + radius*math.Cos(bisect),
		Y: center.Y + radius*math.Sin(bisect),
	}
}
