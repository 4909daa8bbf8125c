// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iconvg

import (
	"math"
)

// angle returns the angle between two vectors u and v.
func angle(ux, uy, vx, vy float64) float64 {
	uNorm := math.Sqrt((ux * ux) + (uy * uy))
	vNorm := math.Sqrt((vx * vx) + (vy * vy))
	norm := uNorm * vNorm
	cosine := (ux*vx + uy*vy) / norm
	ret := 0.0
	if cosine <= -1 {
		ret = math.Pi
	} else if cosine >= +1 {
		ret = 0
	} else {
		ret = math.Acos(cosine)
	}
	if (ux * vy) < (uy * vx) {
		return -ret
	}
	return +ret
}

// arcSegmentTo approximates one arc segment, spanning no more than 90 degrees
// and change, with a single cubic Bézier curve.
func arcSegmentTo(dst Sink, cx, cy, theta1, theta2, rx, ry, cosPhi, sinPhi float64) error {
	halfDeltaTheta := (theta2 - theta1) * 0.5
	q := math.Sin(halfDeltaTheta * 0.5)
	t := (8 * q * q) / (3 * math.Sin(halfDeltaTheta))
	cos1 := math.Cos(theta1)
	sin1 := math.Sin(theta1)
	cos2 := math.Cos(theta2)
	sin2 := math.Sin(theta2)

	ix1 := rx * (+cos1 - (t * sin1))
	iy1 := ry * (+sin1 + (t * cos1))
	ix2 := rx * (+cos2 + (t * sin2))
	iy2 := ry * (+sin2 - (t * cos2))
	ix3 := rx * (+cos2)
	iy3 := ry * (+sin2)

	return dst.PathCubeTo(
		float32(cx+(cosPhi*ix1)-(sinPhi*iy1)),
		float32(cy+(sinPhi*ix1)+(cosPhi*iy1)),
		float32(cx+(cosPhi*ix2)-(sinPhi*iy2)),
		float32(cy+(sinPhi*ix2)+(cosPhi*iy2)),
		float32(cx+(cosPhi*ix3)-(sinPhi*iy3)),
		float32(cy+(sinPhi*ix3)+(cosPhi*iy3)),
	)
}

// ArcTo approximates an elliptical arc, from the initial point (x0, y0) to
// the final point (x, y), with one or more cubic Bézier curves, calling dst's
// PathCubeTo method for each one. If either radius is zero (or NaN), the arc
// degenerates to a straight line and dst's PathLineTo method is called once
// instead.
//
// The arc is parameterized in SVG endpoint form: xAxisRotation is a fraction,
// in the range [0, 1), of a complete rotation, and the largeArc and sweep
// flags select which of the four candidate arcs to draw. All co-ordinates are
// in ViewBox (source, not destination) space.
//
// The decoder itself does not call ArcTo: it forwards arcs to the Sink's
// PathArcTo method. ArcTo is for Sink implementations whose backends have no
// native elliptical arc support.
func ArcTo(dst Sink, x0, y0, rx32, ry32, xAxisRotation float32, largeArc, sweep bool, x, y float32) error {
	const tau = 2 * math.Pi

	// "Conversion from endpoint to center parameterization" per
	// https://www.w3.org/TR/SVG/implnote.html#ArcConversionEndpointToCenter
	//
	// There seems to be a bug in the spec's "implementation notes". Actual
	// implementations, such as librsvg and Batik, do something slightly
	// different (marked with a †).

	// (†) The abs isn't part of the spec. Neither is checking that rx and ry
	// are non-zero (and non-NaN).
	rx := math.Abs(float64(rx32))
	ry := math.Abs(float64(ry32))
	if !(rx > 0) || !(ry > 0) {
		return dst.PathLineTo(x, y)
	}

	x1 := float64(x0)
	y1 := float64(y0)
	x2 := float64(x)
	y2 := float64(y)
	phi := tau * float64(xAxisRotation)

	// Step 1: Compute (x1′, y1′).

	halfDx := (x1 - x2) / 2
	halfDy := (y1 - y2) / 2
	cosPhi := math.Cos(phi)
	sinPhi := math.Sin(phi)
	x1Prime := +(cosPhi * halfDx) + (sinPhi * halfDy)
	y1Prime := -(sinPhi * halfDx) + (cosPhi * halfDy)

	// Step 2: Compute (cx′, cy′).

	rxSq := rx * rx
	rySq := ry * ry
	x1PrimeSq := x1Prime * x1Prime
	y1PrimeSq := y1Prime * y1Prime

	// (†) Check that the radii are large enough.
	radiiCheck := (x1PrimeSq / rxSq) + (y1PrimeSq / rySq)
	if radiiCheck > 1 {
		s := math.Sqrt(radiiCheck)
		rx *= s
		ry *= s
		rxSq = rx * rx
		rySq = ry * ry
	}

	denom := (rxSq * y1PrimeSq) + (rySq * x1PrimeSq)
	step2 := 0.0
	// (†) Clamp the radicand to zero before taking the square root.
	if a := ((rxSq * rySq) / denom) - 1; a > 0 {
		step2 = math.Sqrt(a)
	}
	if largeArc == sweep {
		step2 = -step2
	}
	cxPrime := +(step2 * rx * y1Prime) / ry
	cyPrime := -(step2 * ry * x1Prime) / rx

	// Step 3: Compute (cx, cy) from (cx′, cy′).

	cx := +(cosPhi * cxPrime) - (sinPhi * cyPrime) + ((x1 + x2) / 2)
	cy := +(sinPhi * cxPrime) + (cosPhi * cyPrime) + ((y1 + y2) / 2)

	// Step 4: Compute θ1 and Δθ.

	ax := (+x1Prime - cxPrime) / rx
	ay := (+y1Prime - cyPrime) / ry
	bx := (-x1Prime - cxPrime) / rx
	by := (-y1Prime - cyPrime) / ry
	theta1 := angle(1, 0, ax, ay)
	deltaTheta := angle(ax, ay, bx, by)
	if sweep {
		if deltaTheta < 0 {
			deltaTheta += tau
		}
	} else {
		if deltaTheta > 0 {
			deltaTheta -= tau
		}
	}

	// This ends the endpoint-to-center conversion. What follows is specific to
	// this implementation: the arc is approximated by one cubic Bézier curve
	// per segment of at most (π/2 + 0.001) radians. The 0.001 is a numerical
	// cushion, so that e.g. a half circle is two segments, not three.
	n := int(math.Ceil(math.Abs(deltaTheta) / ((math.Pi / 2) + 0.001)))
	invN := 1 / float64(n)
	for i := 0; i < n; i++ {
		if err := arcSegmentTo(dst, cx, cy,
			theta1+(deltaTheta*float64(i+0)*invN),
			theta1+(deltaTheta*float64(i+1)*invN),
			rx, ry, cosPhi, sinPhi); err != nil {
			return err
		}
	}
	return nil
}
