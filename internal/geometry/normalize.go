// Package geometry converts pointer gestures expressed in container
// pixel coordinates into resolution independent percent-space rectangles.
// All functions are pure; the gesture state lives in the session package.
package geometry

import "math"

// Point is a pixel offset within a container rectangle.
type Point struct {
	X float64
	Y float64
}

// Size is the pixel size of the container the gesture was drawn in.
type Size struct {
	Width  float64
	Height float64
}

// Rect is a percent-space rectangle. X and Y locate the top-left corner
// as percentages of the container frame (0-100); Width and Height are
// always non-negative.
type Rect struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// NormalizeDrag converts a drag from start to current into a percent-space
// rectangle. Drags in any direction are canonicalized so the origin is the
// componentwise minimum and width/height are non-negative. Points outside
// the container are clamped to its bounds.
//
// Returns ok=false when the container has no positive area, which happens
// before media metadata is known; no percentage math is meaningful then.
func NormalizeDrag(start, current Point, container Size) (Rect, bool) {
	if container.Width <= 0 || container.Height <= 0 {
		return Rect{}, false
	}

	x1 := clamp(start.X, 0, container.Width)
	y1 := clamp(start.Y, 0, container.Height)
	x2 := clamp(current.X, 0, container.Width)
	y2 := clamp(current.Y, 0, container.Height)

	left := math.Min(x1, x2)
	top := math.Min(y1, y2)

	return Rect{
		X:      left / container.Width * 100,
		Y:      top / container.Height * 100,
		Width:  math.Abs(x2-x1) / container.Width * 100,
		Height: math.Abs(y2-y1) / container.Height * 100,
	}, true
}

// MeetsMinimum reports whether both dimensions strictly exceed the minimum
// percent threshold. Sub-threshold rectangles are pointer noise and must
// not be stored.
func (r Rect) MeetsMinimum(minPercent float64) bool {
	return r.Width > minPercent && r.Height > minPercent
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	default:
		return v
	}
}
