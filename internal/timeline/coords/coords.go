// Package coords converts between timeline time and screen-space pixels.
// All functions are pure; viewport scroll is applied by callers.
package coords

import "math"

// Zoom bounds. Each whole zoom step doubles pixel density.
const (
	MinZoom = -4.0
	MaxZoom = 6.0
)

// BasePixelsPerMS is the horizontal scale at zoom 0: 0.05 px/ms, i.e. one
// second spans 50 screen pixels.
const BasePixelsPerMS = 0.05

// ClampZoom clamps z into the valid zoom range.
func ClampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

// PixelsPerMS returns the horizontal scale for a zoom level.
// Callers must clamp zoom first.
func PixelsPerMS(zoom float64) float64 {
	return math.Exp2(zoom) * BasePixelsPerMS
}

// TimeToPixels maps a time in milliseconds to a screen-space x offset.
func TimeToPixels(t, zoom float64) float64 {
	return t * PixelsPerMS(zoom)
}

// PixelsToTime maps a screen-space x offset back to milliseconds.
// Exact inverse of TimeToPixels up to floating-point tolerance.
func PixelsToTime(px, zoom float64) float64 {
	return px / PixelsPerMS(zoom)
}
