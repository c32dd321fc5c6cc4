package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDrag_DirectionIndependence(t *testing.T) {
	t.Parallel()

	container := Size{Width: 1000, Height: 500}

	tests := []struct {
		name    string
		start   Point
		current Point
	}{
		{"left-to-right top-down", Point{X: 100, Y: 50}, Point{X: 300, Y: 150}},
		{"right-to-left top-down", Point{X: 300, Y: 50}, Point{X: 100, Y: 150}},
		{"left-to-right bottom-up", Point{X: 100, Y: 150}, Point{X: 300, Y: 50}},
		{"right-to-left bottom-up", Point{X: 300, Y: 150}, Point{X: 100, Y: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rect, ok := NormalizeDrag(tt.start, tt.current, container)
			require.True(t, ok)

			// All four drags describe the same rectangle.
			assert.InDelta(t, 10.0, rect.X, 1e-9)
			assert.InDelta(t, 10.0, rect.Y, 1e-9)
			assert.InDelta(t, 20.0, rect.Width, 1e-9)
			assert.InDelta(t, 20.0, rect.Height, 1e-9)
		})
	}
}

func TestNormalizeDrag_NegativeComponentsNeverProduceNegativeSize(t *testing.T) {
	t.Parallel()

	container := Size{Width: 800, Height: 600}
	start := Point{X: 400, Y: 300}

	// Sweep drag vectors across all sign combinations.
	deltas := []float64{-350, -100, -1, 0, 1, 100, 350}
	for _, dx := range deltas {
		for _, dy := range deltas {
			rect, ok := NormalizeDrag(start, Point{X: start.X + dx, Y: start.Y + dy}, container)
			require.True(t, ok)
			assert.GreaterOrEqual(t, rect.Width, 0.0, "dx=%g dy=%g", dx, dy)
			assert.GreaterOrEqual(t, rect.Height, 0.0, "dx=%g dy=%g", dx, dy)
			assert.LessOrEqual(t, rect.X, (start.X+min(dx, 0))/container.Width*100+1e-9)
			assert.LessOrEqual(t, rect.Y, (start.Y+min(dy, 0))/container.Height*100+1e-9)
		}
	}
}

// Drag from 10% to 5% of a 1000x500 container normalizes to a 5%x5% box
// anchored at (5,5).
func TestNormalizeDrag_ReverseDragAnchorsTopLeft(t *testing.T) {
	t.Parallel()

	container := Size{Width: 1000, Height: 500}
	rect, ok := NormalizeDrag(Point{X: 100, Y: 50}, Point{X: 50, Y: 25}, container)
	require.True(t, ok)

	assert.InDelta(t, 5.0, rect.X, 1e-9)
	assert.InDelta(t, 5.0, rect.Y, 1e-9)
	assert.InDelta(t, 5.0, rect.Width, 1e-9)
	assert.InDelta(t, 5.0, rect.Height, 1e-9)
	assert.True(t, rect.MeetsMinimum(0.5))
}

func TestNormalizeDrag_ClampsPointsToContainer(t *testing.T) {
	t.Parallel()

	container := Size{Width: 200, Height: 100}
	rect, ok := NormalizeDrag(Point{X: -50, Y: -20}, Point{X: 400, Y: 300}, container)
	require.True(t, ok)

	assert.InDelta(t, 0.0, rect.X, 1e-9)
	assert.InDelta(t, 0.0, rect.Y, 1e-9)
	assert.InDelta(t, 100.0, rect.Width, 1e-9)
	assert.InDelta(t, 100.0, rect.Height, 1e-9)
}

func TestNormalizeDrag_UnknownContainerSuppressed(t *testing.T) {
	t.Parallel()

	_, ok := NormalizeDrag(Point{X: 10, Y: 10}, Point{X: 20, Y: 20}, Size{})
	assert.False(t, ok, "zero container means metadata not yet loaded")

	_, ok = NormalizeDrag(Point{}, Point{X: 5, Y: 5}, Size{Width: 100, Height: -1})
	assert.False(t, ok)
}

func TestRect_MeetsMinimum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rect Rect
		want bool
	}{
		{"well above threshold", Rect{Width: 5, Height: 5}, true},
		{"exactly at threshold", Rect{Width: 0.5, Height: 0.5}, false},
		{"width below threshold", Rect{Width: 0.1, Height: 5}, false},
		{"height below threshold", Rect{Width: 5, Height: 0.1}, false},
		{"zero size", Rect{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.rect.MeetsMinimum(0.5))
		})
	}
}

// A drag that barely moved (0.1% of the frame) must be rejected by the
// minimum gate.
func TestNormalizeDrag_PointerNoiseRejected(t *testing.T) {
	t.Parallel()

	container := Size{Width: 1000, Height: 500}
	rect, ok := NormalizeDrag(Point{X: 100, Y: 50}, Point{X: 101, Y: 50.5}, container)
	require.True(t, ok)
	assert.False(t, rect.MeetsMinimum(0.5))
}
