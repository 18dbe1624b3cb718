package core

import (
	"math"
	"testing"
)

func TestCircleIntersectsRect(t *testing.T) {
	tests := []struct {
		name     string
		c        Circle
		r        Rect
		expected bool
	}{
		{
			name:     "center inside rect",
			c:        Circle{X: 5, Y: 5, R: 1},
			r:        NewRect(0, 0, 10, 10),
			expected: true,
		},
		{
			name:     "center projects inside horizontal span, touching top edge",
			c:        Circle{X: 5, Y: -2, R: 2},
			r:        NewRect(0, 0, 10, 10),
			expected: true,
		},
		{
			name:     "center projects inside vertical span, clear of left edge",
			c:        Circle{X: -3, Y: 5, R: 2},
			r:        NewRect(0, 0, 10, 10),
			expected: false,
		},
		{
			name:     "far away",
			c:        Circle{X: 100, Y: 100, R: 5},
			r:        NewRect(0, 0, 10, 10),
			expected: false,
		},
		{
			name:     "zero-width rect never collides",
			c:        Circle{X: 5, Y: 5, R: 10},
			r:        NewRect(5, 0, 0, 10),
			expected: false,
		},
		{
			name:     "zero-height rect never collides",
			c:        Circle{X: 5, Y: 5, R: 10},
			r:        NewRect(0, 5, 10, 0),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.c.IntersectsRect(tc.r)
			if result != tc.expected {
				t.Errorf("IntersectsRect() = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestCircleCornerBoundaryInclusive(t *testing.T) {
	// Circle centered diagonally off the top-right corner of the rect.
	// At distance exactly R the test must report a collision; at R + eps
	// it must not.
	r := NewRect(0, 0, 10, 10)
	radius := 5.0

	// Place center so distance to corner (10, 0) is exactly radius.
	d := radius / math.Sqrt2
	touching := Circle{X: 10 + d, Y: -d, R: radius}
	if !touching.IntersectsRect(r) {
		t.Error("circle at exact corner distance R should collide (boundary inclusive)")
	}

	const eps = 1e-6
	d = (radius + eps) / math.Sqrt2
	clear := Circle{X: 10 + d, Y: -d, R: radius}
	if clear.IntersectsRect(r) {
		t.Error("circle at corner distance R+eps should not collide")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below lo
		{15, 0, 10, 10}, // above hi
		{0, 0, 10, 0},   // at lo
		{10, 0, 10, 10}, // at hi
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.lo, tc.hi)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %f, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %f, expected 25", r.Bottom())
	}
}
