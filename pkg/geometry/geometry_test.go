package geometry

import (
	"math"
	"testing"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		posA Position
		dimA Dimensions
		posB Position
		dimB Dimensions
		want bool
	}{
		{
			name: "Disjoint",
			posA: Position{X: 0, Y: 0}, dimA: Dimensions{Width: 2, Height: 2},
			posB: Position{X: 5, Y: 5}, dimB: Dimensions{Width: 2, Height: 2},
			want: false,
		},
		{
			name: "FullOverlap",
			posA: Position{X: 0, Y: 0}, dimA: Dimensions{Width: 4, Height: 4},
			posB: Position{X: 1, Y: 1}, dimB: Dimensions{Width: 1, Height: 1},
			want: true,
		},
		{
			name: "PartialOverlap",
			posA: Position{X: 0, Y: 0}, dimA: Dimensions{Width: 3, Height: 3},
			posB: Position{X: 2, Y: 2}, dimB: Dimensions{Width: 3, Height: 3},
			want: true,
		},
		{
			name: "SharedEdgeIsNotOverlap",
			posA: Position{X: 0, Y: 0}, dimA: Dimensions{Width: 2, Height: 2},
			posB: Position{X: 2, Y: 0}, dimB: Dimensions{Width: 2, Height: 2},
			want: false,
		},
		{
			name: "SharedCornerIsNotOverlap",
			posA: Position{X: 0, Y: 0}, dimA: Dimensions{Width: 2, Height: 2},
			posB: Position{X: 2, Y: 2}, dimB: Dimensions{Width: 2, Height: 2},
			want: false,
		},
		{
			name: "EpsilonIntrusion",
			posA: Position{X: 0, Y: 0}, dimA: Dimensions{Width: 2, Height: 2},
			posB: Position{X: 1.999999, Y: 0}, dimB: Dimensions{Width: 2, Height: 2},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.posA, tt.dimA, tt.posB, tt.dimB); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// The test is symmetric in its arguments.
			if got := Overlaps(tt.posB, tt.dimB, tt.posA, tt.dimA); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInBounds(t *testing.T) {
	floor := Dimensions{Width: 20, Height: 30}

	tests := []struct {
		name string
		pos  Position
		dim  Dimensions
		want bool
	}{
		{"Origin", Position{X: 0, Y: 0}, Dimensions{Width: 1.2, Height: 2.4}, true},
		{"FlushRightEdge", Position{X: 18.8, Y: 0}, Dimensions{Width: 1.2, Height: 2.4}, true},
		{"PastRightEdge", Position{X: 19, Y: 0}, Dimensions{Width: 1.2, Height: 2.4}, false},
		{"PastTopEdge", Position{X: 0, Y: 28}, Dimensions{Width: 1.2, Height: 2.4}, false},
		{"NegativeX", Position{X: -0.1, Y: 0}, Dimensions{Width: 1.2, Height: 2.4}, false},
		{"NegativeY", Position{X: 0, Y: -0.1}, Dimensions{Width: 1.2, Height: 2.4}, false},
		{"LargerThanFloor", Position{X: 0, Y: 0}, Dimensions{Width: 25, Height: 25}, false},
		{"ExactFit", Position{X: 0, Y: 0}, Dimensions{Width: 20, Height: 30}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InBounds(floor, tt.pos, tt.dim); got != tt.want {
				t.Errorf("InBounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDimensionsArea(t *testing.T) {
	d := Dimensions{Width: 1.2, Height: 2.4}
	if got, want := d.Area(), 2.88; math.Abs(got-want) > 1e-12 {
		t.Errorf("Area() = %v, want %v", got, want)
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want float64
	}{
		{"SamePoint", Position{X: 3, Y: 4}, Position{X: 3, Y: 4}, 0},
		{"PythagoreanTriple", Position{X: 0, Y: 0}, Position{X: 3, Y: 4}, 5},
		{"NegativeDelta", Position{X: 3, Y: 4}, Position{X: 0, Y: 0}, 5},
		{"FloorDiagonal", Position{X: 0, Y: 0}, Position{X: 20, Y: 30}, math.Sqrt(1300)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}
