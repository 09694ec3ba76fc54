package geom

import (
	"math"
	"testing"
)

func TestBoundsOf(t *testing.T) {
	bb := BoundsOf([]Point{{X: 1, Y: 5}, {X: -2, Y: 3}, {X: 4, Y: -1}})

	if bb.Min != (Point{X: -2, Y: -1}) {
		t.Errorf("Min = %+v, want {-2 -1}", bb.Min)
	}
	if bb.Max != (Point{X: 4, Y: 5}) {
		t.Errorf("Max = %+v, want {4 5}", bb.Max)
	}
	if bb.Width() != 6 || bb.Height() != 6 {
		t.Errorf("size = %vx%v, want 6x6", bb.Width(), bb.Height())
	}
	if c := bb.Center(); c != (Point{X: 1, Y: 2}) {
		t.Errorf("Center = %+v, want {1 2}", c)
	}
}

func TestEmptyBoundingBox(t *testing.T) {
	if !NewBoundingBox().IsEmpty() {
		t.Error("new bounding box should be empty")
	}
	if !BoundsOf(nil).IsEmpty() {
		t.Error("bounds of no points should be empty")
	}
}

func TestContainsAndIntersects(t *testing.T) {
	a := BoundingBox{Min: Point{0, 0}, Max: Point{10, 10}}
	b := BoundingBox{Min: Point{5, 5}, Max: Point{15, 15}}
	c := BoundingBox{Min: Point{11, 11}, Max: Point{12, 12}}

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"contains inside", a.Contains(Point{5, 5}), true},
		{"contains edge", a.Contains(Point{10, 0}), true},
		{"contains outside", a.Contains(Point{10.5, 0}), false},
		{"overlapping", a.Intersects(b), true},
		{"disjoint", a.Intersects(c), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestRotate(t *testing.T) {
	p := Point{X: 1, Y: 0}.Rotate(90)
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y-1) > 1e-9 {
		t.Errorf("Rotate(90) = %+v, want {0 1}", p)
	}
	q := Point{X: 1, Y: 2}.Add(Point{X: -3, Y: 0.5})
	if q != (Point{X: -2, Y: 2.5}) {
		t.Errorf("Add = %+v, want {-2 2.5}", q)
	}
}
