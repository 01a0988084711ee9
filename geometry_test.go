package autobus_test

import (
	"math"
	"testing"

	"github.com/aumouvantsillage/autobus"
)

func TestManhattanDistance(t *testing.T) {
	cases := []struct {
		a, b autobus.Point
		want float64
	}{
		{autobus.Point{X: 0, Y: 0}, autobus.Point{X: 0, Y: 0}, 0},
		{autobus.Point{X: 0, Y: 0}, autobus.Point{X: 3, Y: 4}, 7},
		{autobus.Point{X: -3, Y: -4}, autobus.Point{X: 0, Y: 0}, 7},
	}
	for _, c := range cases {
		got := autobus.ManhattanDistance(c.a, c.b)
		if got != c.want {
			t.Errorf("ManhattanDistance(%v, %v) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}

func TestDiagonalDistance(t *testing.T) {
	got := autobus.DiagonalDistance(autobus.Point{X: 0, Y: 0}, autobus.Point{X: 5, Y: 5})
	want := 5 * math.Sqrt2
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("DiagonalDistance = %v, want %v", got, want)
	}

	got = autobus.DiagonalDistance(autobus.Point{X: 0, Y: 0}, autobus.Point{X: 10, Y: 4})
	want = 6 + 4*math.Sqrt2
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("DiagonalDistance = %v, want %v", got, want)
	}
}

func TestRectangleDimensions(t *testing.T) {
	r := autobus.Rectangle{Left: 0, Top: 0, Right: 10, Bottom: 5}
	if r.Width() != 10 {
		t.Errorf("Width() = %v, want 10", r.Width())
	}
	if r.Height() != 5 {
		t.Errorf("Height() = %v, want 5", r.Height())
	}
	if !r.Contains(autobus.Point{X: 10, Y: 5}) {
		t.Error("Contains should include the boundary")
	}
	if r.Contains(autobus.Point{X: 11, Y: 0}) {
		t.Error("Contains should exclude points outside the rectangle")
	}
}
