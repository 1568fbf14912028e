package obj

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name string
		a    cp.Vector
		ra   float64
		b    cp.Vector
		rb   float64
		want bool
	}{
		{name: "clearly_apart", a: cp.Vector{}, ra: 5, b: cp.Vector{X: 100}, rb: 5, want: false},
		{name: "clearly_overlapping", a: cp.Vector{}, ra: 10, b: cp.Vector{X: 5}, rb: 10, want: true},
		{name: "touching_counts", a: cp.Vector{}, ra: 5, b: cp.Vector{X: 10}, rb: 5, want: true},
		{name: "diagonal", a: cp.Vector{X: 3, Y: 4}, ra: 2, b: cp.Vector{}, rb: 2, want: false},
		{name: "concentric", a: cp.Vector{X: 1, Y: 1}, ra: 1, b: cp.Vector{X: 1, Y: 1}, rb: 1, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesOverlap(tt.a, tt.ra, tt.b, tt.rb); got != tt.want {
				t.Fatalf("CirclesOverlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestElasticImpulseHeadOn(t *testing.T) {
	posA := cp.Vector{X: 0}
	posB := cp.Vector{X: 10}
	velA := cp.Vector{X: 4}
	velB := cp.Vector{X: -4}

	newA, newB := ElasticImpulse(posA, velA, posB, velB, 1)

	// A perfectly elastic equal-mass head-on collision swaps velocities.
	if math.Abs(newA.X-velB.X) > 1e-9 || math.Abs(newB.X-velA.X) > 1e-9 {
		t.Fatalf("velocities = %v / %v, want swapped %v / %v", newA, newB, velB, velA)
	}
}

func TestElasticImpulseConservesMomentum(t *testing.T) {
	posA := cp.Vector{X: 0, Y: 0}
	posB := cp.Vector{X: 6, Y: 8}
	velA := cp.Vector{X: 3, Y: 2}
	velB := cp.Vector{X: -1, Y: -2}

	newA, newB := ElasticImpulse(posA, velA, posB, velB, 0.6)

	before := velA.Add(velB)
	after := newA.Add(newB)
	if math.Abs(before.X-after.X) > 1e-9 || math.Abs(before.Y-after.Y) > 1e-9 {
		t.Fatalf("momentum changed: %v -> %v", before, after)
	}
}

func TestElasticImpulseIgnoresSeparating(t *testing.T) {
	posA := cp.Vector{X: 0}
	posB := cp.Vector{X: 10}
	velA := cp.Vector{X: -2}
	velB := cp.Vector{X: 2}

	newA, newB := ElasticImpulse(posA, velA, posB, velB, 1)
	if newA != velA || newB != velB {
		t.Fatalf("separating bodies changed velocity: %v / %v", newA, newB)
	}
}

func TestElasticImpulseCoincidentCenters(t *testing.T) {
	pos := cp.Vector{X: 5, Y: 5}
	velA := cp.Vector{X: 1}
	velB := cp.Vector{X: -1}

	newA, newB := ElasticImpulse(pos, velA, pos, velB, 1)
	if newA != velA || newB != velB {
		t.Fatalf("coincident centers changed velocity: %v / %v", newA, newB)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		in   cp.Vector
		want cp.Vector
	}{
		{name: "inside_untouched", in: cp.Vector{X: 600, Y: 450}, want: cp.Vector{X: 600, Y: 450}},
		{name: "left_to_right", in: cp.Vector{X: -1, Y: 450}, want: cp.Vector{X: 1200, Y: 450}},
		{name: "right_to_left", in: cp.Vector{X: 1201, Y: 450}, want: cp.Vector{X: 0, Y: 450}},
		{name: "top_to_bottom", in: cp.Vector{X: 600, Y: -1}, want: cp.Vector{X: 600, Y: 900}},
		{name: "bottom_to_top", in: cp.Vector{X: 600, Y: 901}, want: cp.Vector{X: 600, Y: 0}},
		{name: "corner_wraps_both", in: cp.Vector{X: -5, Y: 905}, want: cp.Vector{X: 1200, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.in); got != tt.want {
				t.Fatalf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
