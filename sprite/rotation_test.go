package sprite

import "testing"

func TestFrameForHeading(t *testing.T) {
	cases := []struct {
		name    string
		heading float64
		count   int
		want    int
	}{
		{"zero", 0, 24, 0},
		{"first_step", 15, 24, 1},
		{"just_below_half_step", 7.4, 24, 0},
		{"half_step_rounds_up", 7.5, 24, 1},
		{"mid_range", 90, 24, 6},
		{"near_wrap_half_step", 352.5, 24, 23},
		{"wraps_to_zero", 352.6, 24, 0},
		{"exact_360", 360, 24, 0},
		{"negative", -15, 24, 23},
		{"default_count", 45, 0, 3},
		{"coarse_sheet", 90, 4, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FrameForHeading(c.heading, c.count)
			if got != c.want {
				t.Fatalf("FrameForHeading(%v, %d) = %d, want %d", c.heading, c.count, got, c.want)
			}
		})
	}
}

func TestFrameForHeadingPeriodic(t *testing.T) {
	for h := 0.0; h < 360; h += 0.25 {
		a := FrameForHeading(h, 24)
		b := FrameForHeading(h+360, 24)
		if a != b {
			t.Fatalf("heading %v: got %d, heading+360 got %d", h, a, b)
		}
		if a < 0 || a >= 24 {
			t.Fatalf("heading %v: frame %d out of range", h, a)
		}
	}
}

func TestNormalizeHeading(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{725, 5},
		{-90, 270},
		{-360, 0},
	}
	for _, c := range cases {
		if got := NormalizeHeading(c.in); got != c.want {
			t.Errorf("NormalizeHeading(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
