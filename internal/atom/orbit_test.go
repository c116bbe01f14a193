package atom

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestAnglesStationaryIgnoresTime(t *testing.T) {
	for k := 1; k <= 32; k++ {
		a1 := Positions(1.5, k, Stationary, 0.3, 0.9)
		a2 := Positions(1.5, k, Stationary, 42.7, 0.9)
		for i := range a1 {
			if math.Abs(a1[i].X-a2[i].X) > eps || math.Abs(a1[i].Y-a2[i].Y) > eps {
				t.Fatalf("k=%d electron %d moved between frames: %+v vs %+v", k, i, a1[i], a2[i])
			}
		}
	}
}

func TestAnglesRotatingKeepsSpacing(t *testing.T) {
	for _, k := range []int{1, 2, 3, 8, 18, 32} {
		for _, tm := range []float64{0, 0.5, 3.14, 100.25} {
			angles := Angles(k, Rotating, tm, 0.9)
			want := 2 * math.Pi / float64(k)
			for i := 0; i+1 < len(angles); i++ {
				if d := angles[i+1] - angles[i]; math.Abs(d-want) > eps {
					t.Errorf("k=%d t=%v: spacing between %d and %d is %v, expected %v", k, tm, i, i+1, d, want)
				}
			}
			if math.Abs(angles[0]-tm*0.9) > eps {
				t.Errorf("k=%d t=%v: first angle %v, expected %v", k, tm, angles[0], tm*0.9)
			}
		}
	}
}

func TestAnglesRotatingMoves(t *testing.T) {
	a := Angles(2, Rotating, 0, 0.9)
	b := Angles(2, Rotating, 1, 0.9)
	if math.Abs((b[0]-a[0])-0.9) > eps {
		t.Errorf("one second of rotation moved %v rad, expected 0.9", b[0]-a[0])
	}
}

func TestPositionsOnRadius(t *testing.T) {
	pts := Positions(2.5, 8, Rotating, 1.2, 0.9)
	if len(pts) != 8 {
		t.Fatalf("got %d positions, expected 8", len(pts))
	}
	for i, p := range pts {
		if math.Abs(p.Len()-2.5) > eps {
			t.Errorf("electron %d at distance %v, expected 2.5", i, p.Len())
		}
	}
}

func TestAnglesEmptyShell(t *testing.T) {
	if Angles(0, Rotating, 1, 1) != nil {
		t.Error("empty shell should have no angles")
	}
}

func TestOrbitRadius(t *testing.T) {
	if r := OrbitRadius(0, 1.0, 0.5); r != 1.0 {
		t.Errorf("OrbitRadius(0) = %v", r)
	}
	if r := OrbitRadius(3, 1.0, 0.5); r != 2.5 {
		t.Errorf("OrbitRadius(3) = %v", r)
	}
}

func TestMotionMode(t *testing.T) {
	if Stationary.Toggle() != Rotating || Rotating.Toggle() != Stationary {
		t.Error("Toggle should flip the mode")
	}

	tests := []struct {
		in      string
		want    MotionMode
		wantErr bool
	}{
		{"rotating", Rotating, false},
		{"Stationary", Stationary, false},
		{" on ", Rotating, false},
		{"spin", Stationary, true},
	}
	for _, tc := range tests {
		got, err := ParseMotionMode(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseMotionMode(%q) error = %v", tc.in, err)
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseMotionMode(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}
