package head

import (
	"testing"

	"github.com/Faultbox/headforge/internal/landmark"
)

func TestBuildBackShellCounts(t *testing.T) {
	set := landmark.SyntheticSet(0.5)
	bounds := ComputeBounds(set)
	buf := BuildBackShell(set, bounds, DefaultShellParams())

	const n = 36
	if got := len(buf.Positions); got != 4*n+1 {
		t.Errorf("expected %d vertices, got %d", 4*n+1, got)
	}
	if got := buf.TriangleCount(); got != 7*n {
		t.Errorf("expected %d triangles, got %d", 7*n, got)
	}
	if len(buf.UVs) != len(buf.Positions) {
		t.Errorf("UV count %d != vertex count %d", len(buf.UVs), len(buf.Positions))
	}
	for i, uv := range buf.UVs {
		if uv.X != 0 || uv.Y != 0 {
			t.Fatalf("shell UV %d not degenerate: %+v", i, uv)
		}
	}
	if len(buf.Groups) != 1 || buf.Groups[0].Material != MaterialShell {
		t.Errorf("expected one shell material group, got %+v", buf.Groups)
	}
}

func TestShellRingsBehindFace(t *testing.T) {
	set := landmark.SyntheticSet(0.5)
	bounds := ComputeBounds(set)
	params := DefaultShellParams()
	buf := BuildBackShell(set, bounds, params)

	depth := bounds.Width() * params.DepthFactor

	for i := 0; i < 36; i++ {
		front := buf.Positions[i*4]
		back := buf.Positions[i*4+3]
		if back.Z >= front.Z {
			t.Fatalf("back ring %d not behind front: %g >= %g", i, back.Z, front.Z)
		}
		want := bounds.Min.Z - depth
		if abs(back.Z-want) > 1e-5 {
			t.Errorf("back ring %d z = %g, want %g", i, back.Z, want)
		}
	}

	apex := buf.Positions[4*36]
	wantApexZ := bounds.Min.Z - depth - depth*params.DomeHeightFrac
	if abs(apex.Z-wantApexZ) > 1e-5 {
		t.Errorf("apex z = %g, want %g", apex.Z, wantApexZ)
	}
	if abs(apex.X-bounds.Center().X) > 1e-5 {
		t.Errorf("apex x = %g, want bbox center %g", apex.X, bounds.Center().X)
	}
}

func TestTaperMonotonicAndBounded(t *testing.T) {
	params := DefaultShellParams()

	prev := float32(-1)
	for i := 0; i <= 100; i++ {
		tt := float32(i) / 100
		taper := params.Taper(tt)
		if taper < prev {
			t.Fatalf("taper decreased at t=%g: %g < %g", tt, taper, prev)
		}
		if taper < params.TaperMin || taper > params.TaperMin+params.TaperRange {
			t.Fatalf("taper out of bounds at t=%g: %g", tt, taper)
		}
		prev = taper
	}

	// Clamped outside [0, 1].
	if params.Taper(-5) != params.TaperMin {
		t.Errorf("taper(-5) = %g, want %g", params.Taper(-5), params.TaperMin)
	}
	if params.Taper(5) != params.TaperMin+params.TaperRange {
		t.Errorf("taper(5) = %g, want %g", params.Taper(5), params.TaperMin+params.TaperRange)
	}
}

func TestShellDegenerateFlatInputDoesNotPanic(t *testing.T) {
	// A perfectly flat landmark set (zero height) exercises the
	// epsilon guard in the height ratio.
	set := landmark.SyntheticSet(0.5)
	for i := range set {
		set[i].Y = 0
	}
	bounds := ComputeBounds(set)
	buf := BuildBackShell(set, bounds, DefaultShellParams())
	if got := len(buf.Positions); got != 4*36+1 {
		t.Errorf("expected full shell on degenerate input, got %d vertices", got)
	}
	for i, p := range buf.Positions {
		if !p.IsFinite() {
			t.Fatalf("non-finite shell vertex %d: %+v", i, p)
		}
	}
}
