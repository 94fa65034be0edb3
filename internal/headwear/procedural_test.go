package headwear

import "testing"

func TestDomePropShape(t *testing.T) {
	const segments, rings = 12, 4
	prop := DomeProp(segments, rings)

	if len(prop.Meshes) != 1 {
		t.Fatalf("expected one sub-mesh, got %d", len(prop.Meshes))
	}
	sm := prop.Meshes[0]

	wantVerts := segments*rings + 1
	if len(sm.Positions) != wantVerts {
		t.Errorf("vertices = %d, want %d", len(sm.Positions), wantVerts)
	}
	if len(sm.Normals) != wantVerts {
		t.Errorf("normals = %d, want %d", len(sm.Normals), wantVerts)
	}
	wantTris := segments*(rings-1)*2 + segments
	if got := len(sm.Indices) / 3; got != wantTris {
		t.Errorf("triangles = %d, want %d", got, wantTris)
	}

	for i, idx := range sm.Indices {
		if int(idx) >= wantVerts {
			t.Fatalf("index %d out of range at %d", idx, i)
		}
	}

	// Hemisphere: everything on or above the rim plane, inside the
	// unit ball.
	for i, p := range sm.Positions {
		if p.Y < -1e-6 {
			t.Errorf("vertex %d below rim: %+v", i, p)
		}
		if p.Length() > 1+1e-5 {
			t.Errorf("vertex %d outside unit sphere: %+v", i, p)
		}
	}

	// Degenerate requests are clamped, not rejected.
	small := DomeProp(1, 1)
	if len(small.Meshes[0].Positions) == 0 {
		t.Error("clamped dome has no geometry")
	}
}

func TestDomePropFits(t *testing.T) {
	prop := DomeProp(16, 6)
	fitted, err := Fit(prop, headBox(), DefaultFitParams())
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if fitted.Scale <= 0 {
		t.Errorf("expected positive scale, got %g", fitted.Scale)
	}
}
