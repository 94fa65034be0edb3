package pipeline

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"

	"github.com/Faultbox/headforge/internal/headwear"
	m "github.com/Faultbox/headforge/pkg/math"
)

func TestExportGLB(t *testing.T) {
	asm, err := Build(buildRequest())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	path := filepath.Join(t.TempDir(), "head.glb")
	if err := asm.ExportGLB(path); err != nil {
		t.Fatalf("ExportGLB: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading glb: %v", err)
	}
	if len(data) < 12 || !bytes.HasPrefix(data, []byte("glTF")) {
		t.Errorf("output is not a binary glTF container")
	}
}

func TestExportGLBCarriesPropUVs(t *testing.T) {
	req := buildRequest()
	req.Prop = func() (*headwear.Prop, error) {
		base, err := cubeSource(1)()
		if err != nil {
			return nil, err
		}
		sm := base.Meshes[0]
		sm.UVs = make([]m.Vec2, len(sm.Positions))
		for i := range sm.UVs {
			sm.UVs[i] = m.Vec2{X: 0.25, Y: 0.75}
		}
		return headwear.NewProp("cube-uv", []headwear.SubMesh{sm})
	}

	asm, err := Build(req)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	path := filepath.Join(t.TempDir(), "head.glb")
	if err := asm.ExportGLB(path); err != nil {
		t.Fatalf("ExportGLB: %v", err)
	}

	doc, err := gltf.Open(path)
	if err != nil {
		t.Fatalf("reopening glb: %v", err)
	}
	for _, mesh := range doc.Meshes {
		if mesh.Name != "headwear" {
			continue
		}
		for _, prim := range mesh.Primitives {
			if _, ok := prim.Attributes[gltf.TEXCOORD_0]; !ok {
				t.Error("headwear primitive is missing its texture coordinates")
			}
		}
		return
	}
	t.Fatal("no headwear mesh in exported document")
}

func TestExportFlatJSON(t *testing.T) {
	asm, err := Build(buildRequest())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var buf bytes.Buffer
	if err := asm.ExportFlatJSON(&buf); err != nil {
		t.Fatalf("ExportFlatJSON: %v", err)
	}

	var out flatExport
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}

	if len(out.Positions) != len(asm.Head.Positions)*3 {
		t.Errorf("positions len %d, want %d", len(out.Positions), len(asm.Head.Positions)*3)
	}
	if len(out.Groups) != 2 {
		t.Errorf("groups = %d, want 2", len(out.Groups))
	}
	if out.Headwear.Asset != "cube" {
		t.Errorf("headwear asset %q, want cube", out.Headwear.Asset)
	}

	// The exported transform carries the root offset on top of the
	// fitted placement.
	want := m.Translate(asm.RootOffset.X, asm.RootOffset.Y, asm.RootOffset.Z).
		Mul(asm.Headwear.Transform())
	for i := range want {
		if absf(out.Headwear.Transform[i]-want[i]) > 1e-6 {
			t.Fatalf("transform element %d = %g, want %g", i, out.Headwear.Transform[i], want[i])
		}
	}
}

func TestTextureBlobFormats(t *testing.T) {
	asm, err := Build(buildRequest())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	png, err := asm.TextureBlob("png", 0)
	if err != nil {
		t.Fatalf("png blob: %v", err)
	}
	if !bytes.HasPrefix(png, []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("png blob missing signature")
	}

	jpg, err := asm.TextureBlob("jpeg", 85)
	if err != nil {
		t.Fatalf("jpeg blob: %v", err)
	}
	if !bytes.HasPrefix(jpg, []byte{0xff, 0xd8}) {
		t.Error("jpeg blob missing SOI marker")
	}
}
