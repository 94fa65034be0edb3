package pipeline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/Faultbox/headforge/internal/facetex"
	"github.com/Faultbox/headforge/internal/head"
	m "github.com/Faultbox/headforge/pkg/math"
)

// FlatBuffers is the renderer-agnostic form of the head mesh:
// interleave-free float arrays ready for upload or IPC.
type FlatBuffers struct {
	// Positions holds xyz triples, already shifted by the root offset.
	Positions []float32
	Normals   []float32
	// UVs holds uv pairs.
	UVs     []float32
	Indices []uint32
	Groups  []head.Group
}

// Flatten unrolls the head mesh into flat arrays with the root offset
// baked into the positions.
func (a *Assembly) Flatten() FlatBuffers {
	mesh := a.Head
	fb := FlatBuffers{
		Positions: make([]float32, 0, len(mesh.Positions)*3),
		Normals:   make([]float32, 0, len(mesh.Normals)*3),
		UVs:       make([]float32, 0, len(mesh.UVs)*2),
		Indices:   append([]uint32(nil), mesh.Indices...),
		Groups:    append([]head.Group(nil), mesh.Groups...),
	}
	for _, p := range mesh.Positions {
		q := p.Add(a.RootOffset)
		fb.Positions = append(fb.Positions, q.X, q.Y, q.Z)
	}
	for _, n := range mesh.Normals {
		fb.Normals = append(fb.Normals, n.X, n.Y, n.Z)
	}
	for _, uv := range mesh.UVs {
		fb.UVs = append(fb.UVs, uv.X, uv.Y)
	}
	return fb
}

// flatExport is the JSON wire form of an assembly for a renderer
// running in a separate process. Prop geometry is not inlined; the
// renderer resolves the named asset itself and applies the transform.
type flatExport struct {
	Positions []float32    `json:"positions"`
	Normals   []float32    `json:"normals"`
	UVs       []float32    `json:"uvs"`
	Indices   []uint32     `json:"indices"`
	Groups    []flatGroup  `json:"groups"`
	SkinTone  [3]float32   `json:"skin_tone"`
	Headwear  flatHeadwear `json:"headwear"`
}

type flatGroup struct {
	Material int   `json:"material"`
	Start    int32 `json:"start"`
	Count    int32 `json:"count"`
}

type flatHeadwear struct {
	Asset string `json:"asset"`
	// Transform is column-major and already includes the root offset,
	// matching the offset baked into the head positions.
	Transform [16]float32 `json:"transform"`
	Color     [3]float32  `json:"color"`
	Roughness float32     `json:"roughness"`
	Metalness float32     `json:"metalness"`
}

// ExportFlatJSON writes the flat-buffer form of the assembly as JSON.
func (a *Assembly) ExportFlatJSON(w io.Writer) error {
	fb := a.Flatten()

	out := flatExport{
		Positions: fb.Positions,
		Normals:   fb.Normals,
		UVs:       fb.UVs,
		Indices:   fb.Indices,
		SkinTone:  [3]float32{a.SkinTone.R, a.SkinTone.G, a.SkinTone.B},
		Headwear: flatHeadwear{
			Asset: a.Headwear.Prop.Name,
			Transform: [16]float32(m.Translate(a.RootOffset.X, a.RootOffset.Y, a.RootOffset.Z).
				Mul(a.Headwear.Transform())),
			Color:     a.Headwear.Material.Color,
			Roughness: a.Headwear.Material.Roughness,
			Metalness: a.Headwear.Material.Metalness,
		},
	}
	for _, g := range fb.Groups {
		out.Groups = append(out.Groups, flatGroup{
			Material: int(g.Material),
			Start:    g.StartIndex,
			Count:    g.IndexCount,
		})
	}

	enc := json.NewEncoder(w)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding flat export: %w", err)
	}
	return nil
}

// TextureBlob encodes the face texture for transfer. format is "png"
// or "jpeg".
func (a *Assembly) TextureBlob(format string, jpegQuality int) ([]byte, error) {
	return facetex.EncodeBlob(a.Texture, format, jpegQuality)
}

// ExportGLB writes the assembly as a binary glTF scene: a root node
// carrying the centering offset, with the two-material head mesh and
// the fitted headwear prop as children.
func (a *Assembly) ExportGLB(path string) error {
	doc := gltf.NewDocument()

	texIdx, err := writeFaceTexture(doc, a)
	if err != nil {
		return err
	}

	faceMat := uint32(len(doc.Materials))
	doc.Materials = append(doc.Materials, &gltf.Material{
		Name: "face",
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorTexture: &gltf.TextureInfo{Index: texIdx},
			MetallicFactor:   gltf.Float(0),
			RoughnessFactor:  gltf.Float(0.9),
		},
	})
	shellMat := uint32(len(doc.Materials))
	doc.Materials = append(doc.Materials, &gltf.Material{
		Name: "shell",
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{float64(a.SkinTone.R), float64(a.SkinTone.G), float64(a.SkinTone.B), 1},
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(0.9),
		},
	})

	headNode, err := writeHeadMesh(doc, a.Head, faceMat, shellMat)
	if err != nil {
		return err
	}
	wearNode, err := writeHeadwear(doc, a)
	if err != nil {
		return err
	}

	root := uint32(len(doc.Nodes))
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name:        "head-assembly",
		Children:    []uint32{headNode, wearNode},
		Translation: [3]float64{float64(a.RootOffset.X), float64(a.RootOffset.Y), float64(a.RootOffset.Z)},
	})
	doc.Scenes[0].Nodes = []uint32{root}

	if err := gltf.SaveBinary(doc, path); err != nil {
		return fmt.Errorf("writing glb %s: %w", path, err)
	}
	return nil
}

// writeFaceTexture embeds the composed face texture as a PNG image and
// returns its texture index.
func writeFaceTexture(doc *gltf.Document, a *Assembly) (uint32, error) {
	blob, err := a.TextureBlob("png", 0)
	if err != nil {
		return 0, err
	}
	imgIdx, err := modeler.WriteImage(doc, "face-texture", "image/png", bytes.NewReader(blob))
	if err != nil {
		return 0, fmt.Errorf("embedding face texture: %w", err)
	}
	texIdx := uint32(len(doc.Textures))
	doc.Textures = append(doc.Textures, &gltf.Texture{Source: gltf.Index(imgIdx)})
	return texIdx, nil
}

// writeHeadMesh emits the merged head mesh as one glTF mesh with a
// primitive per material group, all sharing the vertex accessors.
func writeHeadMesh(doc *gltf.Document, mesh *head.Mesh, faceMat, shellMat uint32) (uint32, error) {
	positions := make([][3]float32, len(mesh.Positions))
	for i, p := range mesh.Positions {
		positions[i] = [3]float32{p.X, p.Y, p.Z}
	}
	normals := make([][3]float32, len(mesh.Normals))
	for i, n := range mesh.Normals {
		normals[i] = [3]float32{n.X, n.Y, n.Z}
	}
	uvs := make([][2]float32, len(mesh.UVs))
	for i, uv := range mesh.UVs {
		uvs[i] = [2]float32{uv.X, uv.Y}
	}

	posAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	uvAccessor := modeler.WriteTextureCoord(doc, uvs)

	var prims []*gltf.Primitive
	for _, g := range mesh.Groups {
		span := mesh.Indices[g.StartIndex : g.StartIndex+g.IndexCount]
		idxAccessor := modeler.WriteIndices(doc, append([]uint32(nil), span...))

		mat := shellMat
		if g.Material == head.MaterialFace {
			mat = faceMat
		}
		prims = append(prims, &gltf.Primitive{
			Attributes: map[string]uint32{
				gltf.POSITION:   uint32(posAccessor),
				gltf.NORMAL:     uint32(normalAccessor),
				gltf.TEXCOORD_0: uint32(uvAccessor),
			},
			Indices:  gltf.Index(uint32(idxAccessor)),
			Material: gltf.Index(mat),
		})
	}

	meshIdx := uint32(len(doc.Meshes))
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: "head", Primitives: prims})
	nodeIdx := uint32(len(doc.Nodes))
	doc.Nodes = append(doc.Nodes, &gltf.Node{Name: "head", Mesh: gltf.Index(meshIdx)})
	return nodeIdx, nil
}

// writeHeadwear emits the fitted prop with its full placement matrix
// on the node and the shared hue-derived material.
func writeHeadwear(doc *gltf.Document, a *Assembly) (uint32, error) {
	f := a.Headwear

	matIdx := uint32(len(doc.Materials))
	doc.Materials = append(doc.Materials, &gltf.Material{
		Name: "headwear",
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float64{float64(f.Material.Color[0]), float64(f.Material.Color[1]), float64(f.Material.Color[2]), 1},
			MetallicFactor:  gltf.Float(float64(f.Material.Metalness)),
			RoughnessFactor: gltf.Float(float64(f.Material.Roughness)),
		},
	})

	var prims []*gltf.Primitive
	for _, sm := range f.Prop.Meshes {
		positions := make([][3]float32, len(sm.Positions))
		for i, p := range sm.Positions {
			positions[i] = [3]float32{p.X, p.Y, p.Z}
		}
		prim := &gltf.Primitive{
			Attributes: map[string]uint32{
				gltf.POSITION: uint32(modeler.WritePosition(doc, positions)),
			},
			Material: gltf.Index(matIdx),
		}
		if len(sm.Normals) > 0 {
			normals := make([][3]float32, len(sm.Normals))
			for i, n := range sm.Normals {
				normals[i] = [3]float32{n.X, n.Y, n.Z}
			}
			prim.Attributes[gltf.NORMAL] = uint32(modeler.WriteNormal(doc, normals))
		}
		if len(sm.UVs) > 0 {
			uvs := make([][2]float32, len(sm.UVs))
			for i, uv := range sm.UVs {
				uvs[i] = [2]float32{uv.X, uv.Y}
			}
			prim.Attributes[gltf.TEXCOORD_0] = uint32(modeler.WriteTextureCoord(doc, uvs))
		}
		if len(sm.Indices) > 0 {
			prim.Indices = gltf.Index(uint32(modeler.WriteIndices(doc, append([]uint32(nil), sm.Indices...))))
		}
		prims = append(prims, prim)
	}

	meshIdx := uint32(len(doc.Meshes))
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: "headwear", Primitives: prims})

	nodeIdx := uint32(len(doc.Nodes))
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name:   "headwear",
		Mesh:   gltf.Index(meshIdx),
		Matrix: matrix64(f.Transform()),
	})
	return nodeIdx, nil
}

func matrix64(mat m.Mat4) [16]float64 {
	var out [16]float64
	for i, v := range mat {
		out[i] = float64(v)
	}
	return out
}
