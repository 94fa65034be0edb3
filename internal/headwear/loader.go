package headwear

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	m "github.com/Faultbox/headforge/pkg/math"
)

// LoadGLB parses a binary glTF prop asset into a Prop. Only triangle
// primitives with a position attribute are imported; normals, texture
// coordinates and indices are carried when present.
func LoadGLB(path string) (*Prop, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening prop asset %s: %w", path, err)
	}
	return propFromDocument(doc, path)
}

func propFromDocument(doc *gltf.Document, name string) (*Prop, error) {
	var meshes []SubMesh

	for _, mesh := range doc.Meshes {
		for _, prim := range mesh.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}

			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, fmt.Errorf("reading prop positions: %w", err)
			}

			sm := SubMesh{Positions: make([]m.Vec3, len(positions))}
			for i, p := range positions {
				sm.Positions[i] = m.Vec3{X: p[0], Y: p[1], Z: p[2]}
			}

			if nIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
				normals, err := modeler.ReadNormal(doc, doc.Accessors[nIdx], nil)
				if err != nil {
					return nil, fmt.Errorf("reading prop normals: %w", err)
				}
				sm.Normals = make([]m.Vec3, len(normals))
				for i, n := range normals {
					sm.Normals[i] = m.Vec3{X: n[0], Y: n[1], Z: n[2]}
				}
			}

			if tIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
				uvs, err := modeler.ReadTextureCoord(doc, doc.Accessors[tIdx], nil)
				if err != nil {
					return nil, fmt.Errorf("reading prop texcoords: %w", err)
				}
				sm.UVs = make([]m.Vec2, len(uvs))
				for i, uv := range uvs {
					sm.UVs[i] = m.Vec2{X: uv[0], Y: uv[1]}
				}
			}

			if prim.Indices != nil {
				indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
				if err != nil {
					return nil, fmt.Errorf("reading prop indices: %w", err)
				}
				sm.Indices = indices
			}

			meshes = append(meshes, sm)
		}
	}

	prop, err := NewProp(name, meshes)
	if err != nil {
		return nil, fmt.Errorf("prop asset %s: %w", name, err)
	}
	return prop, nil
}
