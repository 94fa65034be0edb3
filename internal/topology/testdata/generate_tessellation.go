//go:build ignore

// generate_tessellation regenerates ../tessellation.go.
//
// The table triangulates the canonical landmarks laid out as one
// center vertex, interior concentric rings of sizes
// 12 20 28 36 44 52 58 60 56 56, and the 36 FaceOval indices as the
// outer boundary ring. Interior slots take the non-oval, non-unused
// indices in ascending order; the boundary slots take FaceOval in its
// ring order, so the tessellation's boundary edges trace FaceOval
// exactly. With a 36-vertex boundary, 880 triangles reference
// (880+36+2)/2 = 459 vertices, leaving nine landmarks unreferenced.
// Triples are emitted counter-clockwise in the canonical (pre-mirror)
// landmark plane.
//
// Run from this directory:
//
//	go run generate_tessellation.go > ../tessellation.go
package main

import (
	"fmt"
	"math"
	"os"
)

var faceOval = []int{
	10, 338, 297, 332, 284, 251, 389, 356, 454, 323, 361, 288,
	397, 365, 379, 378, 400, 377, 152, 148, 176, 149, 150, 136,
	172, 58, 132, 93, 234, 127, 162, 21, 54, 103, 67, 109,
}

var unused = []int{3, 30, 62, 76, 184, 191, 266, 306, 414}

var ringSizes = []int{12, 20, 28, 36, 44, 52, 58, 60, 56, 56}

type vert struct{ x, y float64 }

func main() {
	skip := make(map[int]bool)
	for _, idx := range faceOval {
		skip[idx] = true
	}
	for _, idx := range unused {
		skip[idx] = true
	}
	var interior []int
	for idx := 0; idx < 468; idx++ {
		if !skip[idx] {
			interior = append(interior, idx)
		}
	}

	want := 1
	for _, n := range ringSizes {
		want += n
	}
	if len(interior) != want {
		fmt.Fprintf(os.Stderr, "interior has %d vertices, ring layout wants %d\n", len(interior), want)
		os.Exit(1)
	}

	// Ring list in landmark indices: interior rings then the oval.
	var rings [][]int
	k := 1
	for _, n := range ringSizes {
		rings = append(rings, interior[k:k+n])
		k += n
	}
	rings = append(rings, faceOval)
	center := interior[0]

	coords := make(map[int]vert, 468)
	coords[center] = vert{0, 0}
	for ri, ring := range rings {
		r := float64(ri+1) / float64(len(rings))
		for i, idx := range ring {
			theta := 2 * math.Pi * float64(i) / float64(len(ring))
			coords[idx] = vert{r * math.Cos(theta), r * math.Sin(theta)}
		}
	}

	var tris [][3]int
	emit := func(a, b, c int) {
		// Force counter-clockwise orientation.
		av, bv, cv := coords[a], coords[b], coords[c]
		if (bv.x-av.x)*(cv.y-av.y)-(cv.x-av.x)*(bv.y-av.y) < 0 {
			b, c = c, b
		}
		tris = append(tris, [3]int{a, b, c})
	}

	// Fan from the center vertex to the first ring.
	r0 := rings[0]
	for i := 0; i < len(r0); i++ {
		emit(center, r0[i], r0[(i+1)%len(r0)])
	}

	// Stitch consecutive rings by angular merge.
	for k := 0; k < len(rings)-1; k++ {
		inner, outer := rings[k], rings[k+1]
		a, b := len(inner), len(outer)
		i, j := 0, 0
		for i < a || j < b {
			ta := float64(i+1) / float64(a)
			tb := float64(j+1) / float64(b)
			if j >= b || (i < a && ta <= tb) {
				emit(inner[i%a], outer[j%b], inner[(i+1)%a])
				i++
			} else {
				emit(outer[j%b], outer[(j+1)%b], inner[i%a])
				j++
			}
		}
	}

	if len(tris) != 880 {
		fmt.Fprintf(os.Stderr, "generated %d triangles, want 880\n", len(tris))
		os.Exit(1)
	}

	fmt.Println("// Code generated by testdata/generate_tessellation.go. DO NOT EDIT.")
	fmt.Println()
	fmt.Println("package topology")
	fmt.Println()
	fmt.Println("// Tessellation is the fixed triangulation of the face surface: 880")
	fmt.Println("// index triples over the landmark indices, wound counter-clockwise in")
	fmt.Println("// the canonical disk layout. Its boundary edges trace FaceOval, so the")
	fmt.Println("// face perimeter and the back shell share the same ring.")
	fmt.Println("var Tessellation = [880][3]uint16{")
	for i := 0; i < len(tris); i += 6 {
		fmt.Print("\t")
		for j := i; j < i+6 && j < len(tris); j++ {
			t := tris[j]
			fmt.Printf("{%d, %d, %d},", t[0], t[1], t[2])
			if j < i+5 && j < len(tris)-1 {
				fmt.Print(" ")
			}
		}
		fmt.Println()
	}
	fmt.Println("}")
}
