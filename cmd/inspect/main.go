package main

import (
	"fmt"
	"os"

	"obj-wireframe/internal/mesh"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: inspect <file.obj>")
		os.Exit(2)
	}
	path := os.Args[1]
	m, err := mesh.Load(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	corners := map[int]int{}
	for _, f := range m.Faces {
		corners[len(f.Corners)]++
	}
	fmt.Printf("Vertices: %d, Faces: %d\n", len(m.Vertices), len(m.Faces))
	for n := 3; n <= 8; n++ {
		if c := corners[n]; c > 0 {
			fmt.Printf("  %d-gons: %d\n", n, c)
		}
	}

	lo, hi := mesh.Bounds(m.Vertices)
	fmt.Printf("BBox (scaled): X[%.1f, %.1f] Y[%.1f, %.1f] Z[%.1f, %.1f]\n", lo[0], hi[0], lo[1], hi[1], lo[2], hi[2])
	size := hi.Sub(lo)
	fmt.Printf("Size: %.1f x %.1f x %.1f\n", size[0], size[1], size[2])

	flat, err := mesh.Flatten(m)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Triangles: %d (%d flattened vertices)\n", len(flat)/3, len(flat))
}
