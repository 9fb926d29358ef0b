// Package mesh reads Wavefront OBJ geometry and flattens it into the
// triangle vertex array consumed by the frame cycle.
package mesh

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"obj-wireframe/internal/mathutil"
)

// Load reads an OBJ file from disk.
func Load(path string) (Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return Mesh{}, fmt.Errorf("mesh: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return Mesh{}, fmt.Errorf("mesh: %s: %w", path, err)
	}
	return m, nil
}

// Parse reads OBJ text. Only "v" and "f" records are used; every other
// record type is skipped. Positions are multiplied by IngestScale.
func Parse(r io.Reader) (Mesh, error) {
	var m Mesh
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			p, err := parseVertex(fields[1:])
			if err != nil {
				return Mesh{}, fmt.Errorf("line %d: %w", line, err)
			}
			m.Vertices = append(m.Vertices, p.Mul(IngestScale))
		case "f":
			face, err := parseFace(fields[1:], len(m.Vertices))
			if err != nil {
				return Mesh{}, fmt.Errorf("line %d: %w", line, err)
			}
			m.Faces = append(m.Faces, face)
		}
	}
	if err := sc.Err(); err != nil {
		return Mesh{}, fmt.Errorf("read: %w", err)
	}
	return m, nil
}

func parseVertex(fields []string) (mathutil.Vec3, error) {
	if len(fields) < 3 {
		return mathutil.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var p mathutil.Vec3
	for k := 0; k < 3; k++ {
		f, err := strconv.ParseFloat(fields[k], 64)
		if err != nil {
			return mathutil.Vec3{}, fmt.Errorf("vertex coordinate %q: %w", fields[k], err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return mathutil.Vec3{}, fmt.Errorf("vertex coordinate %q is not finite", fields[k])
		}
		p[k] = f
	}
	return p, nil
}

// parseFace reads "p", "p/t", "p//n" and "p/t/n" corners. nv is the number
// of vertices seen so far, used to resolve negative (relative) indices.
func parseFace(fields []string, nv int) (Face, error) {
	if len(fields) < 3 {
		return Face{}, fmt.Errorf("face needs at least 3 corners, got %d", len(fields))
	}
	face := Face{Corners: make([]Index, 0, len(fields))}
	for _, tok := range fields {
		parts := strings.Split(tok, "/")
		if len(parts) > 3 {
			return Face{}, fmt.Errorf("face corner %q: too many components", tok)
		}
		idx := Index{-1, -1, -1}
		for k, s := range parts {
			if s == "" {
				if k == 0 {
					return Face{}, fmt.Errorf("face corner %q: missing position index", tok)
				}
				continue
			}
			n, err := strconv.Atoi(s)
			if err != nil {
				return Face{}, fmt.Errorf("face corner %q: %w", tok, err)
			}
			switch {
			case n > 0:
				idx[k] = n - 1
			case n < 0 && k == 0:
				idx[k] = nv + n
			case n < 0:
				// Relative texture/normal indices are not tracked.
				idx[k] = -1
			default:
				return Face{}, fmt.Errorf("face corner %q: index 0 is invalid", tok)
			}
		}
		face.Corners = append(face.Corners, idx)
	}
	return face, nil
}
