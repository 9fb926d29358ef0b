package mesh

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"obj-wireframe/internal/mathutil"
)

const quadOBJ = `# unit quad
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0.5
vt 0 0
vn 0 0 1
s off
f 1/1/1 2/1/1 3/1/1 4/1/1
`

func TestParseScalesVertices(t *testing.T) {
	m, err := Parse(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatal(err)
	}
	want := []mathutil.Vec3{{0, 0, 0}, {200, 0, 0}, {200, -200, 0}, {0, -200, 100}}
	if len(m.Vertices) != len(want) {
		t.Fatalf("got %d vertices, want %d", len(m.Vertices), len(want))
	}
	for i := range want {
		if m.Vertices[i] != want[i] {
			t.Errorf("vertex %d = %v, want %v", i, m.Vertices[i], want[i])
		}
	}
	if len(m.Faces) != 1 || len(m.Faces[0].Corners) != 4 {
		t.Fatalf("faces = %+v", m.Faces)
	}
	if got := m.Faces[0].Corners[2]; got != (Index{2, 0, 0}) {
		t.Errorf("corner 2 = %v, want 0-based {2 0 0}", got)
	}
}

func TestParseCornerForms(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2/5 3//7\nf -3 -2 -1\n"
	m, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := m.Faces[0].Corners, []Index{{0, -1, -1}, {1, 4, -1}, {2, -1, 6}}; !equalIdx(got, want) {
		t.Errorf("corners = %v, want %v", got, want)
	}
	if got, want := m.Faces[1].Corners, []Index{{0, -1, -1}, {1, -1, -1}, {2, -1, -1}}; !equalIdx(got, want) {
		t.Errorf("relative corners = %v, want %v", got, want)
	}
}

func equalIdx(a, b []Index) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"bad coordinate": "v 0 x 0\n",
		"short vertex":   "v 1 2\n",
		"bad index":      "v 0 0 0\nf 1/a/1 1 1\n",
		"zero index":     "v 0 0 0\nf 0 1 1\n",
		"no position":    "v 0 0 0\nf /1/1 1 1\n",
		"two corners":    "v 0 0 0\nf 1 1\n",
		"extra slashes":  "v 0 0 0\nf 1/1/1/1 1 1\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(src)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.obj"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.obj")
	if err := os.WriteFile(path, []byte(quadOBJ), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Vertices) != 4 || len(m.Faces) != 1 {
		t.Errorf("got %d vertices, %d faces", len(m.Vertices), len(m.Faces))
	}
}

func TestFlattenFansPolygons(t *testing.T) {
	m, err := Parse(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatal(err)
	}
	flat, err := Flatten(m)
	if err != nil {
		t.Fatal(err)
	}
	if len(flat)%3 != 0 || len(flat) != 6 {
		t.Fatalf("len = %d, want 6", len(flat))
	}
	v := m.Vertices
	want := []mathutil.Vec3{v[0], v[1], v[2], v[0], v[2], v[3]}
	for i := range want {
		if flat[i] != want[i] {
			t.Errorf("flat[%d] = %v, want %v", i, flat[i], want[i])
		}
	}
}

func TestFlattenRejectsBadIndex(t *testing.T) {
	m, err := Parse(strings.NewReader("v 0 0 0\nv 1 0 0\nf 1 2 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Flatten(m); err == nil {
		t.Error("expected out-of-range error")
	}
}

func TestBounds(t *testing.T) {
	lo, hi := Bounds([]mathutil.Vec3{{1, -2, 3}, {-4, 5, 0}})
	if lo != (mathutil.Vec3{-4, -2, 0}) || hi != (mathutil.Vec3{1, 5, 3}) {
		t.Errorf("bounds = %v %v", lo, hi)
	}
}
