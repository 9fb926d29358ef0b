package mesh

import "obj-wireframe/internal/mathutil"

// IngestScale is applied to every vertex position as it is read.
// The Y axis is negated because buffer rows grow downwards.
var IngestScale = mathutil.Vec3{200, -200, 200}

// Index is one face corner: position, texture and normal indices, 0-based.
// Missing texture or normal components are -1.
type Index [3]int

// Face holds the corners of one polygon in file order.
type Face struct {
	Corners []Index
}

// Mesh holds parsed geometry: scaled vertex positions and the faces indexing them.
type Mesh struct {
	Vertices []mathutil.Vec3
	Faces    []Face
}
