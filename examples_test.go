package prizm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const starVertices = `v 2 2
v 10 0
v 2 -2
v 0 -10
v -2 -2
v -10 0
v -2 2
v 0 10
`

const documentationGolden = `## This file tests the prizm Go API
v 0 0 1 # Vertex A
v 3 0 1 # Vertex B
v 3 3 1 # Vertex C
f -3 -2 -1 # Triangle ABC
v 0 0 2
v 3 0 2
v 3 3 2
f -3 -2 -1 # Triangle ABC
` + starVertices + `l -8 -7 -6 -5 -4 -3 -2 -1 -8 # star boundary
` + starVertices + `f -8 -7 -6 -5 -4 -3 -2 -1 # star polygon
f -8 -7 -6 -5 -4 -3 -2 -1 # star polygon again
v -10 -10
v 10 -10
v 10 10
v -10 10
v -10 -10
l -5 -4 -3 -2 -1 # star bounding box
v 4 7
p -1 # these are concatenated
v 3 3
p -1 # some string @ 42 @ 0 0

#! set_annotations_visible 0 1
#! set_annotations_scale 0 1
#! set_annotations_color 0 0 0 255 255
#! set_vertex_index_labels_visible 0 0
#! set_vertex_position_labels_visible 0 0
#! set_vertex_label_color 0 0 0 0 255
#! set_vertex_label_scale 0 0.4
#! set_point_index_labels_visible 0 0
#! set_point_label_color 0 255 0 0 255
#! set_point_label_scale 0 0.4
#! set_segment_index_labels_visible 0 0
#! set_segment_label_color 0 0 255 0 255
#! set_segment_label_scale 0 0.4
#! set_triangle_index_labels_visible 0 0
#! set_triangle_label_color 0 0 0 255 255
#! set_triangle_label_scale 0 0.4
#! set_vertices_visible 0 1
#! set_vertices_color 0 0 0 255 255
#! set_vertices_size 0 7
#! set_points_visible 0 1
#! set_points_color 0 255 0 0 255
#! set_points_size 0 3
#! set_segments_visible 0 1
#! set_segments_color 0 255 0 0 255
#! set_segments_width 0 3
#! set_edges_visible 0 1
#! set_edges_color 0 0 0 0 255
#! set_edges_width 0 4
#! set_triangles_visible 0 1
#! set_triangles_color 0 0 255 0 255
`

func TestDocumentationExample(t *testing.T) {
	o := DocumentationExample()
	assert.Equal(t, documentationGolden, o.String())
	assert.NoError(t, o.Err())
	assert.Equal(t, 3+3+8+8+5+1+1, o.VertexCount())
}

func TestConcatenationExample(t *testing.T) {
	want := "## The first obj:\nv 0 0\nv 1 0\nl -2 -1\n## The second obj:\nv 1 2 3\np -1"
	o := ConcatenationExample()

	assert.Equal(t, want, o.String())
	assert.Equal(t, 3, o.VertexCount())
	assert.False(t, strings.Contains(o.String(), "\n\n"))
}
