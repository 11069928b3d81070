package prizm

//
// Command annotations.
//
// A command annotation is a line "#! name args..." which the viewer runs as
// a console command once the whole file has loaded, wherever it appears in
// the file. The helpers below configure how the loaded item is displayed.
//

// Command starts a command annotation on a new line. Arguments should be
// inserted after it.
func (o *Obj) Command(name string) *Obj {
	return o.Newline().Hash().Bang().Insert(name)
}

// ItemCommand starts a command whose first argument is an item index. When
// a file is loaded the item holding its geometry has index 0, items created
// by earlier commands in the same file get indices > 0.
func (o *Obj) ItemCommand(name string, item int) *Obj {
	return o.Command(name).Insert(item)
}

func (o *Obj) itemCommand(name string, arg any) *Obj {
	return o.ItemCommand(name, 0).Insert(arg)
}

// Annotation labels

func (o *Obj) SetAnnotationsVisible(visible bool) *Obj {
	return o.itemCommand("set_annotations_visible", visible)
}

func (o *Obj) SetAnnotationsColor(c Color) *Obj {
	return o.itemCommand("set_annotations_color", c)
}

// SetAnnotationsScale sets the label text scale, in [0.2, 1.0]. The viewer
// default is 0.4.
func (o *Obj) SetAnnotationsScale(scale float64) *Obj {
	return o.itemCommand("set_annotations_scale", scale)
}

// Vertex labels

// SetVertexIndexLabelsVisible toggles labels showing 0-based v-record indices.
func (o *Obj) SetVertexIndexLabelsVisible(visible bool) *Obj {
	return o.itemCommand("set_vertex_index_labels_visible", visible)
}

// SetVertexPositionLabelsVisible toggles labels showing v-record coordinates.
func (o *Obj) SetVertexPositionLabelsVisible(visible bool) *Obj {
	return o.itemCommand("set_vertex_position_labels_visible", visible)
}

func (o *Obj) SetVertexLabelColor(c Color) *Obj {
	return o.itemCommand("set_vertex_label_color", c)
}

func (o *Obj) SetVertexLabelScale(scale float64) *Obj {
	return o.itemCommand("set_vertex_label_scale", scale)
}

// Point labels. The vertex label commands are usually what you want.

func (o *Obj) SetPointIndexLabelsVisible(visible bool) *Obj {
	return o.itemCommand("set_point_index_labels_visible", visible)
}

func (o *Obj) SetPointLabelColor(c Color) *Obj {
	return o.itemCommand("set_point_label_color", c)
}

func (o *Obj) SetPointLabelScale(scale float64) *Obj {
	return o.itemCommand("set_point_label_scale", scale)
}

// Segment labels

func (o *Obj) SetSegmentIndexLabelsVisible(visible bool) *Obj {
	return o.itemCommand("set_segment_index_labels_visible", visible)
}

func (o *Obj) SetSegmentLabelColor(c Color) *Obj {
	return o.itemCommand("set_segment_label_color", c)
}

func (o *Obj) SetSegmentLabelScale(scale float64) *Obj {
	return o.itemCommand("set_segment_label_scale", scale)
}

// Triangle labels

func (o *Obj) SetTriangleIndexLabelsVisible(visible bool) *Obj {
	return o.itemCommand("set_triangle_index_labels_visible", visible)
}

func (o *Obj) SetTriangleLabelColor(c Color) *Obj {
	return o.itemCommand("set_triangle_label_color", c)
}

func (o *Obj) SetTriangleLabelScale(scale float64) *Obj {
	return o.itemCommand("set_triangle_label_scale", scale)
}

// Vertex rendering

func (o *Obj) SetVerticesVisible(visible bool) *Obj {
	return o.itemCommand("set_vertices_visible", visible)
}

func (o *Obj) SetVerticesColor(c Color) *Obj {
	return o.itemCommand("set_vertices_color", c)
}

func (o *Obj) SetVerticesSize(size int) *Obj {
	return o.itemCommand("set_vertices_size", size)
}

// Point rendering

func (o *Obj) SetPointsVisible(visible bool) *Obj {
	return o.itemCommand("set_points_visible", visible)
}

func (o *Obj) SetPointsColor(c Color) *Obj {
	return o.itemCommand("set_points_color", c)
}

func (o *Obj) SetPointsSize(size int) *Obj {
	return o.itemCommand("set_points_size", size)
}

// Segment rendering

func (o *Obj) SetSegmentsVisible(visible bool) *Obj {
	return o.itemCommand("set_segments_visible", visible)
}

func (o *Obj) SetSegmentsColor(c Color) *Obj {
	return o.itemCommand("set_segments_color", c)
}

func (o *Obj) SetSegmentsWidth(width float64) *Obj {
	return o.itemCommand("set_segments_width", width)
}

// Edge rendering, this applies to triangle edges but not segments.

func (o *Obj) SetEdgesVisible(visible bool) *Obj {
	return o.itemCommand("set_edges_visible", visible)
}

func (o *Obj) SetEdgesColor(c Color) *Obj {
	return o.itemCommand("set_edges_color", c)
}

func (o *Obj) SetEdgesWidth(width float64) *Obj {
	return o.itemCommand("set_edges_width", width)
}

// Triangle rendering

func (o *Obj) SetTrianglesVisible(visible bool) *Obj {
	return o.itemCommand("set_triangles_visible", visible)
}

func (o *Obj) SetTrianglesColor(c Color) *Obj {
	return o.itemCommand("set_triangles_color", c)
}
