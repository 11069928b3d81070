package prizm

import "math"

// DocumentationExample builds an obj that exercises most of the API: records
// with annotations, compound shapes, attributes and command annotations.
// The prizm demo command writes it to disk.
func DocumentationExample() *Obj {
	obj := NewObj()

	// Comments start with ## so other OBJ viewers ignore them too.
	obj.Comment("This file tests the prizm Go API")

	// Three vertices and a triangle, the verbose way.
	obj.Vertex3(V3(0, 0, 1)).Annotation("Vertex A")
	obj.Vertex3(V3(3, 0, 1)).Annotation("Vertex B")
	obj.Vertex3(V3(3, 3, 1)).Annotation("Vertex C")
	obj.Triangle().Annotation("Triangle ABC")

	// ...and as a one-liner.
	obj.Triangle3(V3(0, 0, 2), V3(3, 0, 2), V3(3, 3, 2)).Annotation("Triangle ABC")

	// A 2D star as a flat coordinate buffer.
	star := []float64{2, 2, 10, 0, 2, -2, 0, -10, -2, -2, -10, 0, -2, 2, 0, 10}
	points := make([]Vec2, 0, len(star)/2)
	for i := 0; i+1 < len(star); i += 2 {
		points = append(points, V2(star[i], star[i+1]))
	}

	obj.Polyline2Coords(star, true).Annotation("star boundary")
	obj.Polygon2(points...).Annotation("star polygon")

	// Reference the vertices just written instead of writing them again.
	obj.Polygon(len(points)).Annotation("star polygon again")

	lo := V2(math.Inf(1), math.Inf(1))
	hi := V2(math.Inf(-1), math.Inf(-1))
	for _, p := range points {
		lo = V2(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y))
		hi = V2(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y))
	}
	obj.Box2MinMax(lo, hi).Annotation("star bounding box")

	// Each line has a single annotation string, repeated calls concatenate.
	obj.Point2(V2(4, 7)).Annotation("these").Annotation("are").Annotation("concatenated")

	// Attributes are @-prefixed data inside the annotation string.
	obj.Point2(V2(3, 3)).Annotation("some string").Attribute(42).Attribute(V2(0, 0))
	obj.Newline()

	// Display settings applied by the viewer once the file has loaded.
	obj.SetAnnotationsVisible(true)
	obj.SetAnnotationsScale(1)
	obj.SetAnnotationsColor(Blue)

	obj.SetPrecision(2)
	obj.SetVertexIndexLabelsVisible(false)
	obj.SetVertexPositionLabelsVisible(false)
	obj.SetVertexLabelColor(Black)
	obj.SetVertexLabelScale(.4)
	obj.SetPointIndexLabelsVisible(false)
	obj.SetPointLabelColor(Red)
	obj.SetPointLabelScale(.4)
	obj.SetSegmentIndexLabelsVisible(false)
	obj.SetSegmentLabelColor(Green)
	obj.SetSegmentLabelScale(.4)
	obj.SetTriangleIndexLabelsVisible(false)
	obj.SetTriangleLabelColor(Blue)
	obj.SetTriangleLabelScale(.4)
	obj.SetVerticesVisible(true)
	obj.SetVerticesColor(Blue)
	obj.SetVerticesSize(7)
	obj.SetPointsVisible(true)
	obj.SetPointsColor(Red)
	obj.SetPointsSize(3)
	obj.SetSegmentsVisible(true)
	obj.SetSegmentsColor(Red)
	obj.SetSegmentsWidth(3)
	obj.SetEdgesVisible(true)
	obj.SetEdgesColor(Black)
	obj.SetEdgesWidth(4)
	obj.SetTrianglesVisible(true)
	obj.SetTrianglesColor(Green)

	return obj.Newline()
}

// ConcatenationExample shows Append joining two objs that only use
// relative indices.
func ConcatenationExample() *Obj {
	first := NewObj().Segment2(V2(0, 0), V2(1, 0))
	second := NewObj().Point3(V3(1, 2, 3))

	return NewObj().
		Comment("The first obj:").Append(first).
		Newline().
		Comment("The second obj:").Append(second)
}
