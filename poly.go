package prizm

import "fmt"

const (
	minPolylinePoints = 2
	minPolygonPoints  = 3
)

// arity reports whether n indices are enough for the element, recording a
// violation otherwise.
func (o *Obj) arity(what string, n, need int) bool {
	if n >= need {
		return true
	}
	o.violation(ErrArity, fmt.Sprintf("%s with %d points, need %d", what, n, need))
	return false
}

//
// Polylines. These are sequences of segments.
//

// Polyline writes an l-element referencing the previous n vertices. When
// closed the first index is repeated at the end. n < 2 writes nothing.
func (o *Obj) Polyline(n int, closed bool) *Obj {
	if !o.arity("polyline", n, minPolylinePoints) {
		return o
	}
	o.L()
	for i := -n; i < 0; i++ {
		o.Insert(o.vRef(i))
	}
	if closed {
		o.Insert(o.vRef(-n))
	}
	return o
}

// PolylineIdx writes an l-element referencing the given vertices.
func (o *Obj) PolylineIdx(ids ...int) *Obj {
	if !o.arity("polyline", len(ids), minPolylinePoints) {
		return o
	}
	o.L()
	for _, i := range ids {
		o.Insert(o.vRef(i))
	}
	return o
}

// PolylineVN writes an oriented polyline, "l -n//-n ... -1//-1".
func (o *Obj) PolylineVN(n int, closed bool) *Obj {
	if !o.arity("polyline", n, minPolylinePoints) {
		return o
	}
	o.L()
	for i := -n; i < 0; i++ {
		o.Insert(o.vRef(i)).Add("//").Add(o.vnRef(i))
	}
	if closed {
		o.Insert(o.vRef(-n)).Add("//").Add(o.vnRef(-n))
	}
	return o
}

func (o *Obj) Polyline2(closed bool, pts ...Vec2) *Obj {
	if !o.arity("polyline", len(pts), minPolylinePoints) {
		return o
	}
	for _, p := range pts {
		o.Vertex2(p)
	}
	return o.Polyline(len(pts), closed)
}

func (o *Obj) Polyline3(closed bool, pts ...Vec3) *Obj {
	if !o.arity("polyline", len(pts), minPolylinePoints) {
		return o
	}
	for _, p := range pts {
		o.Vertex3(p)
	}
	return o.Polyline(len(pts), closed)
}

// Polyline2Coords writes the vertices in a flat x,y buffer and a polyline
// referencing them.
func (o *Obj) Polyline2Coords(xy []float64, closed bool) *Obj {
	return o.polyCoords("polyline", xy, 2, closed)
}

// Polyline3Coords writes the vertices in a flat x,y,z buffer and a polyline
// referencing them.
func (o *Obj) Polyline3Coords(xyz []float64, closed bool) *Obj {
	return o.polyCoords("polyline", xyz, 3, closed)
}

//
// Polygons. These are triangle fans.
//

// Polygon writes an f-element referencing the previous n vertices. n < 3
// writes nothing.
func (o *Obj) Polygon(n int) *Obj {
	if !o.arity("polygon", n, minPolygonPoints) {
		return o
	}
	o.F()
	for i := -n; i < 0; i++ {
		o.Insert(o.vRef(i))
	}
	return o
}

func (o *Obj) PolygonIdx(ids ...int) *Obj {
	if !o.arity("polygon", len(ids), minPolygonPoints) {
		return o
	}
	o.F()
	for _, i := range ids {
		o.Insert(o.vRef(i))
	}
	return o
}

func (o *Obj) PolygonVN(n int) *Obj {
	if !o.arity("polygon", n, minPolygonPoints) {
		return o
	}
	o.F()
	for i := -n; i < 0; i++ {
		o.Insert(o.vRef(i)).Add("//").Add(o.vnRef(i))
	}
	return o
}

func (o *Obj) Polygon2(pts ...Vec2) *Obj {
	if !o.arity("polygon", len(pts), minPolygonPoints) {
		return o
	}
	for _, p := range pts {
		o.Vertex2(p)
	}
	return o.Polygon(len(pts))
}

func (o *Obj) Polygon3(pts ...Vec3) *Obj {
	if !o.arity("polygon", len(pts), minPolygonPoints) {
		return o
	}
	for _, p := range pts {
		o.Vertex3(p)
	}
	return o.Polygon(len(pts))
}

func (o *Obj) Polygon2Coords(xy []float64) *Obj {
	return o.polyCoords("polygon", xy, 2, false)
}

func (o *Obj) Polygon3Coords(xyz []float64) *Obj {
	return o.polyCoords("polygon", xyz, 3, false)
}

// polyCoords writes len(coords)/dim vertices and the element. Trailing
// coordinates that don't make a whole point are ignored. No newline is
// written after the element so the caller can annotate it.
func (o *Obj) polyCoords(what string, coords []float64, dim int, closed bool) *Obj {
	n := len(coords) / dim
	need := minPolylinePoints
	if what == "polygon" {
		need = minPolygonPoints
	}
	if !o.arity(what, n, need) {
		return o
	}
	for i := 0; i < n; i++ {
		o.V()
		for _, c := range coords[i*dim : (i+1)*dim] {
			o.Insert(c)
		}
	}
	if what == "polygon" {
		return o.Polygon(n)
	}
	return o.Polyline(n, closed)
}
