package prizm

// Element indices are 1-based, see ResolveIndex. Methods without an Idx
// suffix reference the most recently written records.

//
// Points
//

// Point writes "p -1", referencing the previous vertex.
func (o *Obj) Point() *Obj {
	return o.PointIdx(-1)
}

func (o *Obj) PointIdx(i int) *Obj {
	return o.P().Insert(o.vRef(i))
}

// PointVN writes an oriented point referencing the previous vertex and normal.
func (o *Obj) PointVN() *Obj {
	return o.PointVNIdx(-1, -1)
}

func (o *Obj) PointVNIdx(vi, ni int) *Obj {
	return o.P().Insert(o.vRef(vi)).Add("//").Add(o.vnRef(ni))
}

func (o *Obj) Point2(a Vec2) *Obj {
	return o.Vertex2(a).Point()
}

func (o *Obj) Point3(a Vec3) *Obj {
	return o.Vertex3(a).Point()
}

func (o *Obj) Point3VN(a, n Vec3) *Obj {
	return o.Vertex3(a).Normal3(n).PointVN()
}

//
// Segments
//

// Segment writes "l -2 -1", connecting the two previous vertices.
func (o *Obj) Segment() *Obj {
	return o.SegmentIdx(-2, -1)
}

func (o *Obj) SegmentIdx(i, j int) *Obj {
	return o.L().Insert(o.vRef(i)).Insert(o.vRef(j))
}

func (o *Obj) SegmentVN() *Obj {
	return o.SegmentVNIdx([2]int{-2, -1}, [2]int{-2, -1})
}

// SegmentVNIdx writes "l v0//n0 v1//n1".
func (o *Obj) SegmentVNIdx(v, n [2]int) *Obj {
	o.L()
	for k := range v {
		o.Insert(o.vRef(v[k])).Add("//").Add(o.vnRef(n[k]))
	}
	return o
}

func (o *Obj) Segment2(a, b Vec2) *Obj {
	return o.Vertex2(a).Vertex2(b).Segment()
}

func (o *Obj) Segment3(a, b Vec3) *Obj {
	return o.Vertex3(a).Vertex3(b).Segment()
}

func (o *Obj) Segment3VN(va, vb, na, nb Vec3) *Obj {
	return o.Vertex3(va).Normal3(na).Vertex3(vb).Normal3(nb).SegmentVN()
}

//
// Triangles
//

var lastThree = [3]int{-3, -2, -1}

// Triangle writes "f -3 -2 -1", referencing the three previous vertices.
func (o *Obj) Triangle() *Obj {
	return o.TriangleIdx(-3, -2, -1)
}

func (o *Obj) TriangleIdx(i, j, k int) *Obj {
	return o.F().Insert(o.vRef(i)).Insert(o.vRef(j)).Insert(o.vRef(k))
}

func (o *Obj) TriangleVN() *Obj {
	return o.TriangleVNIdx(lastThree, lastThree)
}

// TriangleVNIdx writes "f v//n v//n v//n".
func (o *Obj) TriangleVNIdx(v, n [3]int) *Obj {
	o.F()
	for k := range v {
		o.Insert(o.vRef(v[k])).Add("//").Add(o.vnRef(n[k]))
	}
	return o
}

func (o *Obj) TriangleVT() *Obj {
	return o.TriangleVTIdx(lastThree, lastThree)
}

// TriangleVTIdx writes "f v/t v/t v/t".
func (o *Obj) TriangleVTIdx(v, t [3]int) *Obj {
	o.F()
	for k := range v {
		o.Insert(o.vRef(v[k])).Add("/").Add(o.vtRef(t[k]))
	}
	return o
}

func (o *Obj) TriangleVNT() *Obj {
	return o.TriangleVNTIdx(lastThree, lastThree, lastThree)
}

// TriangleVNTIdx writes "f v/t/n v/t/n v/t/n".
func (o *Obj) TriangleVNTIdx(v, n, t [3]int) *Obj {
	o.F()
	for k := range v {
		o.Insert(o.vRef(v[k])).Add("/").Add(o.vtRef(t[k])).Add("/").Add(o.vnRef(n[k]))
	}
	return o
}

func (o *Obj) Triangle2(a, b, c Vec2) *Obj {
	return o.Vertex2(a).Vertex2(b).Vertex2(c).Triangle()
}

func (o *Obj) Triangle3(a, b, c Vec3) *Obj {
	return o.Vertex3(a).Vertex3(b).Vertex3(c).Triangle()
}

// Triangle3VN writes three vertices each followed by its normal, then an
// oriented triangle.
func (o *Obj) Triangle3VN(va, vb, vc, na, nb, nc Vec3) *Obj {
	o.Vertex3(va).Normal3(na)
	o.Vertex3(vb).Normal3(nb)
	o.Vertex3(vc).Normal3(nc)
	return o.TriangleVN()
}

// Triangle3VT uses 3D texture vertices (tangents).
func (o *Obj) Triangle3VT(va, vb, vc, ta, tb, tc Vec3) *Obj {
	o.Vertex3(va).Tangent3(ta)
	o.Vertex3(vb).Tangent3(tb)
	o.Vertex3(vc).Tangent3(tc)
	return o.TriangleVT()
}

func (o *Obj) Triangle3VNT(va, vb, vc, na, nb, nc, ta, tb, tc Vec3) *Obj {
	o.Vertex3(va).Normal3(na).Tangent3(ta)
	o.Vertex3(vb).Normal3(nb).Tangent3(tb)
	o.Vertex3(vc).Normal3(nc).Tangent3(tc)
	return o.TriangleVNT()
}
