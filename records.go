package prizm

//
// Directives. Each starts a new line.
//

// V starts a vertex position record.
func (o *Obj) V() *Obj {
	o.vCount++
	return o.Newline().Add("v")
}

// VN starts a vertex normal record.
func (o *Obj) VN() *Obj {
	o.vnCount++
	return o.Newline().Add("vn")
}

// VT starts a texture vertex record.
func (o *Obj) VT() *Obj {
	o.vtCount++
	return o.Newline().Add("vt")
}

// P starts a point element.
func (o *Obj) P() *Obj {
	return o.Newline().Add("p")
}

// L starts a segment or polyline element.
func (o *Obj) L() *Obj {
	return o.Newline().Add("l")
}

// F starts a triangle or polygon element.
func (o *Obj) F() *Obj {
	return o.Newline().Add("f")
}

// G starts a group directive. The viewer currently ignores groups.
func (o *Obj) G() *Obj {
	return o.Newline().Add("g")
}

func (o *Obj) Group(name string) *Obj {
	return o.G().Insert(name)
}

//
// Vectors. These write " x y [z [w]]" on the current line.
//

func (o *Obj) Vector2(v Vec2) *Obj { return o.Insert(v) }
func (o *Obj) Vector3(v Vec3) *Obj { return o.Insert(v) }
func (o *Obj) Vector4(v Vec4) *Obj { return o.Insert(v) }

//
// Records
//

// Vertex2 writes "\nv a.x a.y".
func (o *Obj) Vertex2(a Vec2) *Obj {
	return o.V().Vector2(a)
}

// Vertex3 writes "\nv a.x a.y a.z".
func (o *Obj) Vertex3(a Vec3) *Obj {
	return o.V().Vector3(a)
}

// Normal3 writes "\nvn n.x n.y n.z".
func (o *Obj) Normal3(n Vec3) *Obj {
	return o.VN().Vector3(n)
}

// UV2 writes a 2D texture vertex "\nvt t.x t.y".
func (o *Obj) UV2(t Vec2) *Obj {
	return o.VT().Vector2(t)
}

// Tangent3 writes a 3D texture vertex "\nvt t.x t.y t.z".
func (o *Obj) Tangent3(t Vec3) *Obj {
	return o.VT().Vector3(t)
}
