package prizm

import "github.com/go-gl/mathgl/mgl64"

// Box2MinMax writes an axis-aligned 2D box as a 5 point polyline.
func (o *Obj) Box2MinMax(lo, hi Vec2) *Obj {
	return o.Polyline2(false, lo, V2(hi.X, lo.Y), hi, V2(lo.X, hi.Y), lo)
}

// Box2CenterExtents writes a 2D box given its centre and side lengths.
func (o *Obj) Box2CenterExtents(center, extents Vec2) *Obj {
	half := extents.Scale(0.5)
	return o.Box2MinMax(center.Sub(half), center.Add(half))
}

// Box3MinMax writes an axis-aligned 3D box as a single 16 point polyline
// covering all 12 edges. Some edges are visited twice.
func (o *Obj) Box3MinMax(lo, hi Vec3) *Obj {
	return o.Polyline3(false, boxPath(boxCorners(lo, hi))...)
}

func (o *Obj) Box3CenterExtents(center, extents Vec3) *Obj {
	half := extents.Scale(0.5)
	return o.Box3MinMax(center.Sub(half), center.Add(half))
}

// Box3Transformed writes the box lo/hi with every corner transformed by m,
// e.g. an oriented bounding box in world space.
func (o *Obj) Box3Transformed(lo, hi Vec3, m mgl64.Mat4) *Obj {
	corners := boxCorners(lo, hi)
	for i, c := range corners {
		corners[i] = Vec3FromMgl(mgl64.TransformCoordinate(c.Mgl(), m))
	}
	return o.Polyline3(false, boxPath(corners)...)
}

// boxCorners returns the corners indexed by their xyz bits, so corner 5
// (0b101) is (hi.X, lo.Y, hi.Z).
func boxCorners(lo, hi Vec3) [8]Vec3 {
	var c [8]Vec3
	for i := range c {
		p := lo
		if i&4 != 0 {
			p.X = hi.X
		}
		if i&2 != 0 {
			p.Y = hi.Y
		}
		if i&1 != 0 {
			p.Z = hi.Z
		}
		c[i] = p
	}
	return c
}

// p000 p100 p110 p010 p000 p001 p101 p100 p101 p111 p110 p111 p011 p010 p011 p001
var boxPathOrder = [16]int{0b000, 0b100, 0b110, 0b010, 0b000, 0b001, 0b101, 0b100, 0b101, 0b111, 0b110, 0b111, 0b011, 0b010, 0b011, 0b001}

func boxPath(c [8]Vec3) []Vec3 {
	path := make([]Vec3, len(boxPathOrder))
	for i, k := range boxPathOrder {
		path[i] = c[k]
	}
	return path
}
