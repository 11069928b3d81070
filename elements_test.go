package prizm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecords(t *testing.T) {
	testCases := []struct {
		name string
		obj  *Obj
		want string
	}{
		{"vertex2", NewObj().Vertex2(V2(1.5, -2)), "\nv 1.5 -2"},
		{"vertex3", NewObj().Vertex3(V3(1, 2, 3)), "\nv 1 2 3"},
		{"normal3", NewObj().Normal3(V3(0, 0, 1)), "\nvn 0 0 1"},
		{"uv2", NewObj().UV2(V2(0.25, 0.75)), "\nvt 0.25 0.75"},
		{"tangent3", NewObj().Tangent3(V3(1, 0, 0)), "\nvt 1 0 0"},
		{"vector4", NewObj().Add("x").Vector4(V4(1, 2, 3, 4)), "x 1 2 3 4"},
		{"group", NewObj().Group("part"), "\ng part"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.obj.String())
		})
	}
}

func TestRecordCounters(t *testing.T) {
	o := NewObj().
		Vertex2(V2(0, 0)).Vertex3(V3(0, 0, 0)).
		Normal3(V3(0, 0, 1)).
		UV2(V2(0, 0)).Tangent3(V3(0, 0, 0)).Tangent3(V3(0, 0, 0))

	assert.Equal(t, 2, o.VertexCount())
	assert.Equal(t, 1, o.NormalCount())
	assert.Equal(t, 3, o.TexcoordCount())

	o.Point().Segment().Triangle().Group("g")
	assert.Equal(t, 2, o.VertexCount(), "elements don't write records")
}

func TestElements(t *testing.T) {
	testCases := []struct {
		name string
		obj  *Obj
		want string
	}{
		{"point", NewObj().Point(), "\np -1"},
		{"point idx", NewObj().PointIdx(7), "\np 7"},
		{"point vn", NewObj().PointVN(), "\np -1//-1"},
		{"point vn idx", NewObj().PointVNIdx(3, 4), "\np 3//4"},
		{"segment", NewObj().Segment(), "\nl -2 -1"},
		{"segment idx", NewObj().SegmentIdx(1, 5), "\nl 1 5"},
		{"segment vn", NewObj().SegmentVN(), "\nl -2//-2 -1//-1"},
		{"segment vn idx", NewObj().SegmentVNIdx([2]int{1, 2}, [2]int{3, 4}), "\nl 1//3 2//4"},
		{"triangle", NewObj().Triangle(), "\nf -3 -2 -1"},
		{"triangle idx", NewObj().TriangleIdx(1, 2, 3), "\nf 1 2 3"},
		{"triangle vn", NewObj().TriangleVN(), "\nf -3//-3 -2//-2 -1//-1"},
		{"triangle vt", NewObj().TriangleVT(), "\nf -3/-3 -2/-2 -1/-1"},
		{"triangle vnt", NewObj().TriangleVNT(), "\nf -3/-3/-3 -2/-2/-2 -1/-1/-1"},
		{
			"triangle vnt idx orders v/vt/vn",
			NewObj().TriangleVNTIdx([3]int{1, 2, 3}, [3]int{4, 5, 6}, [3]int{7, 8, 9}),
			"\nf 1/7/4 2/8/5 3/9/6",
		},
		{
			"triangle vt idx",
			NewObj().TriangleVTIdx([3]int{1, 2, 3}, [3]int{-1, -2, -3}),
			"\nf 1/-1 2/-2 3/-3",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.obj.String())
		})
	}
}

func TestCompositeElements(t *testing.T) {
	a, b, c := V3(0, 0, 0), V3(1, 0, 0), V3(0, 1, 0)
	n := V3(0, 0, 1)

	testCases := []struct {
		name string
		obj  *Obj
		want string
	}{
		{"point2", NewObj().Point2(V2(4, 7)), "\nv 4 7\np -1"},
		{"point3", NewObj().Point3(a), "\nv 0 0 0\np -1"},
		{"point3 vn", NewObj().Point3VN(b, n), "\nv 1 0 0\nvn 0 0 1\np -1//-1"},
		{"segment2", NewObj().Segment2(V2(0, 0), V2(1, 0)), "\nv 0 0\nv 1 0\nl -2 -1"},
		{"segment3", NewObj().Segment3(a, b), "\nv 0 0 0\nv 1 0 0\nl -2 -1"},
		{
			"segment3 vn",
			NewObj().Segment3VN(a, b, n, c),
			"\nv 0 0 0\nvn 0 0 1\nv 1 0 0\nvn 0 1 0\nl -2//-2 -1//-1",
		},
		{"triangle2", NewObj().Triangle2(V2(0, 0), V2(1, 0), V2(1, 1)), "\nv 0 0\nv 1 0\nv 1 1\nf -3 -2 -1"},
		{"triangle3", NewObj().Triangle3(a, b, c), "\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1"},
		{
			"triangle3 vn",
			NewObj().Triangle3VN(a, b, c, n, n, n),
			"\nv 0 0 0\nvn 0 0 1\nv 1 0 0\nvn 0 0 1\nv 0 1 0\nvn 0 0 1\nf -3//-3 -2//-2 -1//-1",
		},
		{
			"triangle3 vt",
			NewObj().Triangle3VT(a, b, c, b, c, a),
			"\nv 0 0 0\nvt 1 0 0\nv 1 0 0\nvt 0 1 0\nv 0 1 0\nvt 0 0 0\nf -3/-3 -2/-2 -1/-1",
		},
		{
			"triangle3 vnt",
			NewObj().Triangle3VNT(a, b, c, n, n, n, a, a, a),
			"\nv 0 0 0\nvn 0 0 1\nvt 0 0 0" +
				"\nv 1 0 0\nvn 0 0 1\nvt 0 0 0" +
				"\nv 0 1 0\nvn 0 0 1\nvt 0 0 0" +
				"\nf -3/-3/-3 -2/-2/-2 -1/-1/-1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.obj.String())
		})
	}
}

func TestCompositeElementsAbsolute(t *testing.T) {
	a, b, c := V3(0, 0, 0), V3(1, 0, 0), V3(0, 1, 0)
	n := V3(0, 0, 1)

	o := NewObj().SetUseNegativeIndices(false)
	o.Triangle3VNT(a, b, c, n, n, n, a, a, a)
	assert.Equal(t, "f 1/1/1 2/2/2 3/3/3", lastLine(o))

	// composites always reference the records they just wrote
	o.Triangle3VN(a, b, c, n, n, n)
	assert.Equal(t, "f 4//4 5//5 6//6", lastLine(o))

	o.Point3VN(a, n)
	assert.Equal(t, "p 7//7", lastLine(o))
}
