package prizm

import (
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// RoundTripPrecision is the number of significant digits needed to write a
// float64 as decimal text and read back exactly the same value.
const RoundTripPrecision = 17

type Vec2 struct {
	X float64
	Y float64
}

type Vec3 struct {
	X float64
	Y float64
	Z float64
}

type Vec4 struct {
	X float64
	Y float64
	Z float64
	W float64
}

func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func V4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// formatFloat writes f with the given number of significant digits, a
// precision <= 0 selects the shortest text that round-trips.
func formatFloat(f float64, precision int) string {
	if precision <= 0 {
		precision = -1
	}
	return strconv.FormatFloat(f, 'g', precision, 64)
}

func formatFloats(precision int, fs ...float64) string {
	var sb strings.Builder
	for i, f := range fs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(formatFloat(f, precision))
	}
	return sb.String()
}

// Format writes "x y" using precision significant digits.
func (v Vec2) Format(precision int) string {
	return formatFloats(precision, v.X, v.Y)
}

func (v Vec2) String() string {
	return v.Format(RoundTripPrecision)
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// mult by scalar
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Mgl() mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

func Vec2FromMgl(m mgl64.Vec2) Vec2 {
	return Vec2{X: m[0], Y: m[1]}
}

// Format writes "x y z" using precision significant digits.
func (v Vec3) Format(precision int) string {
	return formatFloats(precision, v.X, v.Y, v.Z)
}

func (v Vec3) String() string {
	return v.Format(RoundTripPrecision)
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3FromMgl(v.Mgl().Add(o.Mgl()))
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3FromMgl(v.Mgl().Sub(o.Mgl()))
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3FromMgl(v.Mgl().Mul(s))
}

// XY drops the Z component.
func (v Vec3) XY() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

func (v Vec3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func Vec3FromMgl(m mgl64.Vec3) Vec3 {
	return Vec3{X: m[0], Y: m[1], Z: m[2]}
}

// Format writes "x y z w" using precision significant digits.
func (v Vec4) Format(precision int) string {
	return formatFloats(precision, v.X, v.Y, v.Z, v.W)
}

func (v Vec4) String() string {
	return v.Format(RoundTripPrecision)
}

func (v Vec4) Mgl() mgl64.Vec4 {
	return mgl64.Vec4{v.X, v.Y, v.Z, v.W}
}

func Vec4FromMgl(m mgl64.Vec4) Vec4 {
	return Vec4{X: m[0], Y: m[1], Z: m[2], W: m[3]}
}
