package prizm

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is a linear, non-premultiplied RGBA colour.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

var (
	Black  = Color{0, 0, 0, 255}
	White  = Color{255, 255, 255, 255}
	Red    = Color{255, 0, 0, 255}
	Green  = Color{0, 255, 0, 255}
	Blue   = Color{0, 0, 255, 255}
	Yellow = Color{255, 255, 0, 255}
)

// NewColor validates that every component is in [0,255]. Components are
// never clamped.
func NewColor(r, g, b, a int) (Color, error) {
	for i, c := range [4]int{r, g, b, a} {
		if c < 0 || c > 255 {
			return Color{}, fmt.Errorf("%w: component %d is %d, want [0,255]", ErrColorRange, i, c)
		}
	}
	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// ColorFromFloats converts components in [0,1] to [0,255], truncating.
func ColorFromFloats(r, g, b, a float64) (Color, error) {
	var out [4]int
	for i, c := range [4]float64{r, g, b, a} {
		if !(c >= 0 && c <= 1) {
			return Color{}, fmt.Errorf("%w: component %d is %g, want [0,1]", ErrColorRange, i, c)
		}
		out[i] = int(255 * c)
	}
	return NewColor(out[0], out[1], out[2], out[3])
}

// ColorFromHex parses "#rrggbb" (opaque) or "#rrggbbaa".
func ColorFromHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := uint8(255)
	if len(s) == 9 && s[0] == '#' {
		var a uint8
		if _, err := fmt.Sscanf(s[7:], "%02x", &a); err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		alpha = a
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrUnknownColor, s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

// ColorFromHSV builds an opaque colour from hue in degrees [0,360) and
// saturation/value in [0,1].
func ColorFromHSV(h, s, v float64) Color {
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: 255}
}

// ColorFromName looks up an SVG 1.1 colour keyword such as "skyblue".
func ColorFromName(name string) (Color, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

// ColorFrom converts any image/color value.
func ColorFrom(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("%d %d %d %d", c.R, c.G, c.B, c.A)
}
