package prizm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// LineState is how the viewer interprets text written on the current line.
type LineState int

const (
	// Geometry means no marker has been written on the line.
	Geometry LineState = iota
	// Annotating means one marker has been written, text up to the end of
	// line (or a second marker) is the annotation string.
	Annotating
	// Commented means two or more markers have been written, the rest of
	// the line is ignored.
	Commented
)

func (s LineState) String() string {
	switch s {
	case Geometry:
		return "geometry"
	case Annotating:
		return "annotating"
	default:
		return "commented"
	}
}

// Obj writes OBJ files with the viewer-specific extensions: annotations,
// attributes, comments and command annotations. Extensions use OBJ comment
// syntax so files still open in other OBJ viewers.
//
// Almost every method returns the receiver so calls can be chained. An Obj
// must not be used from more than one goroutine at a time.
type Obj struct {
	obj strings.Builder

	// Number of # characters on the current line:
	// 0 => geometry, 1 => annotation, 2 => comment
	hashCount int

	vCount  int
	vnCount int
	vtCount int

	// See SetUseNegativeIndices
	negativeIndices bool
	precision       int

	strict       bool
	err          error
	absoluteRefs int

	logger zerolog.Logger
}

func NewObj() *Obj {
	return &Obj{
		negativeIndices: true,
		precision:       RoundTripPrecision,
		logger:          zerolog.Nop(),
	}
}

//
// Primitives. Everything else is written through these.
//

// Add writes v to the obj. Empty strings and nil are dropped.
func (o *Obj) Add(v any) *Obj {
	if s := o.format(v); s != "" {
		o.obj.WriteString(s)
	}
	return o
}

// Insert writes a space followed by v. Empty strings and nil are dropped,
// including the space.
func (o *Obj) Insert(v any) *Obj {
	if s := o.format(v); s != "" {
		o.Space().Add(s)
	}
	return o
}

func (o *Obj) Newline() *Obj {
	return o.NewlineN(1)
}

// NewlineN writes n newlines, resetting the line state after each.
func (o *Obj) NewlineN(n int) *Obj {
	for ; n > 0; n-- {
		o.hashCount = 0
		o.obj.WriteByte('\n')
	}
	return o
}

func (o *Obj) Space() *Obj {
	o.obj.WriteByte(' ')
	return o
}

// Hash writes a # marker, used by annotations, comments and commands.
func (o *Obj) Hash() *Obj {
	return o.HashN(1)
}

func (o *Obj) HashN(n int) *Obj {
	for ; n > 0; n-- {
		o.hashCount++
		o.obj.WriteByte('#')
	}
	return o
}

// Bang writes the ! that starts a command annotation.
func (o *Obj) Bang() *Obj {
	o.obj.WriteByte('!')
	return o
}

// At writes the @ that prefixes an attribute.
func (o *Obj) At() *Obj {
	o.obj.WriteByte('@')
	return o
}

func (o *Obj) format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return formatFloat(x, o.precision)
	case float32:
		return formatFloat(float64(x), o.precision)
	case int:
		return strconv.Itoa(x)
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x)
	case bool:
		if x {
			return "1"
		}
		return "0"
	case Vec2:
		return x.Format(o.precision)
	case Vec3:
		return x.Format(o.precision)
	case Vec4:
		return x.Format(o.precision)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

//
// Concatenation
//

// Append copies other's contents onto a new line of o. other must only use
// negative (relative) indices, absolute indices would point at the wrong
// vertices once other follows o's own records.
func (o *Obj) Append(other *Obj) *Obj {
	content := other.obj.String()
	if content == "" {
		return o
	}
	if other.absoluteRefs > 0 {
		o.violation(ErrAbsoluteAppend, fmt.Sprintf("%d positive indices", other.absoluteRefs))
	}
	if content[0] != '\n' {
		o.Newline()
	}
	o.obj.WriteString(content)

	o.hashCount = other.hashCount
	o.vCount += other.vCount
	o.vnCount += other.vnCount
	o.vtCount += other.vtCount
	o.absoluteRefs += other.absoluteRefs
	return o
}

//
// Configuration
//

// SetPrecision sets the number of significant digits used for float data.
// Lower precision makes annotations easier to read, restore the round-trip
// precision before writing coordinates again. n <= 0 writes the shortest
// text that round-trips.
func (o *Obj) SetPrecision(n int) *Obj {
	o.precision = n
	return o
}

func (o *Obj) SetPrecisionRoundTrip() *Obj {
	return o.SetPrecision(RoundTripPrecision)
}

func (o *Obj) Precision() int {
	return o.precision
}

// SetUseNegativeIndices selects how element indices are written. With true
// (the default) indices count back from the referencing line, so the Obj
// can be concatenated with Append. With false indices are made positive
// using the running record counts, which other viewers support better.
func (o *Obj) SetUseNegativeIndices(value bool) *Obj {
	o.negativeIndices = value
	return o
}

func (o *Obj) UseNegativeIndices() bool {
	return o.negativeIndices
}

// SetStrict makes zero indices, degenerate polylines/polygons and Append
// of absolute-index objs report through Err. Output is the same either way.
func (o *Obj) SetStrict(strict bool) *Obj {
	o.strict = strict
	return o
}

func (o *Obj) SetLogger(l zerolog.Logger) *Obj {
	o.logger = l
	return o
}

// Err returns the first violation recorded in strict mode.
func (o *Obj) Err() error {
	return o.err
}

func (o *Obj) violation(err error, detail string) {
	if !o.strict {
		o.logger.Debug().Err(err).Str("detail", detail).Msg("ignored")
		return
	}
	o.logger.Warn().Err(err).Str("detail", detail).Msg("obj violation")
	if o.err == nil {
		o.err = fmt.Errorf("%w: %s", err, detail)
	}
}

//
// State accessors
//

func (o *Obj) HashCount() int     { return o.hashCount }
func (o *Obj) VertexCount() int   { return o.vCount }
func (o *Obj) NormalCount() int   { return o.vnCount }
func (o *Obj) TexcoordCount() int { return o.vtCount }

func (o *Obj) LineState() LineState {
	switch {
	case o.hashCount == 0:
		return Geometry
	case o.hashCount == 1:
		return Annotating
	default:
		return Commented
	}
}

// Len returns the number of bytes written so far.
func (o *Obj) Len() int {
	return o.obj.Len()
}

// String returns the current contents of the obj file.
func (o *Obj) String() string {
	return o.obj.String()
}
