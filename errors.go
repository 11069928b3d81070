package prizm

import "errors"

var (
	// ErrColorRange is returned when a colour component is outside [0,255]
	// (or [0,1] for float components).
	ErrColorRange = errors.New("prizm: color component out of range")

	// ErrUnknownColor is returned by ColorFromName and ColorFromHex for
	// input they cannot parse.
	ErrUnknownColor = errors.New("prizm: unknown color")

	// ErrZeroIndex is recorded in strict mode when an element references
	// index 0, which the format defines as invalid.
	ErrZeroIndex = errors.New("prizm: zero index")

	// ErrArity is recorded in strict mode when a polyline or polygon is
	// requested with too few indices.
	ErrArity = errors.New("prizm: too few indices for element")

	// ErrAbsoluteAppend is recorded in strict mode when Append is given an
	// Obj that wrote positive (absolute) indices.
	ErrAbsoluteAppend = errors.New("prizm: appended obj uses absolute indices")
)
