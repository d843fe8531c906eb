package outline

import "errors"

var (
	// ErrMalformedOutline indicates an outline that violates structural expectations,
	// such as a contour with no on-curve nodes, an open contour where a closed one is
	// required, or a run of three or more cubic control points.
	ErrMalformedOutline = errors.New("malformed outline")

	// ErrUnresolvedComponent indicates a component reference naming a glyph the
	// resolver doesn't know.
	ErrUnresolvedComponent = errors.New("unresolved component reference")

	// ErrInvalidParameter indicates a caller-supplied parameter outside its valid
	// range, such as a non-positive box dimension or an unknown direction.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrParse indicates malformed path interchange text.
	ErrParse = errors.New("cannot parse path")
)
