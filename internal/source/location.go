package source

import "fmt"

// Location is a span of source text between two positions, used by
// diagnostics to point at the offending token.
type Location struct {
	Start Position
	End   Position
}

// NewLocation builds a Location spanning start to end.
func NewLocation(start, end Position) Location {
	return Location{Start: start, End: end}
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Start.Line, l.Start.Column)
}
