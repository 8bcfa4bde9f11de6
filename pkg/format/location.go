package format

import "fmt"

// Position is a zero-based row and column in the source text. Columns count
// runes from the start of the row.
type Position struct {
	Row int
	Col int
}

// Before reports whether p comes strictly before other.
func (p Position) Before(other Position) bool {
	return p.Row < other.Row || (p.Row == other.Row && p.Col < other.Col)
}

// Location is a source span. End is exclusive.
type Location struct {
	Start Position
	End   Position
}

// NewLocation creates a location from explicit coordinates.
func NewLocation(startRow, startCol, endRow, endCol int) Location {
	return Location{
		Start: Position{Row: startRow, Col: startCol},
		End:   Position{Row: endRow, Col: endCol},
	}
}

// Append extends the end of l to cover other. The span never shrinks.
func (l *Location) Append(other Location) {
	if l.End.Before(other.End) {
		l.End = other.End
	}
}

// IsSameLine reports whether other starts on the row where l ends.
func (l Location) IsSameLine(other Location) bool {
	return l.End.Row == other.Start.Row
}

// IsNextTo reports whether other starts exactly where l ends.
func (l Location) IsNextTo(other Location) bool {
	return l.IsSameLine(other) && l.End.Col == other.Start.Col
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", l.Start.Row+1, l.Start.Col+1, l.End.Row+1, l.End.Col+1)
}
