package pagination

import "strings"

// Direction is the ordering applied to a sort field
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// ParseDirection normalizes s case-insensitively to ASC or DESC.
// Surrounding whitespace is ignored.
func ParseDirection(s string) (Direction, bool) {
	switch Direction(strings.ToUpper(strings.TrimSpace(s))) {
	case ASC:
		return ASC, true
	case DESC:
		return DESC, true
	default:
		return "", false
	}
}

func (d Direction) IsValid() bool {
	return d == ASC || d == DESC
}

func (d Direction) String() string {
	return string(d)
}
