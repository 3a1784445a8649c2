package validation

import (
	"fmt"
	"strings"
)

// Kind tags what a Request validates
type Kind int

const (
	KindStringNotEmpty Kind = iota + 1
	KindStringOptional
	KindNumberPositive
	KindNumberRange
	// KindPageable validates pagination parameters strictly: invalid input is rejected
	KindPageable
	// KindPageableLenient normalizes pagination parameters: invalid input is replaced by defaults
	KindPageableLenient
	KindSortField
	KindSortDirection
)

var kindNames = map[Kind]string{
	KindStringNotEmpty:  "STRING_NOT_EMPTY",
	KindStringOptional:  "STRING_OPTIONAL",
	KindNumberPositive:  "NUMBER_POSITIVE",
	KindNumberRange:     "NUMBER_RANGE",
	KindPageable:        "PAGEABLE",
	KindPageableLenient: "PAGEABLE_LENIENT",
	KindSortField:       "SORT_FIELD",
	KindSortDirection:   "SORT_DIRECTION",
}

// Kinds returns every defined kind in declaration order
func Kinds() []Kind {
	return []Kind{
		KindStringNotEmpty,
		KindStringOptional,
		KindNumberPositive,
		KindNumberRange,
		KindPageable,
		KindPageableLenient,
		KindSortField,
		KindSortDirection,
	}
}

// ParseKind resolves a kind from its name, case-insensitively
func ParseKind(s string) (Kind, bool) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

func (k Kind) IsValid() bool {
	_, ok := kindNames[k]
	return ok
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
