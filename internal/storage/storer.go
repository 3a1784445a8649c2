package storage

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/DjordjeVuckovic/creditos/internal/domain"
)

// ErrUnsupportedType is wrapped by every error about an unknown backend name.
var ErrUnsupportedType = errors.New("unsupported storage type")

// Storer is the write side of a backend, used by the seed CLI and the test data routes.
type Storer interface {
	// SaveBulk persists creditos and returns how many were written
	SaveBulk(ctx context.Context, creditos []domain.Credito) (int, error)
	// DeleteTestRecords removes every generated test record and returns how many were removed
	DeleteTestRecords(ctx context.Context) (int64, error)
}

type Type string

const (
	PG    Type = "pg"
	InMem Type = "in_mem"
)

func Types() []Type {
	return []Type{PG, InMem}
}

// ParseType matches a backend name case-insensitively.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Types(), t) {
		return "", fmt.Errorf("%w: %q, expected one of %v", ErrUnsupportedType, s, Types())
	}
	return t, nil
}
