package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	got, err := ParseType(" PG ")
	require.NoError(t, err)
	assert.Equal(t, PG, got)

	got, err = ParseType("in_mem")
	require.NoError(t, err)
	assert.Equal(t, InMem, got)

	_, err = ParseType("es")
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.ErrorContains(t, err, `"es"`)
}
