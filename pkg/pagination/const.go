package pagination

// DefaultPageSize is the page size used when none is specified
const DefaultPageSize = 10

// MaxPageSize is the maximum allowed page size
const MaxPageSize = 100

// MaxPage is the highest zero-based page number accepted.
// MaxPage*MaxPageSize stays far below the int range on 32-bit platforms too.
const MaxPage = 1_000_000

// DefaultSortField is the field results are ordered by when none is specified
const DefaultSortField = "id"
