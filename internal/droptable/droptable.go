// Package droptable implements the weighted random selection used when
// opening a case. A Table is built once from a case snapshot and is a
// pure function of its entries and the supplied random sample, so tests
// can drive it with fixed values.
package droptable

import (
	"fmt"
	"math/rand/v2"

	"github.com/caseforge/caseforge/internal/domain"
)

// Source supplies a uniform random integer in [0, n). Production code
// uses DefaultSource; tests inject fixed values.
type Source func(n int64) int64

// DefaultSource draws from math/rand/v2's ChaCha8-seeded global generator.
func DefaultSource(n int64) int64 {
	return rand.Int64N(n)
}

// Table is a validated, immutable drop table for one case.
type Table struct {
	entries []domain.CaseEntry
	total   int64
}

// New validates the entries and builds a table. The entry order is
// preserved: it is the fixed walking order for Pick. Total weight is
// accumulated in exact integer basis points, never floating point.
func New(entries []domain.CaseEntry) (*Table, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: drop table needs at least one entry", domain.ErrEmptyCase)
	}

	var total int64
	for i, e := range entries {
		if e.Weight <= 0 {
			return nil, fmt.Errorf("%w: entry %d has non-positive weight %d", domain.ErrInvalidInput, i, e.Weight)
		}
		total += int64(e.Weight)
	}

	copied := make([]domain.CaseEntry, len(entries))
	copy(copied, entries)

	return &Table{entries: copied, total: total}, nil
}

// TotalWeight returns the sum of all entry weights in basis points.
func (t *Table) TotalWeight() int64 {
	return t.total
}

// Pick maps a sample u in [0, TotalWeight()) to exactly one entry.
// Walking the entries in their fixed order, each entry claims the next
// weight-sized slice of the sample space. Out-of-range samples resolve
// to the first or last entry so the function is total and never
// reports "no winner".
func (t *Table) Pick(u int64) domain.CaseEntry {
	remaining := u
	for _, e := range t.entries {
		remaining -= int64(e.Weight)
		if remaining < 0 {
			return e
		}
	}
	return t.entries[len(t.entries)-1]
}

// Roll draws a sample from src and returns the selected entry.
func (t *Table) Roll(src Source) domain.CaseEntry {
	return t.Pick(src(t.total))
}
