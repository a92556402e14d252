// Package schedule holds the interval bookkeeping and the date-range planner
// used when generating rentals and maintenances.
package schedule

import "github.com/fleetlab/rentgen/core/model"

// Span is an inclusive occupied date range.
type Span struct {
	Start model.Date
	End   model.Date
}

// Overlaps reports whether two inclusive ranges share at least one day.
func (s Span) Overlaps(o Span) bool {
	return !s.Start.After(o.End.Time) && !o.Start.After(s.End.Time)
}

// Index tracks occupied date ranges per entity. Ranges are permanent once
// recorded; there is no removal.
type Index struct {
	spans map[int64][]Span
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{spans: make(map[int64][]Span)}
}

// Record marks [start, end] as occupied for the entity.
func (ix *Index) Record(id int64, start, end model.Date) {
	ix.spans[id] = append(ix.spans[id], Span{Start: start, End: end})
}

// Conflicts reports whether [start, end] overlaps any recorded range of the
// entity. Unknown entities never conflict.
func (ix *Index) Conflicts(id int64, start, end model.Date) bool {
	candidate := Span{Start: start, End: end}
	for _, s := range ix.spans[id] {
		if s.Overlaps(candidate) {
			return true
		}
	}
	return false
}

// Spans returns the recorded ranges of the entity.
func (ix *Index) Spans(id int64) []Span {
	return ix.spans[id]
}
