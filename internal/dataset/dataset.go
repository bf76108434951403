// Package dataset loads and models the yearly concept table.
package dataset

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// RelatedRef is a reference to a related concept, resolved at ingestion.
// Source cells carry either a bare identifier or a structured object;
// Structured distinguishes the two so downstream code never re-probes JSON.
type RelatedRef struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name,omitempty"`
	Category    string `json:"category,omitempty"`
	Structured  bool   `json:"-"`
}

// ConceptRecord is one row of the yearly concept table.
type ConceptRecord struct {
	ID          string       `json:"id"`
	DisplayName string       `json:"display_name"`
	Category    string       `json:"category"`
	WorksCount  float64      `json:"works_count"`
	Year        int          `json:"year"`
	Related     []RelatedRef `json:"related,omitempty"`
}

// Table is an immutable snapshot of the full multi-year concept table.
type Table struct {
	Records []ConceptRecord

	warnings []error
}

// Warnings returns row-level data-quality notes collected while loading.
// A non-empty result does not invalidate the table; the offending rows or
// cells were skipped.
func (t *Table) Warnings() []error {
	return t.warnings
}

// FilterYear returns the records whose Year matches the given year,
// preserving source order.
func (t *Table) FilterYear(year int) []ConceptRecord {
	var records []ConceptRecord
	for _, r := range t.Records {
		if r.Year == year {
			records = append(records, r)
		}
	}
	return records
}

// Years returns the distinct years present in the table, sorted ascending.
func (t *Table) Years() []int {
	counts := t.YearCounts()
	years := make([]int, 0, len(counts))
	for y := range counts {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// YearCounts returns the number of records per year.
func (t *Table) YearCounts() map[int]int {
	counts := make(map[int]int)
	for _, r := range t.Records {
		counts[r.Year]++
	}
	return counts
}

// MaxWorksCount returns the maximum works count across the entire table,
// all years included. Node sizes are normalized against this global
// maximum so that sizes stay comparable across years. Returns 0 for an
// empty table.
func (t *Table) MaxWorksCount() float64 {
	var max float64
	for _, r := range t.Records {
		if r.WorksCount > max {
			max = r.WorksCount
		}
	}
	return max
}

// structuredRef mirrors the object form of a related_concepts element.
type structuredRef struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Category    string `json:"category"`
}

// parseRelatedRefs decodes a related_concepts cell into resolved refs.
// The cell is a JSON array whose elements are either bare id strings or
// objects with id/display_name/category fields. Malformed elements and
// elements with an empty id are skipped, each with a warning; an empty
// cell means no related concepts.
func parseRelatedRefs(cell string) ([]RelatedRef, []error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(cell), &elements); err != nil {
		return nil, []error{fmt.Errorf("related_concepts is not a JSON array: %w", err)}
	}

	var refs []RelatedRef
	var warnings []error

	for i, raw := range elements {
		var id string
		if err := json.Unmarshal(raw, &id); err == nil {
			if id == "" {
				warnings = append(warnings, fmt.Errorf("related entry %d: empty id", i+1))
				continue
			}
			refs = append(refs, RelatedRef{ID: id})
			continue
		}

		var s structuredRef
		if err := json.Unmarshal(raw, &s); err != nil {
			warnings = append(warnings, fmt.Errorf("related entry %d: neither an id string nor an object: %w", i+1, err))
			continue
		}
		if s.ID == "" {
			warnings = append(warnings, fmt.Errorf("related entry %d: object has empty id", i+1))
			continue
		}
		refs = append(refs, RelatedRef{
			ID:          s.ID,
			DisplayName: s.DisplayName,
			Category:    s.Category,
			Structured:  true,
		})
	}

	return refs, warnings
}
