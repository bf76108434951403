package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// requiredColumns are the header names every concept CSV must provide.
// related_concepts is optional; rows without it simply have no refs.
var requiredColumns = []string{"id", "display_name", "category", "works_count", "year"}

// readCSV reads the concept table from a CSV file with a header row.
// Rows with a missing id or unparsable numeric fields are skipped with a
// warning rather than failing the whole load.
func readCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening data file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // Tolerate ragged rows; columns are header-addressed

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("CSV is missing required column %q", name)
		}
	}
	relatedCol, hasRelated := cols["related_concepts"]

	table := &Table{}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.ParseError already names the offending line.
			table.warnings = append(table.warnings, err)
			continue
		}
		// Physical line of the record's first field. Quoted cells may span
		// several lines, so a record counter would drift.
		lineNum, _ := r.FieldPos(0)

		field := func(col int) string {
			if col < len(row) {
				return row[col]
			}
			return ""
		}

		id := field(cols["id"])
		if id == "" {
			table.warnings = append(table.warnings, fmt.Errorf("line %d: empty id, row skipped", lineNum))
			continue
		}

		works, err := strconv.ParseFloat(field(cols["works_count"]), 64)
		if err != nil || works < 0 {
			table.warnings = append(table.warnings, fmt.Errorf("line %d (%s): invalid works_count %q, row skipped", lineNum, id, field(cols["works_count"])))
			continue
		}

		year, err := strconv.Atoi(field(cols["year"]))
		if err != nil {
			table.warnings = append(table.warnings, fmt.Errorf("line %d (%s): invalid year %q, row skipped", lineNum, id, field(cols["year"])))
			continue
		}

		var related []RelatedRef
		if hasRelated {
			var refWarnings []error
			related, refWarnings = parseRelatedRefs(field(relatedCol))
			for _, w := range refWarnings {
				table.warnings = append(table.warnings, fmt.Errorf("line %d (%s): %w", lineNum, id, w))
			}
		}

		table.Records = append(table.Records, ConceptRecord{
			ID:          id,
			DisplayName: field(cols["display_name"]),
			Category:    field(cols["category"]),
			WorksCount:  works,
			Year:        year,
			Related:     related,
		})
	}

	return table, nil
}
