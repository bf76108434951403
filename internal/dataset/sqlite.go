package dataset

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// readSQLite reads the concept table from a SQLite snapshot. The database
// must contain a "concepts" table with the same columns as the CSV form.
// The database is opened read-only in spirit: nothing here writes.
func readSQLite(path string) (*Table, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT id, display_name, category, works_count, year, related_concepts
		FROM concepts
	`)
	if err != nil {
		return nil, fmt.Errorf("querying concepts table: %w", err)
	}
	defer rows.Close()

	table := &Table{}
	rowNum := 0
	for rows.Next() {
		rowNum++

		var (
			id, displayName, category sql.NullString
			works                     sql.NullFloat64
			year                      sql.NullInt64
			relatedCell               sql.NullString
		)
		if err := rows.Scan(&id, &displayName, &category, &works, &year, &relatedCell); err != nil {
			table.warnings = append(table.warnings, fmt.Errorf("row %d: %w", rowNum, err))
			continue
		}

		if id.String == "" {
			table.warnings = append(table.warnings, fmt.Errorf("row %d: empty id, row skipped", rowNum))
			continue
		}
		if works.Float64 < 0 {
			table.warnings = append(table.warnings, fmt.Errorf("row %d (%s): negative works_count, row skipped", rowNum, id.String))
			continue
		}

		related, refWarnings := parseRelatedRefs(relatedCell.String)
		for _, w := range refWarnings {
			table.warnings = append(table.warnings, fmt.Errorf("row %d (%s): %w", rowNum, id.String, w))
		}

		table.Records = append(table.Records, ConceptRecord{
			ID:          id.String,
			DisplayName: displayName.String,
			Category:    category.String,
			WorksCount:  works.Float64,
			Year:        int(year.Int64),
			Related:     related,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading concepts table: %w", err)
	}

	return table, nil
}
