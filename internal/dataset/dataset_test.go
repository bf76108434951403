package dataset

import (
	"testing"
)

func TestParseRelatedRefs(t *testing.T) {
	tests := []struct {
		name         string
		cell         string
		wantRefs     []RelatedRef
		wantWarnings int
	}{
		{
			name: "empty cell means no refs",
			cell: "",
		},
		{
			name: "whitespace-only cell means no refs",
			cell: "   ",
		},
		{
			name:     "bare id strings",
			cell:     `["C41008148", "C154945302"]`,
			wantRefs: []RelatedRef{{ID: "C41008148"}, {ID: "C154945302"}},
		},
		{
			name: "structured objects",
			cell: `[{"id": "C1", "display_name": "Deep Learning", "category": "Machine Learning"}]`,
			wantRefs: []RelatedRef{
				{ID: "C1", DisplayName: "Deep Learning", Category: "Machine Learning", Structured: true},
			},
		},
		{
			name: "mixed scalar and structured preserves order",
			cell: `["C1", {"id": "C2", "display_name": "Foo"}, "C3"]`,
			wantRefs: []RelatedRef{
				{ID: "C1"},
				{ID: "C2", DisplayName: "Foo", Structured: true},
				{ID: "C3"},
			},
		},
		{
			name:         "empty string id is skipped with warning",
			cell:         `["", "C1"]`,
			wantRefs:     []RelatedRef{{ID: "C1"}},
			wantWarnings: 1,
		},
		{
			name:         "object with empty id is skipped with warning",
			cell:         `[{"display_name": "No ID"}]`,
			wantWarnings: 1,
		},
		{
			name:         "element of wrong shape is skipped with warning",
			cell:         `[42, "C1"]`,
			wantRefs:     []RelatedRef{{ID: "C1"}},
			wantWarnings: 1,
		},
		{
			name:         "non-array cell is a single warning",
			cell:         `{"id": "C1"}`,
			wantWarnings: 1,
		},
		{
			name: "structured ref with missing optional fields",
			cell: `[{"id": "C9"}]`,
			wantRefs: []RelatedRef{
				{ID: "C9", Structured: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			refs, warnings := parseRelatedRefs(tt.cell)

			if len(warnings) != tt.wantWarnings {
				t.Errorf("got %d warnings %v, want %d", len(warnings), warnings, tt.wantWarnings)
			}
			if len(refs) != len(tt.wantRefs) {
				t.Fatalf("got %d refs %v, want %d", len(refs), refs, len(tt.wantRefs))
			}
			for i, want := range tt.wantRefs {
				if refs[i] != want {
					t.Errorf("ref %d = %+v, want %+v", i, refs[i], want)
				}
			}
		})
	}
}

func TestTable_FilterYear(t *testing.T) {
	table := &Table{Records: []ConceptRecord{
		{ID: "A", Year: 2020},
		{ID: "B", Year: 2021},
		{ID: "C", Year: 2020},
	}}

	got := table.FilterYear(2020)
	if len(got) != 2 || got[0].ID != "A" || got[1].ID != "C" {
		t.Errorf("FilterYear(2020) = %v, want [A C] in source order", got)
	}

	if got := table.FilterYear(1999); got != nil {
		t.Errorf("FilterYear(1999) = %v, want nil", got)
	}
}

func TestTable_Years(t *testing.T) {
	table := &Table{Records: []ConceptRecord{
		{ID: "A", Year: 2022},
		{ID: "B", Year: 2020},
		{ID: "C", Year: 2022},
		{ID: "D", Year: 2021},
	}}

	years := table.Years()
	want := []int{2020, 2021, 2022}
	if len(years) != len(want) {
		t.Fatalf("Years() = %v, want %v", years, want)
	}
	for i := range want {
		if years[i] != want[i] {
			t.Errorf("Years() = %v, want %v", years, want)
			break
		}
	}

	counts := table.YearCounts()
	if counts[2022] != 2 || counts[2020] != 1 || counts[2021] != 1 {
		t.Errorf("YearCounts() = %v", counts)
	}
}

func TestTable_MaxWorksCount(t *testing.T) {
	tests := []struct {
		name    string
		records []ConceptRecord
		want    float64
	}{
		{
			name: "maximum spans all years",
			records: []ConceptRecord{
				{ID: "A", Year: 2015, WorksCount: 50},
				{ID: "B", Year: 2025, WorksCount: 5000},
				{ID: "C", Year: 2020, WorksCount: 300},
			},
			want: 5000,
		},
		{
			name: "empty table",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &Table{Records: tt.records}
			if got := table.MaxWorksCount(); got != tt.want {
				t.Errorf("MaxWorksCount() = %v, want %v", got, tt.want)
			}
		})
	}
}
