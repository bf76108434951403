package graph

import (
	"reflect"
	"testing"

	"github.com/matsen/conceptmap/internal/dataset"
)

func TestBuild_TwoPrimariesWithEdge(t *testing.T) {
	records := []dataset.ConceptRecord{
		{ID: "A", DisplayName: "Alpha", Category: "Machine Learning", WorksCount: 100, Year: 2020,
			Related: []dataset.RelatedRef{{ID: "B"}}},
		{ID: "B", DisplayName: "Beta", Category: "Computer Vision", WorksCount: 50, Year: 2020},
	}

	g, warnings := Build(records, Options{Year: 2020, MinSize: 10, MaxSize: 60, NormalizationMax: 100})
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	if len(g.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2 (B is primary, no satellite)", len(g.Nodes))
	}
	if g.Nodes[0].Size != 60 {
		t.Errorf("size(A) = %v, want 60", g.Nodes[0].Size)
	}
	if g.Nodes[1].Size != 35 {
		t.Errorf("size(B) = %v, want 35 (10 + 50/100*50)", g.Nodes[1].Size)
	}
	for _, n := range g.Nodes {
		if !n.Primary {
			t.Errorf("node %s should be primary", n.ID)
		}
	}

	if len(g.Edges) != 1 || g.Edges[0].From != "A" || g.Edges[0].To != "B" {
		t.Errorf("edges = %v, want one A->B edge", g.Edges)
	}
}

func TestBuild_SatelliteNode(t *testing.T) {
	records := []dataset.ConceptRecord{
		{ID: "A", DisplayName: "Alpha", Category: "Machine Learning", WorksCount: 10, Year: 2020,
			Related: []dataset.RelatedRef{
				{ID: "X", DisplayName: "Foo", Category: "Unknown", Structured: true},
			}},
	}

	g, warnings := Build(records, DefaultOptions(2020, 100))
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(g.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(g.Nodes))
	}

	sat := g.Nodes[1]
	if sat.ID != "X" || sat.Label != "Foo" {
		t.Errorf("satellite = %+v", sat)
	}
	if sat.Primary {
		t.Error("satellite should not be primary")
	}
	if sat.Size != SatelliteSize || sat.Color != SatelliteColor || sat.Title != SatelliteTitle {
		t.Errorf("satellite style = %+v, want fixed size/color/title", sat)
	}

	if len(g.Edges) != 1 || g.Edges[0].From != "A" || g.Edges[0].To != "X" {
		t.Errorf("edges = %v, want one A->X edge", g.Edges)
	}
}

func TestBuild_SatelliteWithoutNameGetsFallbackLabel(t *testing.T) {
	records := []dataset.ConceptRecord{
		{ID: "A", DisplayName: "Alpha", WorksCount: 1, Year: 2020,
			Related: []dataset.RelatedRef{{ID: "X"}}},
	}

	g, _ := Build(records, DefaultOptions(2020, 1))
	if len(g.Nodes) != 2 || g.Nodes[1].Label != FallbackLabel {
		t.Errorf("nodes = %+v, want satellite labeled %q", g.Nodes, FallbackLabel)
	}
}

func TestBuild_EmptyPartition(t *testing.T) {
	records := []dataset.ConceptRecord{
		{ID: "A", DisplayName: "Alpha", WorksCount: 10, Year: 2019},
	}

	g, warnings := Build(records, DefaultOptions(2020, 100))
	if !g.IsEmpty() {
		t.Errorf("graph = %+v, want empty for year with no records", g)
	}
	if len(g.Edges) != 0 {
		t.Errorf("edges = %v, want none", g.Edges)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
}

func TestBuild_EmptyTargetIDProducesNothing(t *testing.T) {
	records := []dataset.ConceptRecord{
		{ID: "A", DisplayName: "Alpha", WorksCount: 10, Year: 2020,
			Related: []dataset.RelatedRef{{ID: ""}, {ID: "B"}}},
	}

	g, warnings := Build(records, DefaultOptions(2020, 100))
	if len(g.Nodes) != 2 {
		t.Errorf("got %d nodes, want 2 (A + satellite B)", len(g.Nodes))
	}
	if len(g.Edges) != 1 {
		t.Errorf("got %d edges, want 1", len(g.Edges))
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %v, want 1 for the empty target id", warnings)
	}
}

func TestBuild_NoDanglingEdgesAndUniqueIDs(t *testing.T) {
	records := []dataset.ConceptRecord{
		{ID: "A", DisplayName: "Alpha", WorksCount: 10, Year: 2020,
			Related: []dataset.RelatedRef{{ID: "X"}, {ID: "B"}, {ID: "X"}}},
		{ID: "B", DisplayName: "Beta", WorksCount: 5, Year: 2020,
			Related: []dataset.RelatedRef{{ID: "X"}, {ID: "A"}}},
	}

	g, _ := Build(records, DefaultOptions(2020, 10))

	ids := make(map[string]bool)
	for _, n := range g.Nodes {
		if ids[n.ID] {
			t.Errorf("duplicate node id %q", n.ID)
		}
		ids[n.ID] = true
	}

	for _, e := range g.Edges {
		if !ids[e.From] || !ids[e.To] {
			t.Errorf("dangling edge %+v", e)
		}
	}

	// Parallel edges are preserved: A->X twice, B->X once.
	if len(g.Edges) != 5 {
		t.Errorf("got %d edges, want 5 (no edge dedup)", len(g.Edges))
	}
}

func TestBuild_SizeMonotonicInWorksCount(t *testing.T) {
	records := []dataset.ConceptRecord{
		{ID: "A", DisplayName: "A", WorksCount: 500, Year: 2020},
		{ID: "B", DisplayName: "B", WorksCount: 499, Year: 2020},
		{ID: "C", DisplayName: "C", WorksCount: 20, Year: 2020},
		{ID: "D", DisplayName: "D", WorksCount: 0, Year: 2020},
	}

	g, _ := Build(records, DefaultOptions(2020, 500))

	byID := make(map[string]Node)
	for _, n := range g.Nodes {
		byID[n.ID] = n
	}
	if !(byID["A"].Size >= byID["B"].Size && byID["B"].Size >= byID["C"].Size && byID["C"].Size >= byID["D"].Size) {
		t.Errorf("sizes not monotone: %v %v %v %v", byID["A"].Size, byID["B"].Size, byID["C"].Size, byID["D"].Size)
	}
	if byID["D"].Size != DefaultMinSize {
		t.Errorf("size at works_count 0 = %v, want MinSize", byID["D"].Size)
	}
}

func TestBuild_OversizedWorksCountIsNotClamped(t *testing.T) {
	records := []dataset.ConceptRecord{
		{ID: "A", DisplayName: "A", WorksCount: 200, Year: 2020},
	}

	// A stale normalization max below the real maximum should be visible.
	g, _ := Build(records, Options{Year: 2020, MinSize: 10, MaxSize: 60, NormalizationMax: 100})
	if got := g.Nodes[0].Size; got <= 60 {
		t.Errorf("size = %v, want > MaxSize when works count exceeds normalization max", got)
	}
}

func TestBuild_ZeroNormalizationMaxRendersAtMinSize(t *testing.T) {
	records := []dataset.ConceptRecord{
		{ID: "A", DisplayName: "A", WorksCount: 0, Year: 2020},
	}

	g, _ := Build(records, Options{Year: 2020, MinSize: 15, MaxSize: 45, NormalizationMax: 0})
	if g.Nodes[0].Size != 15 {
		t.Errorf("size = %v, want MinSize with zero normalization max", g.Nodes[0].Size)
	}
}

func TestBuild_ExcludedHubDropsNodeAndItsEdges(t *testing.T) {
	records := []dataset.ConceptRecord{
		{ID: "A", DisplayName: "Big Hub", WorksCount: 100, Year: 2020,
			Related: []dataset.RelatedRef{{ID: "X"}, {ID: "Y"}}},
		{ID: "B", DisplayName: "Beta", WorksCount: 10, Year: 2020,
			Related: []dataset.RelatedRef{{ID: "X"}}},
	}

	g, _ := Build(records, Options{Year: 2020, MinSize: 10, MaxSize: 60, NormalizationMax: 100, ExcludeNameSubstring: "Hub"})

	ids := make(map[string]bool)
	for _, n := range g.Nodes {
		ids[n.ID] = true
	}
	if ids["A"] {
		t.Error("excluded hub node A should be absent")
	}
	if !ids["B"] || !ids["X"] {
		t.Errorf("nodes = %v, want B and X present", g.Nodes)
	}
	if ids["Y"] {
		t.Error("Y was only referenced by the excluded hub and should be absent")
	}

	if len(g.Edges) != 1 || g.Edges[0].From != "B" || g.Edges[0].To != "X" {
		t.Errorf("edges = %v, want only B->X", g.Edges)
	}
}

func TestBuild_DuplicateRecordIDKeepsFirst(t *testing.T) {
	records := []dataset.ConceptRecord{
		{ID: "A", DisplayName: "First", WorksCount: 100, Year: 2020},
		{ID: "A", DisplayName: "Second", WorksCount: 50, Year: 2020},
	}

	g, warnings := Build(records, DefaultOptions(2020, 100))
	if len(g.Nodes) != 1 || g.Nodes[0].Label != "First" {
		t.Errorf("nodes = %+v, want single node from first occurrence", g.Nodes)
	}
	if len(warnings) != 1 {
		t.Errorf("warnings = %v, want 1 for the duplicate", warnings)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	records := []dataset.ConceptRecord{
		{ID: "A", DisplayName: "Alpha", Category: "Machine Learning", WorksCount: 100, Year: 2020,
			Related: []dataset.RelatedRef{{ID: "X", DisplayName: "Foo", Structured: true}, {ID: "B"}}},
		{ID: "B", DisplayName: "Beta", Category: "Computer Vision", WorksCount: 40, Year: 2020,
			Related: []dataset.RelatedRef{{ID: "X"}}},
	}
	opts := DefaultOptions(2020, 100)

	first, _ := Build(records, opts)
	second, _ := Build(records, opts)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("rebuild differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
	if first == second {
		t.Error("builds must return independently allocated graphs")
	}
}

func TestBuild_PrimaryTooltip(t *testing.T) {
	records := []dataset.ConceptRecord{
		{ID: "A", DisplayName: "Alpha", Category: "Machine Learning", WorksCount: 42, Year: 2020},
	}

	g, _ := Build(records, DefaultOptions(2020, 100))
	want := "Node Name: Alpha\nCategory: Machine Learning\nWorks: 42"
	if g.Nodes[0].Title != want {
		t.Errorf("title = %q, want %q", g.Nodes[0].Title, want)
	}
}
