package graph

import (
	"fmt"
	"strings"

	"github.com/matsen/conceptmap/internal/dataset"
)

// Visual constants shared by every build.
const (
	// DefaultMinSize and DefaultMaxSize bound primary node sizes under
	// linear interpolation against the normalization maximum.
	DefaultMinSize = 15.0
	DefaultMaxSize = 45.0

	// SatelliteSize is the fixed size of related-only nodes.
	SatelliteSize = 10.0
	// SatelliteColor is the fixed fill color of related-only nodes.
	SatelliteColor = "#555555"
	// SatelliteTitle is the fixed tooltip of related-only nodes.
	SatelliteTitle = "Related Concept"

	// EdgeColor and EdgeWidth are the fixed edge style.
	EdgeColor = "#555555"
	EdgeWidth = 1

	// FallbackLabel is used for related targets with no display name.
	FallbackLabel = "Unknown"
)

// Options configures one build.
type Options struct {
	// Year selects the partition of records to visualize.
	Year int

	// MinSize and MaxSize are the pixel bounds for primary node sizes.
	MinSize float64
	MaxSize float64

	// NormalizationMax is the denominator of the size formula. It must be
	// the maximum works count across the entire dataset, all years, so
	// that sizes stay comparable across years. Zero or negative values
	// are replaced with 1, which renders every primary at MinSize.
	NormalizationMax float64

	// ExcludeNameSubstring drops any primary record whose display name
	// contains the substring, along with all of its outgoing edges.
	// Empty disables the filter.
	ExcludeNameSubstring string
}

// DefaultOptions returns build options with the standard size range.
func DefaultOptions(year int, normalizationMax float64) Options {
	return Options{
		Year:             year,
		MinSize:          DefaultMinSize,
		MaxSize:          DefaultMaxSize,
		NormalizationMax: normalizationMax,
	}
}

// Build constructs the node/edge set for one year's partition.
//
// The build is a pure function of its inputs: the seen-set is local to
// the call, the returned graph is freshly allocated, and two builds with
// the same inputs produce identical output. An empty partition yields an
// empty graph, which callers must treat as a normal state.
//
// The returned warnings describe skipped related entries; they never
// abort the build.
func Build(records []dataset.ConceptRecord, opts Options) (*Graph, []error) {
	partition := filterYear(records, opts.Year)

	normMax := opts.NormalizationMax
	if normMax <= 0 {
		normMax = 1
	}

	g := &Graph{}
	seen := make(map[string]bool)
	var warnings []error

	// Pass A: primary nodes from full records.
	for _, r := range partition {
		if excluded(r, opts.ExcludeNameSubstring) {
			continue
		}
		if seen[r.ID] {
			warnings = append(warnings, fmt.Errorf("duplicate record id %q in %d partition, keeping first", r.ID, opts.Year))
			continue
		}

		// Sizes above MaxSize are deliberately not clamped: a works count
		// exceeding the normalization maximum means the caller computed
		// the maximum wrong, and that should be visible in the layout.
		size := opts.MinSize + (r.WorksCount/normMax)*(opts.MaxSize-opts.MinSize)

		g.Nodes = append(g.Nodes, Node{
			ID:      r.ID,
			Label:   r.DisplayName,
			Size:    size,
			Color:   ColorFor(r.Category),
			Title:   primaryTitle(r),
			Primary: true,
		})
		seen[r.ID] = true
	}

	// Pass B: satellite nodes and edges from related references.
	for _, r := range partition {
		if excluded(r, opts.ExcludeNameSubstring) {
			continue
		}
		for i, ref := range r.Related {
			if ref.ID == "" {
				warnings = append(warnings, fmt.Errorf("record %q: related entry %d has empty target id, skipped", r.ID, i+1))
				continue
			}

			if !seen[ref.ID] {
				g.Nodes = append(g.Nodes, Node{
					ID:    ref.ID,
					Label: satelliteLabel(ref),
					Size:  SatelliteSize,
					Color: SatelliteColor,
					Title: SatelliteTitle,
				})
				seen[ref.ID] = true
			}

			// Parallel edges between the same pair are kept on purpose.
			g.Edges = append(g.Edges, Edge{
				From:  r.ID,
				To:    ref.ID,
				Color: EdgeColor,
				Width: EdgeWidth,
			})
		}
	}

	return g, warnings
}

func filterYear(records []dataset.ConceptRecord, year int) []dataset.ConceptRecord {
	var partition []dataset.ConceptRecord
	for _, r := range records {
		if r.Year == year {
			partition = append(partition, r)
		}
	}
	return partition
}

func excluded(r dataset.ConceptRecord, substring string) bool {
	return substring != "" && strings.Contains(r.DisplayName, substring)
}

// primaryTitle composes the hover tooltip for a primary node.
func primaryTitle(r dataset.ConceptRecord) string {
	return fmt.Sprintf("Node Name: %s\nCategory: %s\nWorks: %g", r.DisplayName, r.Category, r.WorksCount)
}

// satelliteLabel picks the display name of a related-only node.
func satelliteLabel(ref dataset.RelatedRef) string {
	if ref.DisplayName != "" {
		return ref.DisplayName
	}
	return FallbackLabel
}
