// Package graph assembles the yearly concept graph for visualization.
package graph

// Node is a visual node ready for the rendering widget.
type Node struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Size  float64 `json:"size"`
	Color string  `json:"color"`
	Title string  `json:"title"` // Tooltip content

	// Primary is true when the node is backed by a full record in the
	// selected year's partition, false for satellite nodes that only
	// appear as related-reference targets.
	Primary bool `json:"primary"`
}

// Edge is a visual edge between two node ids. Edges are undirected for
// rendering, and parallel edges between the same pair are preserved.
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Color string `json:"color"`
	Width int    `json:"width"`
}

// Graph contains all data needed to render the visualization.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// IsEmpty returns true if the graph has no nodes. An empty graph is the
// normal result for a year with no records, not an error.
func (g *Graph) IsEmpty() bool {
	return len(g.Nodes) == 0
}
