package viz

import (
	"encoding/json"
	"fmt"

	"github.com/matsen/conceptmap/internal/graph"
)

// visPayload is the node/edge data in the widget's wire format.
type visPayload struct {
	Nodes []visNode `json:"nodes"`
	Edges []visEdge `json:"edges"`
}

// visNode is a node in the widget's format.
type visNode struct {
	ID    string  `json:"id"`
	Label string  `json:"label"`
	Size  float64 `json:"size"`
	Shape string  `json:"shape"`
	Color string  `json:"color"`
	Title string  `json:"title"`
}

// visEdge is an edge in the widget's format. Every edge needs an id
// unique within the page because parallel edges are preserved.
type visEdge struct {
	ID    string `json:"id"`
	From  string `json:"from"`
	To    string `json:"to"`
	Color string `json:"color"`
	Width int    `json:"width"`
}

// payloadJSON converts a graph to the widget's JSON data format.
func payloadJSON(g *graph.Graph) (string, error) {
	payload := visPayload{
		Nodes: make([]visNode, 0, len(g.Nodes)),
		Edges: make([]visEdge, 0, len(g.Edges)),
	}

	for _, n := range g.Nodes {
		payload.Nodes = append(payload.Nodes, visNode{
			ID:    n.ID,
			Label: n.Label,
			Size:  n.Size,
			Shape: "dot",
			Color: n.Color,
			Title: n.Title,
		})
	}

	for i, e := range g.Edges {
		payload.Edges = append(payload.Edges, visEdge{
			ID:    edgeID(e.From, e.To, i),
			From:  e.From,
			To:    e.To,
			Color: e.Color,
			Width: e.Width,
		})
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling graph data to JSON: %w", err)
	}
	return string(data), nil
}

// edgeID generates a unique edge ID for the current page.
// IDs are based on slice position and are not stable across builds.
func edgeID(from, to string, index int) string {
	return fmt.Sprintf("%s-%s-%d", from, to, index)
}
