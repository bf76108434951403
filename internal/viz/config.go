// Package viz renders concept graphs as interactive HTML pages.
package viz

import (
	"encoding/json"
	"fmt"
)

// PhysicsTuning holds the force-layout solver parameters.
type PhysicsTuning struct {
	GravitationalConstant float64 `json:"gravitationalConstant"` // Repulsion; more negative pushes harder
	CentralGravity        float64 `json:"centralGravity"`        // Pull toward the canvas center
	SpringLength          float64 `json:"springLength"`
	SpringConstant        float64 `json:"springConstant"`
	Damping               float64 `json:"damping"`
}

// Config is the rendering configuration bundle handed to the widget.
type Config struct {
	Width             string
	Height            int
	Directed          bool
	Physics           bool
	Hierarchical      bool
	Tuning            PhysicsTuning
	MinVelocity       float64
	Solver            string
	HighlightOnSelect bool
	HighlightColor    string
	Collapsible       bool
}

// DefaultConfig returns the standard widget configuration.
func DefaultConfig() Config {
	return Config{
		Width:    "100%",
		Height:   750,
		Directed: false,
		Physics:  true,
		Tuning: PhysicsTuning{
			GravitationalConstant: -50,
			CentralGravity:        0.005,
			SpringLength:          100,
			SpringConstant:        0.08,
			Damping:               0.4,
		},
		MinVelocity:       0.75,
		Solver:            "forceAtlas2Based",
		HighlightOnSelect: true,
		HighlightColor:    "#F7A072",
	}
}

// optionsJSON marshals the config into the widget's options object.
// The tuning block is keyed by the solver name, as the widget expects.
func (c Config) optionsJSON() (string, error) {
	physics := map[string]interface{}{
		"enabled":     c.Physics,
		"minVelocity": c.MinVelocity,
		"solver":      c.Solver,
		c.Solver:      c.Tuning,
	}

	options := map[string]interface{}{
		"physics": physics,
		"layout": map[string]interface{}{
			"hierarchical": c.Hierarchical,
		},
		"edges": map[string]interface{}{
			"arrows": map[string]interface{}{
				"to": map[string]bool{"enabled": c.Directed},
			},
		},
		"interaction": map[string]interface{}{
			"hover":                true,
			"selectConnectedEdges": c.HighlightOnSelect,
		},
		"nodes": map[string]interface{}{
			"color": map[string]interface{}{
				"highlight": map[string]string{"border": c.HighlightColor},
			},
		},
	}

	data, err := json.Marshal(options)
	if err != nil {
		return "", fmt.Errorf("marshaling widget options: %w", err)
	}
	return string(data), nil
}
