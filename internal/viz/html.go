package viz

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"

	"github.com/matsen/conceptmap/internal/graph"
)

// compiledTemplate is parsed at init time to fail fast on template errors.
var compiledTemplate *template.Template

func init() {
	compiledTemplate = template.Must(template.New("viz").Parse(htmlTemplate))
}

// Options configures HTML generation.
type Options struct {
	Title   string // Page title; defaults to "AI Concept Network (<year>)"
	Year    int    // Year shown in captions and the empty-state message
	Offline bool   // Whether to embed vis-network inline
	Config  Config // Widget configuration
}

// DefaultOptions returns default HTML generation options for a year.
func DefaultOptions(year int) Options {
	return Options{
		Year:   year,
		Config: DefaultConfig(),
	}
}

// ErrNoOfflineBundle is returned when offline mode is requested but no
// vis-network bundle was compiled into the binary.
var ErrNoOfflineBundle = errors.New("no bundled vis-network script compiled in; omit --offline or build with a bundle")

// GenerateHTML generates a self-contained HTML page for the graph.
// An empty graph produces a dedicated empty-state page rather than an
// error; a year with no records is a normal condition.
func GenerateHTML(g *graph.Graph, opts Options) (string, error) {
	if g == nil {
		return "", fmt.Errorf("graph cannot be nil")
	}
	if opts.Offline && visNetworkJS == "" {
		return "", ErrNoOfflineBundle
	}

	if g.IsEmpty() {
		return generateEmptyHTML(opts.Year), nil
	}

	graphJSON, err := payloadJSON(g)
	if err != nil {
		return "", err
	}

	optionsJSON, err := opts.Config.optionsJSON()
	if err != nil {
		return "", err
	}

	title := opts.Title
	if title == "" {
		title = fmt.Sprintf("AI Concept Network (%d)", opts.Year)
	}

	width := opts.Config.Width
	if width == "" {
		width = "100%"
	}

	data := templateData{
		Title:       title,
		Year:        opts.Year,
		ScriptTag:   template.HTML(buildScriptTag(opts.Offline)),
		GraphJSON:   template.JS(graphJSON),
		OptionsJSON: template.JS(optionsJSON),
		Width:       width,
		Height:      opts.Config.Height,
		Collapsible: opts.Config.Collapsible,
	}

	var buf bytes.Buffer
	if err := compiledTemplate.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// templateData holds data for the HTML template.
type templateData struct {
	Title       string
	Year        int
	ScriptTag   template.HTML
	GraphJSON   template.JS
	OptionsJSON template.JS
	Width       string
	Height      int
	Collapsible bool
}

// buildScriptTag returns either inline script or CDN reference.
func buildScriptTag(offline bool) string {
	if offline {
		return "<script>" + visNetworkJS + "</script>"
	}
	return `<script src="https://unpkg.com/vis-network@9/standalone/umd/vis-network.min.js"></script>`
}

// generateEmptyHTML returns HTML for a year with no records.
func generateEmptyHTML(year int) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>AI Concept Network - No Data</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      display: flex;
      justify-content: center;
      align-items: center;
      height: 100vh;
      margin: 0;
      background: #f5f5f5;
    }
    .empty-state {
      text-align: center;
      color: #666;
    }
    .empty-state h2 {
      margin-bottom: 0.5em;
      color: #333;
    }
  </style>
</head>
<body>
  <div class="empty-state">
    <h2>No data for %d</h2>
    <p>The selected year has no concept records.</p>
    <p>Run <code>cmap years</code> to list available years.</p>
  </div>
</body>
</html>`, year)
}

const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  {{.ScriptTag}}
  <style>
    * {
      box-sizing: border-box;
    }
    body {
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
      margin: 0;
      padding: 0;
      background: #f5f5f5;
    }
    #header {
      padding: 10px 16px;
      background: white;
      border-bottom: 1px solid #ddd;
    }
    #header h1 {
      margin: 0;
      font-size: 18px;
    }
    #header .caption {
      color: #888;
      font-size: 12px;
    }
    #network {
      width: {{.Width}};
      height: {{.Height}}px;
      background: white;
    }
    #status {
      padding: 6px 16px;
      color: #555;
      font-size: 13px;
      min-height: 26px;
    }
  </style>
</head>
<body>
  <div id="header">
    <h1>{{.Title}}</h1>
    <div class="caption">Showing {{.Year}} data. Drag nodes to rearrange.</div>
  </div>
  <div id="network"></div>
  <div id="status"></div>
  <script>
    (function() {
      const graphData = {{.GraphJSON}};
      const options = {{.OptionsJSON}};

      const container = document.getElementById('network');
      const data = {
        nodes: new vis.DataSet(graphData.nodes),
        edges: new vis.DataSet(graphData.edges)
      };
      const network = new vis.Network(container, data, options);

      // Selection surface: expose the most recently selected node id.
      const status = document.getElementById('status');
      network.on('selectNode', function(params) {
        if (params.nodes.length > 0) {
          status.textContent = 'Selected: ' + params.nodes[0];
        }
      });
      network.on('deselectNode', function() {
        status.textContent = '';
      });
{{if .Collapsible}}
      // Double-click folds a node's neighborhood into a cluster.
      network.on('doubleClick', function(params) {
        if (params.nodes.length > 0) {
          network.clusterByConnection(params.nodes[0]);
        }
      });
{{end}}
    })();
  </script>
</body>
</html>`

// visNetworkJS holds a bundled copy of vis-network for offline pages.
// It stays empty unless a build includes an embed file populating it
// (via go:embed of the minified dist); GenerateHTML refuses offline
// requests while it is empty rather than emitting a page that cannot
// render.
var visNetworkJS string
