package openapi

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// DocsUI selects which interactive documentation UI to serve.
type DocsUI int

const (
	DocsSwaggerUI DocsUI = iota
	DocsRedoc
	DocsRapiDoc
)

// HandleConfig configures the endpoints registered by Handle.
type HandleConfig struct {
	// UI selects the interactive docs UI (default: DocsSwaggerUI).
	UI DocsUI

	// Title overrides the HTML page title (default: the info title).
	Title string

	// JSONFilename is the filename for the JSON document endpoint under
	// the serving path (default: "openapi.json"). Set to "-" to disable.
	JSONFilename string

	// YAMLFilename is the filename for the YAML document endpoint
	// (default: "openapi.yaml"). Set to "-" to disable.
	YAMLFilename string

	// DisableDocs disables the interactive HTML docs UI endpoint.
	DisableDocs bool

	// SwaggerUIConfig provides additional SwaggerUIBundle configuration
	// options, rendered as JavaScript object properties alongside the
	// url and dom_id defaults. Only used when UI is DocsSwaggerUI.
	SwaggerUIConfig map[string]any
}

func (cfg HandleConfig) jsonFilename() string {
	if cfg.JSONFilename == "" {
		return "openapi.json"
	}
	return cfg.JSONFilename
}

func (cfg HandleConfig) yamlFilename() string {
	if cfg.YAMLFilename == "" {
		return "openapi.yaml"
	}
	return cfg.YAMLFilename
}

// Handle registers the document endpoints on the generator's router
// under the configured serving path:
//
//	<endpoint>/                - interactive HTML docs (unless DisableDocs)
//	<endpoint>/openapi.json    - document as JSON (unless JSONFilename is "-")
//	<endpoint>/openapi.yaml    - document as YAML (unless YAMLFilename is "-")
//
// The config parameter is optional; pass nil for defaults:
//
//	gen.Handle(nil)
//
// The document is assembled once on first request and cached. Because
// the serving path matches the generator's Endpoint, the registered
// routes never document themselves.
func (g *Generator) Handle(cfg *HandleConfig) {
	if cfg == nil {
		cfg = &HandleConfig{}
	}
	base := strings.TrimRight(g.cfg.URLPrefix+g.cfg.Endpoint, "/")

	jsonFile := cfg.jsonFilename()
	yamlFile := cfg.yamlFilename()

	var jsonPath, yamlPath string

	if jsonFile != "-" {
		jsonPath = base + "/" + jsonFile
		g.registerJSON(jsonPath)
	}

	if yamlFile != "-" {
		yamlPath = base + "/" + yamlFile
		g.registerYAML(yamlPath)
	}

	if !cfg.DisableDocs {
		specURL := jsonPath
		if specURL == "" {
			specURL = yamlPath
		}
		if specURL != "" {
			g.registerDocs(base, cfg, specURL)
		}
	}
}

// registerJSON registers a handler serving the document as JSON.
func (g *Generator) registerJSON(path string) {
	var (
		once sync.Once
		data []byte
	)
	g.router.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
		doc, err := g.Document()
		if err == nil {
			once.Do(func() {
				data, err = json.MarshalIndent(doc, "", "  ")
			})
		}
		if err != nil || data == nil {
			http.Error(w, "failed to serialize document as JSON", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	})
}

// registerYAML registers a handler serving the document as YAML.
func (g *Generator) registerYAML(path string) {
	var (
		once sync.Once
		data []byte
	)
	g.router.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
		doc, err := g.Document()
		if err == nil {
			once.Do(func() {
				data, err = yaml.Marshal(doc)
			})
		}
		if err != nil || data == nil {
			http.Error(w, "failed to serialize document as YAML", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/x-yaml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	})
}

// registerDocs registers a handler serving the interactive HTML viewer.
func (g *Generator) registerDocs(base string, cfg *HandleConfig, specURL string) {
	var (
		once sync.Once
		data []byte
	)
	handler := func(w http.ResponseWriter, _ *http.Request) {
		once.Do(func() {
			title := cfg.Title
			if title == "" {
				title = g.cfg.Info.Title
			}

			var page string
			switch cfg.UI {
			case DocsRedoc:
				page = redocTemplate(title, specURL)
			case DocsRapiDoc:
				page = rapidocTemplate(title, specURL)
			default:
				page = swaggerUITemplate(title, specURL, cfg.SwaggerUIConfig)
			}
			data = []byte(page)
		})
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
	if base == "" {
		g.router.HandleFunc("/", handler)
	} else {
		g.router.HandleFunc(base, handler)
		g.router.HandleFunc(base+"/", handler)
	}
}

func swaggerUITemplate(title, specPath string, config map[string]any) string {
	var extra string
	if len(config) > 0 {
		keys := make([]string, 0, len(config))
		for k := range config {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var buf strings.Builder
		for _, k := range keys {
			v, err := json.Marshal(config[k])
			if err != nil {
				continue
			}
			fmt.Fprintf(&buf, ", %s: %s", k, v)
		}
		extra = buf.String()
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist/swagger-ui-bundle.js"></script>
<script>
SwaggerUIBundle({url: %q, dom_id: "#swagger-ui"%s});
</script>
</body>
</html>`, html.EscapeString(title), specPath, extra)
}

func rapidocTemplate(title, specPath string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<script type="module" src="https://unpkg.com/rapidoc/dist/rapidoc-min.js"></script>
</head>
<body>
<rapi-doc spec-url=%q></rapi-doc>
</body>
</html>`, html.EscapeString(title), specPath)
}

func redocTemplate(title, specPath string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
</head>
<body>
<redoc spec-url=%q></redoc>
<script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
</body>
</html>`, html.EscapeString(title), specPath)
}
