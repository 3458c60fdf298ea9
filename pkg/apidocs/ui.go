// Package apidocs serves the OpenAPI document of the business API together
// with Swagger UI and ReDoc pages that render it.
package apidocs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed openapi.json
var openapiDoc []byte

// DocsOptions controls where the documentation is mounted.
type DocsOptions struct {
	// Title and Version replace the info block of the embedded document.
	Title   string
	Version string
	// SpecPath serves the OpenAPI JSON (default: "/openapi.json").
	SpecPath string
	// SwaggerPath serves Swagger UI (default: "/docs"). "-" disables it.
	SwaggerPath string
	// RedocPath serves ReDoc (default: "/redoc"). "-" disables it.
	RedocPath string
}

var swaggerPage = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html>
<head>
<title>{{.Title}} - Swagger UI</title>
<link type="text/css" rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>
const ui = SwaggerUIBundle({
  url: {{.SpecPath}},
  dom_id: "#swagger-ui",
  layout: "BaseLayout",
  deepLinking: true,
  presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
})
</script>
</body>
</html>
`))

var redocPage = template.Must(template.New("redoc").Parse(`<!DOCTYPE html>
<html>
<head>
<title>{{.Title}} - ReDoc</title>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body { margin: 0; padding: 0; }</style>
</head>
<body>
<redoc spec-url="{{.SpecPath}}"></redoc>
<script src="https://cdn.jsdelivr.net/npm/redoc@2/bundles/redoc.standalone.js"></script>
</body>
</html>
`))

// Spec returns the OpenAPI document with the info block overridden.
func Spec(title, version string) ([]byte, error) {
	var doc map[string]any
	if err := json.Unmarshal(openapiDoc, &doc); err != nil {
		return nil, fmt.Errorf("decode embedded openapi document: %w", err)
	}
	info, _ := doc["info"].(map[string]any)
	if info == nil {
		info = map[string]any{}
	}
	if title != "" {
		info["title"] = title
	}
	if version != "" {
		info["version"] = version
	}
	doc["info"] = info
	return json.Marshal(doc)
}

// AttachDocs mounts the OpenAPI document and the documentation pages.
func AttachDocs(r gin.IRoutes, opts DocsOptions) error {
	if r == nil {
		return nil
	}
	specPath := normalize(opts.SpecPath, "/openapi.json")
	spec, err := Spec(opts.Title, opts.Version)
	if err != nil {
		return err
	}

	r.GET(specPath, func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", spec)
	})

	page := struct {
		Title    string
		SpecPath string
	}{Title: opts.Title, SpecPath: specPath}

	if opts.SwaggerPath != "-" {
		r.GET(normalize(opts.SwaggerPath, "/docs"), render(swaggerPage, page))
	}
	if opts.RedocPath != "-" {
		r.GET(normalize(opts.RedocPath, "/redoc"), render(redocPage, page))
	}
	return nil
}

func render(t *template.Template, data any) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.Status(http.StatusOK)
		if err := t.Execute(c.Writer, data); err != nil {
			_ = c.Error(err)
		}
	}
}

// normalize: single leading slash, no trailing slash.
func normalize(p, def string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		p = def
	}
	return "/" + strings.Trim(p, "/")
}
