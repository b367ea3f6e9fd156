package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// openAPIDoc is docs/api/openapi.yaml, loaded by cmd/api at startup.
var openAPIDoc []byte

// SetSwaggerSpec installs the purchase engine's OpenAPI document.
func SetSwaggerSpec(doc []byte) {
	openAPIDoc = doc
}

// SwaggerSpec serves the OpenAPI document as YAML.
func SwaggerSpec(c *gin.Context) {
	if openAPIDoc == nil {
		c.String(http.StatusNotFound, "purchase engine OpenAPI document not loaded")
		return
	}
	c.Data(http.StatusOK, "application/x-yaml", openAPIDoc)
}

// SwaggerUI serves the API explorer. Bearer tokens entered under Authorize
// survive page reloads so admin routes can be tried without pasting again.
func SwaggerUI(c *gin.Context) {
	html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Purchase Engine: purchases, wallets and disputes</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: '/swagger/spec',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: 'BaseLayout',
      docExpansion: 'list',
      persistAuthorization: true,
      tagsSorter: 'alpha'
    });
  </script>
</body>
</html>`
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
