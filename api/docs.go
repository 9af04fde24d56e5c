package api

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
)

const swaggerUI = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Hall API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js" crossorigin></script>
<script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({ url: "/api-docs/openapi.json", dom_id: "#swagger-ui" });
  };
</script>
</body>
</html>`

// RegisterDocs serves the rendered API docs at /api-docs and the raw document as YAML
// and JSON next to it.
func RegisterDocs(router gin.IRouter, swagger *openapi3.T) {
	docs := router.Group("/api-docs")
	docs.GET("", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerUI))
	})
	docs.GET("/openapi.yaml", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/x-yaml", RawSpec())
	})
	docs.GET("/openapi.json", func(c *gin.Context) {
		c.JSON(http.StatusOK, swagger)
	})
}
