// Package doc serves the OpenAPI document and a browsable reference page.
package doc

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

type server struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

// serversFor lists the API base URLs reachable from env
func serversFor(env, host string) []server {
	servers := []server{{URL: "http://" + host + "/api/v1", Description: "Current host"}}
	switch env {
	case "staging":
		servers = append(servers, server{URL: "https://staging.streaks.local/api/v1", Description: "Staging"})
	case "production":
		servers = append(servers, server{URL: "https://api.streaks.local/api/v1", Description: "Production"})
	}
	return servers
}

func swaggerJSON(env, host string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := swag.ReadDoc()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read API document"})
			return
		}

		var document map[string]interface{}
		if err := json.Unmarshal([]byte(raw), &document); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse API document"})
			return
		}

		document["servers"] = serversFor(env, host)

		components, _ := document["components"].(map[string]interface{})
		if components == nil {
			components = map[string]interface{}{}
			document["components"] = components
		}
		schemes, _ := components["securitySchemes"].(map[string]interface{})
		if schemes == nil {
			schemes = map[string]interface{}{}
			components["securitySchemes"] = schemes
		}
		schemes["BearerAuth"] = map[string]interface{}{
			"type":         "http",
			"scheme":       "bearer",
			"bearerFormat": "PASETO",
			"description":  "v2.local PASETO access token",
		}

		c.JSON(http.StatusOK, document)
	}
}

const elementsHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Streaks API Reference</title>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <script src="https://unpkg.com/@stoplight/elements/web-components.min.js"></script>
    <link rel="stylesheet" href="https://unpkg.com/@stoplight/elements/styles.min.css">
    <style>
        body { margin: 0; padding: 0; height: 100vh; }
        elements-api { height: 100%; }
    </style>
</head>
<body>
    <elements-api apiDescriptionUrl="/swagger/doc.json" router="hash" layout="sidebar"></elements-api>
</body>
</html>`

func serveElements(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(elementsHTML))
}

// Init mounts the document and the reference page
func Init(r *gin.Engine, env, host string) {
	r.GET("/swagger/doc.json", swaggerJSON(env, host))
	r.GET("/docs/*any", serveElements)
}
