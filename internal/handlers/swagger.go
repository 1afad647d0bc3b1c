package handlers

import "net/http"

var swaggerSpec = []byte(`{
  "openapi": "3.0.0",
  "info": {"title": "K-Pop Idol API", "version": "1.0.0", "description": "Read-only query API for K-Pop idol profile and follower data."},
  "paths": {
    "/": {"get": {"summary": "Get all K-Pop idols", "responses": {"200": {"description": "OK"}}}},
    "/idol/{stage_name}": {"get": {"summary": "Get idol by stage name", "parameters": [{"name": "stage_name", "in": "path", "required": true, "schema": {"type": "string"}}], "responses": {"200": {"description": "OK"}, "404": {"description": "Idol not found"}}}},
    "/group/{group_name}": {"get": {"summary": "Get idols by group", "parameters": [{"name": "group_name", "in": "path", "required": true, "schema": {"type": "string"}}], "responses": {"200": {"description": "OK"}, "404": {"description": "Group not found"}}}},
    "/search/": {"get": {"summary": "Search idols by any field", "parameters": [{"name": "field", "in": "query", "required": true, "schema": {"type": "string"}}, {"name": "value", "in": "query", "required": true, "schema": {"type": "string"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Missing or unknown field"}, "404": {"description": "No matches"}}}},
    "/filter/": {"get": {"summary": "Filter idols by criteria", "parameters": [{"name": "gender", "in": "query", "schema": {"type": "string"}}, {"name": "country", "in": "query", "schema": {"type": "string"}}, {"name": "company", "in": "query", "schema": {"type": "string"}}, {"name": "debut_year", "in": "query", "schema": {"type": "integer"}}, {"name": "age_from", "in": "query", "schema": {"type": "integer"}}, {"name": "age_to", "in": "query", "schema": {"type": "integer"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Malformed parameter"}, "404": {"description": "No matches"}}}}
  }
}`)

func SwaggerSpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(swaggerSpec)
}

func SwaggerUI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Swagger UI</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.17.14/swagger-ui.css" />
  <style>body { margin:0; } #swagger-ui { max-width: 100%; }</style>
  </head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5.17.14/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => {
      window.ui = SwaggerUIBundle({
        url: '/swagger.json',
        dom_id: '#swagger-ui',
      });
    };
  </script>
</body>
</html>`))
}
