package handler

import (
	"net/http"

	"github.com/monu322/travel-agency-app/spec"
)

// scalarPage is a minimal HTML shell for the Scalar API reference UI.
// It points at the embedded OpenAPI document served by this binary, so the
// documentation and the running code are always in sync.
const scalarPage = `<!doctype html>
<html>
<head>
  <title>Wanderlust Travel API</title>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
</head>
<body>
  <script id="api-reference" data-url="/openapi.yaml"></script>
  <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`

// OpenAPI handles GET /openapi.yaml, serving the embedded spec document.
func (s *Server) OpenAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}

// Docs handles GET /docs, serving the Scalar documentation UI.
func (s *Server) Docs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(scalarPage))
}
