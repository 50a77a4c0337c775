package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/maciejzgadzaj/commit-block/config"
	"github.com/maciejzgadzaj/commit-block/pipeline"
)

// Server renders the aggregated commit list over HTTP
type Server struct {
	Router   *chi.Mux
	pipeline *pipeline.Pipeline
	maxAge   int // Cache-Control max-age in seconds
}

var listTemplate = template.Must(template.New("commits").Parse(`<!DOCTYPE html>
<html>
<head><title>Recent commits</title></head>
<body>
<ul class="commits">
{{- range . }}
  <li class="commit commit-{{ .Source }}">
    <a href="{{ .Link }}">{{ .Title }}</a>
    {{- if .Project }}
    <span class="project">{{ .Project }}</span>
    {{- end }}
    {{- if .Hash }}
    <code class="hash">{{ .ShortHash }}</code>
    {{- end }}
    {{- if .Message }}
    <pre class="message">{{ .Message }}</pre>
    {{- end }}
    <span class="date">{{ .Date }}</span>
  </li>
{{- end }}
</ul>
</body>
</html>
`))

// NewServer creates a new web server serving the given pipeline's
// output. The configured cache time becomes a Cache-Control max-age;
// the server itself caches nothing.
func NewServer(cfg config.Config, p *pipeline.Pipeline) *Server {
	s := &Server{
		pipeline: p,
		maxAge:   cfg.CacheTimeMinutes * 60,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Minute))

	r.Get("/health", s.healthCheck)
	r.Get("/", s.getCommitsHTML)
	r.Get("/commits.json", s.getCommitsJSON)

	s.Router = r
}

// healthCheck returns server health status
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"service":   "commit-block",
	})
}

// getCommitsHTML renders the commit list as HTML list items. The
// pipeline never fails, so an unreachable upstream renders as an
// empty list rather than an error page.
func (s *Server) getCommitsHTML(w http.ResponseWriter, r *http.Request) {
	commits := s.pipeline.Run(r.Context())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", s.maxAge))
	listTemplate.Execute(w, commits)
}

// getCommitsJSON returns the same records as JSON
func (s *Server) getCommitsJSON(w http.ResponseWriter, r *http.Request) {
	commits := s.pipeline.Run(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", s.maxAge))
	json.NewEncoder(w).Encode(commits)
}
