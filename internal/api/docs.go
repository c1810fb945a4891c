// ABOUTME: Welcome and documentation pages rendered from embedded markdown
// ABOUTME: Markdown is converted to HTML once at startup via goldmark

package api

import (
	"bytes"
	"embed"
	"fmt"
	"net/http"

	"github.com/yuin/goldmark"
)

//go:embed docs
var docsFS embed.FS

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>myFlix API</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 48rem; margin: 2rem auto; padding: 0 1rem; line-height: 1.6; }
code { background: #f4f4f4; padding: 0.1rem 0.3rem; border-radius: 3px; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; text-align: left; }
</style>
</head>
<body>
%s
</body>
</html>`

// renderMarkdownPage converts an embedded markdown file into a full HTML page.
func renderMarkdownPage(name string) ([]byte, error) {
	md, err := docsFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	var htmlBuf bytes.Buffer
	if err := goldmark.Convert(md, &htmlBuf); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}

	return fmt.Appendf(nil, pageTemplate, htmlBuf.String()), nil
}

// servePage writes a rendered markdown page, or a 500 if rendering fails.
func (s *Server) servePage(w http.ResponseWriter, name string) {
	page, err := renderMarkdownPage(name)
	if err != nil {
		s.logger.Error("rendering page failed", "page", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// handleWelcome handles GET /
func (s *Server) handleWelcome(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, "docs/welcome.md")
}

// handleDocumentation handles GET /documentation
func (s *Server) handleDocumentation(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, "docs/documentation.md")
}
