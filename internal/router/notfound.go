package router

import (
	"fmt"
	"html"
	"net/http"
	"strings"

	"github.com/imposter-project/static-frontend/internal/response"
)

// handleNotFound generates a custom 404 page listing the registered endpoints
func handleNotFound(r *http.Request, patterns []string) *response.Response {
	var page strings.Builder
	page.WriteString(`<html>
<head><title>Not found</title></head>
<body>
<h3>Resource not found</h3>
<p>
No endpoint exists for: <pre>`)
	page.WriteString(html.EscapeString(fmt.Sprintf("%s %s", r.Method, r.URL.Path)))
	page.WriteString("</pre></p>")

	if len(patterns) > 0 {
		page.WriteString("<p>The registered endpoints are:\n<ul>")
		for _, pattern := range patterns {
			page.WriteString(fmt.Sprintf("<li>%s</li>", html.EscapeString(pattern)))
		}
		page.WriteString("</ul></p>")
	}

	page.WriteString(`
</body>
</html>`)

	return &response.Response{
		StatusCode: http.StatusNotFound,
		Headers:    map[string]string{"Content-Type": "text/html"},
		Body:       []byte(page.String()),
	}
}
