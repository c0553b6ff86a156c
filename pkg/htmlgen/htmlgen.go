// Package htmlgen renders weekly markdown files to standalone HTML pages
// with the site analytics snippet baked in.
package htmlgen

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

// DefaultMeasurementID is the Google Analytics property the pages report to.
const DefaultMeasurementID = "G-W5RHK6N572"

const defaultTitle = "Open Disruption — Weekly AI News Links"

var datePattern = regexp.MustCompile(`\*\*Date:\*\*\s*(.+)`)

// Renderer converts markdown documents into full HTML pages.
type Renderer struct {
	measurementID string
}

func New(measurementID string) *Renderer {
	if measurementID == "" {
		measurementID = DefaultMeasurementID
	}
	return &Renderer{measurementID: measurementID}
}

// Title picks the page title from the first H1, falling back to the
// Date line and then the fixed default.
func Title(content string) string {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
		if m := datePattern.FindStringSubmatch(line); m != nil {
			return fmt.Sprintf("%s (%s)", defaultTitle, strings.TrimSpace(m[1]))
		}
	}
	return defaultTitle
}

// ensureArchive appends the archive footer when the document lacks one.
func ensureArchive(content string) string {
	if strings.Contains(content, "Archive") {
		return content
	}
	return content + archiveSection
}

// Render converts a markdown document into a complete HTML page.
func (r *Renderer) Render(content string) string {
	title := Title(content)
	body := blackfriday.Run([]byte(ensureArchive(content)))
	page := strings.ReplaceAll(pageTemplate, "{title}", title)
	page = strings.ReplaceAll(page, "{ga_id}", r.measurementID)
	page = strings.ReplaceAll(page, "{content}", string(body))
	return page
}

// RenderFile renders one markdown file next to itself with an .html
// extension, or to outPath when given.
func (r *Renderer) RenderFile(inPath, outPath string) (string, error) {
	content, err := os.ReadFile(inPath)
	if err != nil {
		return "", fmt.Errorf("failed to read markdown file: %w", err)
	}
	if outPath == "" {
		outPath = strings.TrimSuffix(inPath, filepath.Ext(inPath)) + ".html"
	}
	if err := os.WriteFile(outPath, []byte(r.Render(string(content))), 0644); err != nil {
		return "", fmt.Errorf("failed to write html file: %w", err)
	}
	return outPath, nil
}

// RenderDir renders every markdown file in a directory except index.md.
func (r *Renderer) RenderDir(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no markdown files found in %s", dir)
	}

	var rendered []string
	for _, path := range matches {
		if filepath.Base(path) == "index.md" || filepath.Base(path) == "template.md" {
			continue
		}
		out, err := r.RenderFile(path, "")
		if err != nil {
			return rendered, err
		}
		rendered = append(rendered, out)
	}
	return rendered, nil
}
