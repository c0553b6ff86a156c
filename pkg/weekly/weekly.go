// Package weekly manages the dated markdown files under weekly-links/ and
// the archive index listing them.
package weekly

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

const (
	FileDateFormat    = "2006-01-02"
	DisplayDateFormat = "January 02, 2006"

	templateName = "template.md"
	indexName    = "index.md"
)

var filenamePattern = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})-links\.md$`)

// Store is rooted at the weekly-links directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Filename returns the dated file path for a week.
func (s *Store) Filename(date time.Time) string {
	return filepath.Join(s.dir, date.Format(FileDateFormat)+"-links.md")
}

// LoadTemplate returns template.md if present, otherwise the built-in
// default.
func (s *Store) LoadTemplate() string {
	data, err := os.ReadFile(filepath.Join(s.dir, templateName))
	if err != nil {
		return defaultTemplate
	}
	return string(data)
}

// FillTemplate renders the weekly template. Both the token placeholders
// and the older bracket-style placeholders are honored.
func FillTemplate(tpl string, date time.Time, videoURL, youtubeText string) string {
	display := date.Format(DisplayDateFormat)
	out := tpl
	out = strings.ReplaceAll(out, "{DISPLAY_DATE}", display)
	out = strings.ReplaceAll(out, "{YOUTUBE_URL}", videoURL)
	out = strings.ReplaceAll(out, "{YOUTUBE_TEXT}", youtubeText)
	out = strings.ReplaceAll(out, "[Month Day, Year]", display)
	out = strings.ReplaceAll(out, "(https://youtube.com/your-video-link)", "("+videoURL+")")
	out = strings.ReplaceAll(out, "[YouTube Link Here]", youtubeText)
	return out
}

// Create writes a new weekly file from the template. An existing file is
// only overwritten with force.
func (s *Store) Create(date time.Time, videoURL, youtubeText string, force bool) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create weekly directory: %w", err)
	}

	path := s.Filename(date)
	if _, err := os.Stat(path); err == nil && !force {
		return path, fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	rendered := FillTemplate(s.LoadTemplate(), date, videoURL, youtubeText)
	if err := os.WriteFile(path, []byte(rendered), 0644); err != nil {
		return "", fmt.Errorf("failed to write weekly file: %w", err)
	}
	return path, nil
}

// WeekFile is a dated weekly file found on disk.
type WeekFile struct {
	Date time.Time
	Name string
}

// Find lists the dated weekly files, newest first.
func (s *Store) Find() ([]WeekFile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read weekly directory: %w", err)
	}

	var files []WeekFile
	for _, entry := range entries {
		m := filenamePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		d, err := time.Parse(FileDateFormat, m[1])
		if err != nil {
			continue
		}
		files = append(files, WeekFile{Date: d, Name: entry.Name()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Date.After(files[j].Date) })
	return files, nil
}

// RenderIndex builds the archive index content for a file list.
func RenderIndex(files []WeekFile) string {
	var b strings.Builder
	b.WriteString(archiveHeader)
	b.WriteString("\n")
	for _, f := range files {
		fmt.Fprintf(&b, "- [%s](./%s)\n", f.Date.Format(DisplayDateFormat), f.Name)
	}
	b.WriteString(archiveFooter)
	return strings.TrimSpace(b.String()) + "\n"
}

// WriteIndex regenerates index.md from the files on disk and returns how
// many entries it lists.
func (s *Store) WriteIndex() (int, error) {
	files, err := s.Find()
	if err != nil {
		return 0, err
	}
	content := RenderIndex(files)
	if err := os.WriteFile(filepath.Join(s.dir, indexName), []byte(content), 0644); err != nil {
		return 0, fmt.Errorf("failed to write index: %w", err)
	}
	return len(files), nil
}
