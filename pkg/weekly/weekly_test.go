package weekly

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(FileDateFormat, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func TestFillTemplate(t *testing.T) {
	date := testDate(t, "2025-10-23")

	tests := []struct {
		name string
		tpl  string
		want string
	}{
		{
			name: "token placeholders",
			tpl:  "Date: {DISPLAY_DATE} — [{YOUTUBE_TEXT}]({YOUTUBE_URL})",
			want: "Date: October 23, 2025 — [Watch here](https://youtube.com/v/abc)",
		},
		{
			name: "legacy bracket placeholders",
			tpl:  "Date: [Month Day, Year] — [YouTube Link Here](https://youtube.com/your-video-link)",
			want: "Date: October 23, 2025 — [Watch here](https://youtube.com/v/abc)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FillTemplate(tt.tpl, date, "https://youtube.com/v/abc", "Watch here")
			if got != tt.want {
				t.Errorf("FillTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCreateAndFind(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	path, err := s.Create(testDate(t, "2025-10-23"), "https://youtube.com/v/abc", "Episode 12", false)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if filepath.Base(path) != "2025-10-23-links.md" {
		t.Errorf("filename = %q", filepath.Base(path))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read created file: %v", err)
	}
	if !strings.Contains(string(content), "October 23, 2025") {
		t.Error("display date not rendered")
	}
	if !strings.Contains(string(content), "## Links from Office Hours") {
		t.Error("links section missing from template")
	}

	// Second create without force must refuse.
	if _, err := s.Create(testDate(t, "2025-10-23"), "", "", false); err == nil {
		t.Error("Create() overwrote existing file without force")
	}
	if _, err := s.Create(testDate(t, "2025-10-23"), "", "", true); err != nil {
		t.Errorf("Create(force) error = %v", err)
	}
}

func TestFindSortsNewestFirst(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	for _, d := range []string{"2025-10-09", "2025-10-23", "2025-10-16"} {
		if _, err := s.Create(testDate(t, d), "", "", false); err != nil {
			t.Fatalf("Create(%s): %v", d, err)
		}
	}
	// A non-weekly file must be ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	files, err := s.Find()
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	want := []string{"2025-10-23-links.md", "2025-10-16-links.md", "2025-10-09-links.md"}
	if len(files) != len(want) {
		t.Fatalf("found %d files, want %d", len(files), len(want))
	}
	for i, f := range files {
		if f.Name != want[i] {
			t.Errorf("file[%d] = %q, want %q", i, f.Name, want[i])
		}
	}
}

func TestWriteIndex(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	for _, d := range []string{"2025-10-16", "2025-10-23"} {
		if _, err := s.Create(testDate(t, d), "", "", false); err != nil {
			t.Fatal(err)
		}
	}

	n, err := s.WriteIndex()
	if err != nil {
		t.Fatalf("WriteIndex() error = %v", err)
	}
	if n != 2 {
		t.Errorf("index entries = %d, want 2", n)
	}

	content, err := os.ReadFile(filepath.Join(dir, "index.md"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	text := string(content)
	newest := strings.Index(text, "2025-10-23-links.md")
	older := strings.Index(text, "2025-10-16-links.md")
	if newest == -1 || older == -1 {
		t.Fatalf("index missing entries:\n%s", text)
	}
	if newest > older {
		t.Error("index not sorted newest first")
	}
	if !strings.Contains(text, "Link Archive") {
		t.Error("archive header missing")
	}
}

func TestFindMissingDirectory(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "does-not-exist"))
	files, err := s.Find()
	if err != nil {
		t.Fatalf("Find() on missing dir error = %v", err)
	}
	if files != nil {
		t.Errorf("files = %v, want nil", files)
	}
}
