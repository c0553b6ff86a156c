package db

import (
	"testing"
	"time"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	database := &DB{path: ":memory:"}
	var err error
	database.DB, err = openDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return database
}

func TestPutAndGet(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	url := "https://openai.com/index/gpt-5/"
	if err := db.Put(url, "OpenAI: GPT-5", "enriched", "success"); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	title, source, ok := db.Get(url, 0)
	if !ok {
		t.Fatal("Get() missed a stored title")
	}
	if title != "OpenAI: GPT-5" {
		t.Errorf("title = %q", title)
	}
	if source != "enriched" {
		t.Errorf("source = %q", source)
	}
}

func TestGetMiss(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if _, _, ok := db.Get("https://example.com/never-seen", 0); ok {
		t.Error("Get() hit for a URL never stored")
	}
}

func TestPutReplacesExisting(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	url := "https://example.com/page"
	if err := db.Put(url, "First Title", "resolver", "success"); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}
	if err := db.Put(url, "Second Title", "tweet", "success"); err != nil {
		t.Fatalf("Put() update failed: %v", err)
	}

	title, source, ok := db.Get(url, 0)
	if !ok {
		t.Fatal("Get() missed after update")
	}
	if title != "Second Title" {
		t.Errorf("title not replaced: %q", title)
	}
	if source != "tweet" {
		t.Errorf("source not replaced: %q", source)
	}

	// Still a single urls row.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM urls WHERE original_url = ?", url).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("urls rows = %d, want 1", count)
	}
}

func TestGetHonorsMaxAge(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	url := "https://example.com/old"
	if err := db.Put(url, "Old Title", "enriched", "success"); err != nil {
		t.Fatal(err)
	}

	// Backdate the entry well past any realistic max age.
	if _, err := db.Exec(`
		UPDATE titles SET resolved_at = datetime('now', '-30 days')
		WHERE url_id = (SELECT url_id FROM urls WHERE original_url = ?)
	`, url); err != nil {
		t.Fatal(err)
	}

	if _, _, ok := db.Get(url, 7*24*time.Hour); ok {
		t.Error("Get() returned an entry older than maxAge")
	}
	if _, _, ok := db.Get(url, 0); !ok {
		t.Error("Get() with zero maxAge rejected an old entry")
	}
}

func TestAccessLog(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	url := "https://example.com/tracked"
	if err := db.Put(url, "Tracked", "resolver", "success"); err != nil {
		t.Fatal(err)
	}

	db.Get(url, 0)
	db.Get(url, 0)

	n, err := db.AccessCount(url)
	if err != nil {
		t.Fatalf("AccessCount() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("access count = %d, want 2", n)
	}
}

func TestStoresDomain(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.Put("https://www.anthropic.com/news/skills", "Anthropic: Skills", "resolver", "success"); err != nil {
		t.Fatal(err)
	}

	var domain string
	if err := db.QueryRow("SELECT domain FROM urls WHERE original_url = ?", "https://www.anthropic.com/news/skills").Scan(&domain); err != nil {
		t.Fatal(err)
	}
	if domain != "www.anthropic.com" {
		t.Errorf("domain = %q", domain)
	}
}
