package rawimport

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/opendisruption/weeklinks/pkg/rawlinks"
	"github.com/opendisruption/weeklinks/pkg/sections"
	"github.com/opendisruption/weeklinks/pkg/weekly"
	"github.com/urfave/cli/v2"
)

// ImportAction converts a RAW_LINKS capture file into a weekly markdown
// file. The URLs go in unformatted; a format run polishes them later.
func ImportAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	inPath := c.String("input")
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read capture file: %w", err)
	}

	date, err := importDate(c, inPath)
	if err != nil {
		return err
	}

	items, searchTopics := rawlinks.Parse(string(data), c.String("category"))
	urls := rawlinks.URLs(items)
	if len(searchTopics) > 0 {
		logger.Info("topics to research (excluded from output)",
			"topics", strings.Join(searchTopics, ", "))
	}
	if len(urls) == 0 {
		return fmt.Errorf("no URLs found in %s", inPath)
	}

	bullets := make([]string, len(urls))
	for i, u := range urls {
		bullets[i] = "- " + u
	}
	rendered := strings.Join(bullets, "\n")

	store := weekly.NewStore(c.String("dir"))
	outPath := store.Filename(date)

	var doc string
	if existing, rerr := os.ReadFile(outPath); rerr == nil {
		doc = string(existing)
	} else {
		doc = weekly.FillTemplate(store.LoadTemplate(), date, "", "")
	}

	result, err := sections.Replace(doc, rendered)
	if err != nil {
		return err
	}

	if c.Bool("dry-run") {
		fmt.Println(result)
		return nil
	}

	if err := os.MkdirAll(c.String("dir"), 0755); err != nil {
		return fmt.Errorf("failed to create weekly directory: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(result), 0644); err != nil {
		return fmt.Errorf("failed to write weekly file: %w", err)
	}

	logger.Info("capture imported", "path", outPath, "urls", len(urls))
	fmt.Printf("Created/updated: %s (%d URLs)\n", outPath, len(urls))
	fmt.Printf("Next: weeklinks format --input-file %s --enrich\n", outPath)
	return nil
}

// importDate takes --date when given, otherwise infers it from the
// capture filename (RAW_LINKS/2026-01-29).
func importDate(c *cli.Context, inPath string) (time.Time, error) {
	if c.IsSet("date") {
		date, err := time.Parse(weekly.FileDateFormat, c.String("date"))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --date (want YYYY-MM-DD): %w", err)
		}
		return date, nil
	}

	name := filepath.Base(inPath)
	if date, err := time.Parse(weekly.FileDateFormat, name); err == nil {
		return date, nil
	}
	return time.Time{}, errors.New("could not infer date from filename; use --date YYYY-MM-DD")
}
