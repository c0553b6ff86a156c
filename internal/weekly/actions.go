package weekly

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/opendisruption/weeklinks/pkg/weekly"
	"github.com/urfave/cli/v2"
)

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// WeeklyAction creates a new dated weekly file from the template and
// refreshes the archive index.
func WeeklyAction(c *cli.Context) error {
	logger := newLogger(c)
	store := weekly.NewStore(c.String("dir"))

	date := time.Now()
	if c.IsSet("date") {
		var err error
		date, err = time.Parse(weekly.FileDateFormat, c.String("date"))
		if err != nil {
			return fmt.Errorf("invalid --date (want YYYY-MM-DD): %w", err)
		}
	}

	if c.Bool("dry-run") {
		rendered := weekly.FillTemplate(store.LoadTemplate(), date,
			c.String("video-url"), c.String("youtube-text"))
		fmt.Println(rendered)
		return nil
	}

	path, err := store.Create(date, c.String("video-url"), c.String("youtube-text"), c.Bool("force"))
	if err != nil {
		return err
	}
	logger.Info("weekly file created", "path", path)

	count, err := store.WriteIndex()
	if err != nil {
		return err
	}
	logger.Info("archive index updated", "entries", count)

	fmt.Printf("Created %s\n", path)
	return nil
}

// IndexAction regenerates the archive index alone.
func IndexAction(c *cli.Context) error {
	logger := newLogger(c)
	store := weekly.NewStore(c.String("dir"))

	if c.Bool("dry-run") {
		files, err := store.Find()
		if err != nil {
			return err
		}
		fmt.Println(weekly.RenderIndex(files))
		return nil
	}

	count, err := store.WriteIndex()
	if err != nil {
		return err
	}
	logger.Info("archive index updated", "entries", count)
	fmt.Printf("Indexed %d weekly files\n", count)
	return nil
}
