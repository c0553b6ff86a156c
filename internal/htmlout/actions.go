package htmlout

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/opendisruption/weeklinks/pkg/htmlgen"
	"github.com/urfave/cli/v2"
)

// HTMLAction renders weekly markdown files to standalone HTML pages.
func HTMLAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	renderer := htmlgen.New(c.String("ga-id"))

	if c.Bool("all") {
		rendered, err := renderer.RenderDir(c.String("dir"))
		if err != nil {
			return err
		}
		for _, path := range rendered {
			logger.Info("page rendered", "path", path)
		}
		fmt.Printf("Converted %d files\n", len(rendered))
		return nil
	}

	if !c.IsSet("input") {
		return fmt.Errorf("provide --input or --all")
	}

	out, err := renderer.RenderFile(c.String("input"), c.String("output"))
	if err != nil {
		return err
	}
	fmt.Printf("Created %s\n", out)
	return nil
}
