package format

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/opendisruption/weeklinks/internal/common"
	"github.com/opendisruption/weeklinks/models"
	"github.com/opendisruption/weeklinks/pkg/db"
	"github.com/opendisruption/weeklinks/pkg/enricher"
	"github.com/opendisruption/weeklinks/pkg/formatter"
	"github.com/opendisruption/weeklinks/pkg/resolver"
	"github.com/opendisruption/weeklinks/pkg/sections"
	"github.com/opendisruption/weeklinks/pkg/tweets"
	"github.com/urfave/cli/v2"
)

func FormatAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	config := &models.FormatConfig{
		InputFile:  c.String("input-file"),
		OutputFile: c.String("output-file"),
		Enrich:     c.Bool("enrich"),
		Timeout:    c.Duration("timeout"),
		Delay:      c.Duration("delay"),
		NoCache:    c.Bool("no-cache"),
		MaxAge:     c.Duration("max-age"),
	}

	// The input document is kept around so the links section can be
	// rewritten in place.
	var doc string
	switch {
	case c.IsSet("urls"):
		config.URLs = common.SplitURLList(c.String("urls"))
	case config.InputFile != "":
		data, err := os.ReadFile(config.InputFile)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
		doc = string(data)
		if strings.Contains(doc, "## ") {
			config.URLs = sections.ExtractSectionURLs(doc)
		} else {
			// Plain one-URL-per-line capture file.
			doc = ""
			config.URLs, err = common.ReadURLsFile(config.InputFile)
			if err != nil {
				return err
			}
		}
	default:
		fmt.Fprintln(os.Stderr, "Error: No URLs provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  weeklinks format --urls "https://example.com,https://example.org"`)
		fmt.Fprintln(os.Stderr, `  weeklinks format --input-file weekly-links/2025-10-23-links.md`)
		os.Exit(1)
	}

	sanitized, invalid := common.SanitizeAndValidateURLs(config.URLs)
	for _, badURL := range invalid {
		logger.Warn("skipping malformed URL", "url", badURL)
	}
	config.URLs = sanitized
	if len(config.URLs) == 0 {
		return fmt.Errorf("no usable URLs found")
	}

	var rules *models.RulesFile
	if c.IsSet("rules") {
		var err error
		rules, err = models.LoadRules(c.String("rules"))
		if err != nil {
			return err
		}
		logger.Info("rules overlay loaded", "path", c.String("rules"),
			"curated", len(rules.Curated), "domains", len(rules.Domains))
	}

	fcfg := formatter.Config{
		Resolver: resolver.NewWithRules(rules),
		Logger:   logger,
		Enrich:   config.Enrich,
		Delay:    config.Delay,
		MaxAge:   config.MaxAge,
	}
	if config.Enrich {
		var extraAllow, extraDeny []string
		if rules != nil {
			extraAllow, extraDeny = rules.Allow, rules.Deny
		}
		fcfg.Policy = enricher.NewPolicy(extraAllow, extraDeny)
		fcfg.Enricher = enricher.New(config.Timeout)
		fcfg.Tweets = tweets.NewScraper(config.Timeout)
	}

	if !config.NoCache {
		database, err := db.Open()
		if err != nil {
			logger.Warn("title cache unavailable", "error", err)
		} else {
			defer database.Close()
			fcfg.Cache = database
		}
	}

	entries := formatter.New(fcfg).FormatBatch(context.Background(), config.URLs)
	rendered := formatter.Render(entries)

	logger.Info("batch formatted",
		"urls", len(config.URLs),
		"entries", len(entries),
		"elapsed_seconds", time.Since(startTime).Seconds())

	if doc != "" {
		updated, err := sections.Replace(doc, rendered)
		if err != nil {
			return err
		}
		outPath := config.OutputFile
		if outPath == "" {
			outPath = config.InputFile
		}
		if c.Bool("dry-run") {
			fmt.Println(updated)
			return nil
		}
		if err := os.WriteFile(outPath, []byte(updated), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Printf("Updated %s (%d links)\n", outPath, len(entries))
		return nil
	}

	if config.OutputFile != "" && !c.Bool("dry-run") {
		if err := os.WriteFile(config.OutputFile, []byte(rendered+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Printf("Wrote %s (%d links)\n", config.OutputFile, len(entries))
		return nil
	}

	fmt.Println(rendered)
	return nil
}
