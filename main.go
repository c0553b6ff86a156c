package main

import (
	"log"
	"os"
	"time"

	"github.com/opendisruption/weeklinks/internal/format"
	"github.com/opendisruption/weeklinks/internal/htmlout"
	"github.com/opendisruption/weeklinks/internal/rawimport"
	"github.com/opendisruption/weeklinks/internal/weekly"
	"github.com/opendisruption/weeklinks/pkg/enricher"
	"github.com/opendisruption/weeklinks/pkg/htmlgen"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "weeklinks",
		Usage: "format the weekly AI news link lists for Open Disruption",
		Commands: []*cli.Command{
			{
				Name:   "format",
				Usage:  "resolve titles for URLs and emit or rewrite the markdown link list",
				Action: format.FormatAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "urls",
						Usage: "URLs to format, separated by commas or spaces",
					},
					&cli.StringFlag{
						Name:  "input-file",
						Usage: "weekly markdown file (links section rewritten) or plain URL list",
					},
					&cli.StringFlag{
						Name:  "output-file",
						Usage: "write output here instead of the input file / stdout",
					},
					&cli.BoolFlag{
						Name:  "enrich",
						Usage: "fetch page metadata for better titles",
					},
					&cli.DurationFlag{
						Name:  "timeout",
						Value: enricher.DefaultTimeout,
						Usage: "per-request timeout for enrichment fetches",
					},
					&cli.DurationFlag{
						Name:  "delay",
						Value: time.Second,
						Usage: "politeness delay between enrichment fetches",
					},
					&cli.StringFlag{
						Name:  "rules",
						Usage: "YAML rules overlay (curated titles, domain labels, allow/deny)",
					},
					&cli.BoolFlag{
						Name:  "no-cache",
						Usage: "skip the title cache entirely",
					},
					&cli.DurationFlag{
						Name:  "max-age",
						Value: 7 * 24 * time.Hour,
						Usage: "accept cached titles younger than this (0 = any age)",
					},
					&cli.BoolFlag{
						Name:  "dry-run",
						Usage: "print the result instead of writing files",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
			},
			{
				Name:   "weekly",
				Usage:  "create a new dated weekly file from the template",
				Action: weekly.WeeklyAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "date",
						Usage: "week date as YYYY-MM-DD (default: today)",
					},
					&cli.StringFlag{
						Name:  "video-url",
						Usage: "YouTube link for this week's episode",
					},
					&cli.StringFlag{
						Name:  "youtube-text",
						Value: "Watch the episode",
						Usage: "anchor text for the YouTube link",
					},
					&cli.StringFlag{
						Name:  "dir",
						Value: "weekly-links",
						Usage: "weekly files directory",
					},
					&cli.BoolFlag{
						Name:  "force",
						Usage: "overwrite an existing weekly file",
					},
					&cli.BoolFlag{
						Name:  "dry-run",
						Usage: "print the rendered file instead of writing it",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
			},
			{
				Name:   "index",
				Usage:  "regenerate the archive index",
				Action: weekly.IndexAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "dir",
						Value: "weekly-links",
						Usage: "weekly files directory",
					},
					&cli.BoolFlag{
						Name:  "dry-run",
						Usage: "print the index instead of writing it",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
			},
			{
				Name:   "import",
				Usage:  "convert a RAW_LINKS capture file into a weekly markdown file",
				Action: rawimport.ImportAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Usage:    "capture file (RAW_LINKS/YYYY-MM-DD)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "date",
						Usage: "week date as YYYY-MM-DD (default: inferred from filename)",
					},
					&cli.StringFlag{
						Name:  "category",
						Usage: "only import links under this capture category",
					},
					&cli.StringFlag{
						Name:  "dir",
						Value: "weekly-links",
						Usage: "weekly files directory",
					},
					&cli.BoolFlag{
						Name:  "dry-run",
						Usage: "print the result instead of writing it",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
			},
			{
				Name:   "html",
				Usage:  "render weekly markdown to standalone HTML pages",
				Action: htmlout.HTMLAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "input",
						Usage: "markdown file to render",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "output path (default: input with .html extension)",
					},
					&cli.BoolFlag{
						Name:  "all",
						Usage: "render every weekly file in the directory",
					},
					&cli.StringFlag{
						Name:  "dir",
						Value: "weekly-links",
						Usage: "weekly files directory",
					},
					&cli.StringFlag{
						Name:  "ga-id",
						Value: htmlgen.DefaultMeasurementID,
						Usage: "Google Analytics measurement id",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
