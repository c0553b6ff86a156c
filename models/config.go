// Package models defines data structures shared across commands.
package models

import "time"

// FormatConfig holds runtime configuration for a format run.
// All values come from CLI flags, not external config files.
type FormatConfig struct {
	URLs       []string
	InputFile  string
	OutputFile string

	// Enrichment knobs
	Enrich  bool
	Timeout time.Duration
	Delay   time.Duration

	// Cache knobs
	NoCache bool
	MaxAge  time.Duration
}
