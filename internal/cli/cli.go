// Package cli implements the rackplan command-line interface.
//
// This package provides commands for optimizing rack placement from
// scenario files, re-scoring and re-rendering saved solutions, generating
// text reports, serving the HTTP API and managing the solution cache.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - optimize: Run the placement search on a scenario and render artifacts
//   - score: Re-score a saved solution and print the breakdown
//   - render: Re-render a saved solution in other formats
//   - report: Generate the text operations report for a saved solution
//   - serve: Run the HTTP API
//   - cache: Manage the solution cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/darkstore/rackplan/pkg/cache"
	"github.com/darkstore/rackplan/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "rackplan"

// newCache builds the CLI cache backend. Failures to resolve the cache
// directory silently disable caching rather than failing the command.
func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/rackplan/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// artifactExt maps a pipeline format to its file extension.
func artifactExt(format string) string {
	switch format {
	case pipeline.FormatReport:
		return "txt"
	default:
		return format
	}
}
