// Package logging provides logging utilities for forage-build.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("classified project", "path", path, "type", projectType)
//	logging.Warn("failed to record build script", "path", path)
//
// Code working on one project folder logs through ForFolder, which tags
// every record with the folder path:
//
//	log := logging.ForFolder(f.Path())
//	log.Debug("using entry file", "entry", "server.js")
//
// Library packages only log at debug level; user output belongs to cmd.
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("Detected %s project", projectType)
//	logging.UserSuccess("Build script %s written", name)
//	logging.UserWarning("No build script written")
//	logging.UserError("Failed to plan build: %v", err)
//
// Output destinations:
//   - UserInfo, UserSuccess: stdout
//   - UserWarning, UserError: stderr
//
// Glyphs are colored with lipgloss when the output is a terminal:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
