// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError   = "error"
	FieldPath    = "path"
	FieldCommand = "command"
	FieldConfig  = "config"
	FieldName    = "name"

	// Run fields.
	FieldDryRun  = "dry_run"
	FieldBackup  = "backup"
	FieldChanges = "changes"
	FieldWritten = "written"
	FieldReason  = "reason"

	// Rule fields.
	FieldRule       = "rule"
	FieldLine       = "line"
	FieldCount      = "count"
	FieldSuggestion = "suggestion"
	FieldPreview    = "preview"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
