// Package runner applies a fixup.Transform to a single file on disk.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/fixups/internal/logging"
	"github.com/yaklabco/fixups/pkg/diff"
	"github.com/yaklabco/fixups/pkg/fixup"
	"github.com/yaklabco/fixups/pkg/fsutil"
)

// Errors returned by Run, for categorization via errors.Is.
var (
	// ErrFileNotFound indicates the target does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates the target could not be read or written.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrEncoding indicates the target is not valid UTF-8 text.
	ErrEncoding = errors.New("encoding error")

	// ErrWriteFailure indicates the rewritten content could not be written.
	ErrWriteFailure = errors.New("write failure")
)

// Job describes one file to rewrite.
type Job struct {
	// Name identifies the job in logs.
	Name string

	// Path is the target file.
	Path string

	// Transform produces the new content.
	Transform fixup.Transform

	// DryRun computes a diff instead of writing.
	DryRun bool

	// Backup controls whether a sidecar copy is kept before writing.
	Backup fsutil.BackupConfig
}

// Run reads the target, transforms it and writes it back.
//
// The steps are:
//  1. Read the file with metadata; reject non-UTF-8 content.
//  2. Apply the transform in memory.
//  3. In dry-run mode, compute a diff and stop.
//  4. Stop if nothing changed.
//  5. Skip if the file was modified since it was read.
//  6. Create a backup if enabled.
//  7. Write the new content atomically, keeping the file mode.
func Run(ctx context.Context, job Job) (*Outcome, error) {
	logger := logging.FromContext(ctx)

	original, info, err := fsutil.ReadFile(ctx, job.Path)
	if err != nil {
		return nil, categorizeError(err)
	}

	result := job.Transform(original)
	outcome := &Outcome{
		Name:    job.Name,
		Path:    job.Path,
		Changes: result.Changes,
		Content: result.Content,
	}

	for _, change := range result.Changes {
		logger.Debug("applied rule",
			logging.FieldRule, change.Rule,
			logging.FieldLine, change.Line,
			logging.FieldCount, change.Count,
			logging.FieldPath, job.Path,
		)
	}

	if job.DryRun {
		outcome.Diff = diff.Compute(job.Path, original, result.Content)
		return outcome, nil
	}

	if !result.Changed() {
		logger.Debug("no changes", logging.FieldPath, job.Path)
		return outcome, nil
	}

	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if modified {
		outcome.Skipped = true
		outcome.SkipReason = "file modified during processing"
		return outcome, nil
	}

	created, err := fsutil.CreateBackup(ctx, job.Path, job.Backup)
	if err != nil {
		return nil, fmt.Errorf("create backup: %w", err)
	}
	outcome.BackupCreated = created

	if err := fsutil.WriteAtomic(ctx, job.Path, result.Content, info.Mode); err != nil {
		return nil, categorizeWriteError(err)
	}
	outcome.Written = true

	return outcome, nil
}

// categorizeError wraps a read error with the matching Run error.
func categorizeError(err error) error {
	switch {
	case errors.Is(err, fsutil.ErrNotFound), errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	case errors.Is(err, fsutil.ErrPermissionDenied), errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	case errors.Is(err, fsutil.ErrInvalidEncoding):
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	default:
		return err
	}
}

func categorizeWriteError(err error) error {
	if errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w: %w", ErrWriteFailure, ErrPermissionDenied, err)
	}
	return fmt.Errorf("%w: %w", ErrWriteFailure, err)
}
