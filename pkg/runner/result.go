package runner

import (
	"github.com/yaklabco/fixups/pkg/diff"
	"github.com/yaklabco/fixups/pkg/fixup"
)

// Outcome is the result of running one Job.
type Outcome struct {
	// Name is the job name.
	Name string

	// Path is the file that was processed.
	Path string

	// Changes lists the substitutions the transform made.
	Changes []fixup.Change

	// Content is the transformed content, written or not.
	Content []byte

	// Diff is set in dry-run mode when the content changed.
	Diff *diff.Diff

	// Skipped is true if the file changed underneath the run.
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// BackupCreated is true if a backup was written.
	BackupCreated bool

	// Written is true if the file was rewritten on disk.
	Written bool
}

// Changed reports whether the transform produced different content.
func (o *Outcome) Changed() bool {
	return o != nil && len(o.Changes) > 0
}
