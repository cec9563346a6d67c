package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/fixups/internal/logging"
	"github.com/yaklabco/fixups/pkg/fsutil"
)

func newRestoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore [path...]",
		Short: "Restore files from the backups kept by --backup",
		Long: `Restore files from the sidecar backups written by --backup.

With no arguments every configured target that has a backup is restored.
The backup is left in place, so a later fix run keeps the original content.

Examples:
  fixups report --backup      # Fix the report and keep a backup
  fixups restore              # Undo every fix that kept a backup
  fixups restore REPORT.md    # Undo the fix of one file`,
		RunE: runRestore,
	}
}

func runRestore(cmd *cobra.Command, args []string) error {
	sess, err := newSession(cmd, &fixFlags{})
	if err != nil {
		return err
	}
	logger := logging.FromContext(sess.ctx)

	paths := args
	if len(paths) == 0 {
		targets := sess.cfg.Targets
		paths = []string{targets.Report, targets.Quotes, targets.KnowledgeBase, targets.SupportGuide}
	}

	mode := fsutil.BackupMode(sess.cfg.Backups.Mode)
	restored := 0
	for _, path := range paths {
		ok, err := fsutil.RestoreBackup(sess.ctx, path, mode)
		if err != nil {
			return fmt.Errorf("restore %s: %w", path, err)
		}
		if !ok {
			logger.Debug("no backup", logging.FieldPath, path, logging.FieldBackup, fsutil.BackupPath(path, mode))
			continue
		}
		restored++
		sess.printer.Success("✅ Restored " + path)
	}

	if restored == 0 {
		sess.printer.Warning("⚠ no backups found")
	}

	return nil
}
