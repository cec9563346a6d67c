package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/fixups/internal/configloader"
	"github.com/yaklabco/fixups/internal/logging"
	"github.com/yaklabco/fixups/internal/ui/pretty"
	"github.com/yaklabco/fixups/pkg/config"
	"github.com/yaklabco/fixups/pkg/fixup"
	"github.com/yaklabco/fixups/pkg/runner"
)

// ErrSkipped is returned when a target changed on disk while it was being fixed.
var ErrSkipped = errors.New("file skipped")

// fixFlags are the flags shared by every fix command.
type fixFlags struct {
	dryRun bool
	backup bool
}

func addFixFlags(cmd *cobra.Command, flags *fixFlags) {
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "print a diff instead of writing")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep a sidecar backup of each rewritten file")
}

// session carries what a fix command needs once configuration is resolved.
type session struct {
	ctx     context.Context
	cfg     *config.Config
	printer *pretty.Printer
}

// newSession loads configuration and applies flags explicitly set on cmd.
func newSession(cmd *cobra.Command, flags *fixFlags) (*session, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	loaded, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	if loaded.LoadedFrom != "" {
		logger.Debug("loaded configuration", logging.FieldConfig, loaded.LoadedFrom)
	}
	for _, name := range loaded.EnvApplied {
		logger.Debug("applied environment override", logging.FieldName, name)
	}

	cfg := loaded.Config
	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun = flags.dryRun
	}
	if cmd.Flags().Changed("backup") {
		cfg.Backups.Enabled = flags.backup
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	return &session{
		ctx:     ctx,
		cfg:     cfg,
		printer: pretty.NewPrinter(cmd.OutOrStdout(), colorMode),
	}, nil
}

// fix runs transform over path and reports the outcome. The success message is
// printed only when the file was written or needed no change.
func (s *session) fix(name, path string, transform fixup.Transform, success string) (*runner.Outcome, error) {
	logger := logging.FromContext(s.ctx)

	logger.Debug("fixing file",
		logging.FieldCommand, name,
		logging.FieldPath, path,
		logging.FieldDryRun, s.cfg.DryRun,
		logging.FieldBackup, s.cfg.Backups.Enabled,
	)

	outcome, err := runner.Run(s.ctx, runner.Job{
		Name:      name,
		Path:      path,
		Transform: transform,
		DryRun:    s.cfg.DryRun,
		Backup:    s.cfg.BackupConfig(),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	switch {
	case outcome.Skipped:
		logger.Debug("file not written", logging.FieldPath, path, logging.FieldReason, outcome.SkipReason)
		s.printer.Warning(fmt.Sprintf("⚠ %s not written: %s", path, outcome.SkipReason))
		return outcome, fmt.Errorf("%w: %s: %s", ErrSkipped, path, outcome.SkipReason)
	case s.cfg.DryRun:
		s.printer.Diff(outcome.Diff)
		logger.Info("dry run, nothing written",
			logging.FieldPath, path,
			logging.FieldChanges, len(outcome.Changes),
		)
	default:
		logger.Debug("file processed",
			logging.FieldPath, path,
			logging.FieldChanges, len(outcome.Changes),
			logging.FieldWritten, outcome.Written,
		)
		s.printer.Success(success)
	}

	return outcome, nil
}

// targetArg returns args[idx] when present, otherwise fallback.
func targetArg(args []string, idx int, fallback string) string {
	if idx < len(args) && args[idx] != "" {
		return args[idx]
	}
	return fallback
}
