package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/fixups/internal/logging"
	"github.com/yaklabco/fixups/pkg/fences"
	"github.com/yaklabco/fixups/pkg/fixup"
)

type reportFlags struct {
	fixFlags
	hints bool
}

func newReportCommand() *cobra.Command {
	flags := &reportFlags{}

	cmd := &cobra.Command{
		Use:   "report [path]",
		Short: "Fix Markdown quirks in the recovery validation report",
		Long:  reportLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args, flags)
		},
	}

	addFixFlags(cmd, &flags.fixFlags)
	cmd.Flags().BoolVar(&flags.hints, "hints", false, "list code fences that are still unlabeled")

	return cmd
}

const reportLongDescription = `Fix Markdown quirks in the recovery validation report.

Line by line, the first matching repair wins:
  - bold pseudo-headings for the three recovery methods become "####" headings
  - bare Frontend and Backend URLs become Markdown links
  - a bare opening fence gets "prisma" before a "- id:" or "- userId:" line,
    or "text" before a POST, GET, PUT or DELETE line
Every other line is written back unchanged.

Examples:
  fixups report                   # Fix MEDBED_CRYPTO_RECOVERY_VALIDATION_REPORT.md
  fixups report docs/REPORT.md    # Fix another copy of the report
  fixups report --dry-run         # Show the diff without writing
  fixups report --hints           # Also list fences left without a language`

func runReport(cmd *cobra.Command, args []string, flags *reportFlags) error {
	sess, err := newSession(cmd, &flags.fixFlags)
	if err != nil {
		return err
	}

	path := targetArg(args, 0, sess.cfg.Targets.Report)

	outcome, err := sess.fix("report", path, fixup.FixReport, fixup.ReportSuccessMessage)
	if err != nil {
		return err
	}

	if !flags.hints {
		return nil
	}

	logger := logging.FromContext(sess.ctx)
	for _, fence := range fences.Unlabeled(outcome.Content) {
		preview, _, _ := strings.Cut(strings.TrimSpace(string(fence.Body)), "\n")
		logger.Debug("unlabeled fence",
			logging.FieldLine, fence.Line,
			logging.FieldSuggestion, fence.Suggestion,
		)
		sess.printer.Hint(path, fence.Line, fence.Suggestion, preview)
	}

	return nil
}
