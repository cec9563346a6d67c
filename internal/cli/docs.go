package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/fixups/pkg/fixup"
)

func newDocsCommand() *cobra.Command {
	flags := &fixFlags{}

	cmd := &cobra.Command{
		Use:   "docs [knowledge-base [support-guide]]",
		Short: "Fix Markdown lint issues in the knowledge base and support guide",
		Long: `Fix Markdown lint issues in AI_KNOWLEDGE_BASE.md and SUPPORT_STAFF_TRAINING.md.

Knowledge base: the trailing italic update note becomes a bold note after a rule.

Support guide: the welcome heading loses its exclamation mark, bare quick-link
URLs and support addresses are wrapped in angle brackets, and the closing bold
paragraph becomes a rule followed by the closing text.

The files are processed one after the other; a failure on the first stops the run.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd, flags)
			if err != nil {
				return err
			}

			kbPath := targetArg(args, 0, sess.cfg.Targets.KnowledgeBase)
			if _, err := sess.fix("docs", kbPath, fixup.FixKnowledgeBase, fixup.KnowledgeBaseSuccessMessage); err != nil {
				return err
			}

			guidePath := targetArg(args, 1, sess.cfg.Targets.SupportGuide)
			_, err = sess.fix("docs", guidePath, fixup.FixSupportGuide, fixup.SupportGuideSuccessMessage)
			return err
		},
	}

	addFixFlags(cmd, flags)

	return cmd
}
