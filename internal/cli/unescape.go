package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/fixups/pkg/fixup"
)

func newUnescapeCommand() *cobra.Command {
	flags := &fixFlags{}

	cmd := &cobra.Command{
		Use:   "unescape [path]",
		Short: "Remove escaped quotes from the appointment booking page",
		Long: `Remove backslash-escaped quotes from the date and time inputs of the
appointment booking page (frontend/src/app/medbeds/book/page.tsx).

The page is treated as opaque text: only the two escaped attribute runs are
replaced, everything else is written back byte for byte. A page that has
neither run is left untouched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(cmd, flags)
			if err != nil {
				return err
			}

			path := targetArg(args, 0, sess.cfg.Targets.Quotes)
			_, err = sess.fix("unescape", path, fixup.UnescapeQuotes, fixup.QuotesSuccessMessage)
			return err
		},
	}

	addFixFlags(cmd, flags)

	return cmd
}
