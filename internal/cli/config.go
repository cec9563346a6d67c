package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration as YAML",
		Long: `Print the configuration the fix commands would use, after the config file
and FIXUPS_* environment variables have been applied.

The output is a valid .fixups.yml and can be saved as a starting point.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := newSession(cmd, &fixFlags{})
			if err != nil {
				return err
			}

			content, err := sess.cfg.ToYAML()
			if err != nil {
				return fmt.Errorf("render config: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(content)
			return err
		},
	}
}
