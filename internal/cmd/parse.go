package cmd

import (
	"github.com/spf13/cobra"

	"github.com/one2x-ai/nameversion/internal/naming"
	"github.com/one2x-ai/nameversion/internal/output"
)

func NewCmdParse() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse NAME...",
		Short: "Show the base name and version of each name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, false)
			if err != nil {
				return err
			}
			defer e.Close()
			format, err := e.format(cmd)
			if err != nil {
				return err
			}
			parsed := make([]output.ParsedInput, 0, len(args))
			var failed error
			for _, arg := range args {
				p, err := naming.ParseName(arg)
				if err != nil && failed == nil {
					failed = err
				}
				parsed = append(parsed, output.ParsedInput{Input: arg, Parsed: p, Err: err})
			}
			if err := output.Parsed(cmd.OutOrStdout(), format, parsed); err != nil {
				return err
			}
			return failed
		},
	}
	addOutputFlags(cmd.Flags())
	return cmd
}
