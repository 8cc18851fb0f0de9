package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/one2x-ai/nameversion/internal/naming"
	"github.com/one2x-ai/nameversion/internal/source"
)

func NewCmdPrompt() *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Ask for existing and new names interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, false)
			if err != nil {
				return err
			}
			defer e.Close()

			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Enter existing file names (comma-separated):")
			existing, err := readLine(in)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "Enter new file names (comma-separated):")
			incoming, err := readLine(in)
			if err != nil {
				return err
			}

			results, nameErr := naming.ProcessNames(
				source.SplitNames(existing, ","),
				source.SplitNames(incoming, ","),
			)
			fmt.Fprintln(out, "\nProcessed names:")
			for _, r := range results {
				if r.Err != nil {
					e.Logger.Error("name not resolved", zap.String("input", r.Input), zap.Error(r.Err))
					continue
				}
				fmt.Fprintln(out, r.Resolved)
			}
			return nameErr
		},
	}
}

// readLine returns the next line without its terminator. End of input is
// an empty line.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
