package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/one2x-ai/nameversion/internal/batch"
	"github.com/one2x-ai/nameversion/internal/config"
	"github.com/one2x-ai/nameversion/internal/output"
	"github.com/one2x-ai/nameversion/internal/source"
)

func NewCmdResolve() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve incoming names against existing names",
		Long: `Resolve prints one name per incoming name, in order. A name that is
already taken, ignoring case, gets the next free "(vN)" suffix.

Names come from the config file sources and from the flags below. Flag
values are comma-separated; a file path of "-" reads standard input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd, true)
			if err != nil {
				return err
			}
			defer e.Close()
			format, err := e.format(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			existing, _ := flags.GetStringArray("existing")
			incoming, _ := flags.GetStringArray("incoming")
			existingFiles, _ := flags.GetStringArray("existing-file")
			incomingFiles, _ := flags.GetStringArray("incoming-file")
			explain, _ := flags.GetBool("explain")
			explain = explain || e.Config.Output.Explain

			job := batch.Job{
				Existing:      e.Config.Existing,
				Incoming:      e.Config.Incoming,
				ExistingNames: splitAll(existing),
				IncomingNames: splitAll(incoming),
			}
			fromFlags, err := fileSources(existingFiles)
			if err != nil {
				return err
			}
			job.Existing = append(job.Existing, fromFlags...)
			fromFlags, err = fileSources(incomingFiles)
			if err != nil {
				return err
			}
			job.Incoming = append(job.Incoming, fromFlags...)
			if err := checkStdin(job); err != nil {
				return err
			}

			r := &batch.Runner{
				Loader: &source.Loader{
					Stdin:  cmd.InOrStdin(),
					Dir:    e.Dir,
					Logger: e.Logger,
				},
				Logger: e.Logger,
			}
			rep, err := r.Run(cmd.Context(), job)
			if rep == nil {
				return err
			}
			if werr := output.Results(cmd.OutOrStdout(), format, explain, rep.Results); werr != nil {
				return werr
			}
			if explain && format == config.FormatText {
				fmt.Fprintln(cmd.ErrOrStderr(), output.Summary(len(rep.Results)-rep.Failed, rep.Renamed, rep.Failed))
			}
			return err
		},
	}
	flags := cmd.Flags()
	flags.StringArray("existing", nil, "comma-separated names that are already taken")
	flags.StringArray("incoming", nil, "comma-separated names to add")
	flags.StringArray("existing-file", nil, "file listing names that are already taken")
	flags.StringArray("incoming-file", nil, "file listing names to add")
	flags.Bool("explain", false, "show base name, version and outcome for every name")
	addOutputFlags(flags)
	return cmd
}

func splitAll(values []string) []string {
	var names []string
	for _, v := range values {
		names = append(names, source.SplitNames(v, ",")...)
	}
	return names
}

// fileSources turns file flags into sources. Paths are made absolute since
// relative config paths resolve against the config file's directory.
func fileSources(paths []string) ([]config.Source, error) {
	var srcs []config.Source
	for _, p := range paths {
		if p != "-" {
			abs, err := filepath.Abs(p)
			if err != nil {
				return nil, err
			}
			p = abs
		}
		srcs = append(srcs, config.Source{Type: config.SourceFile, Path: p})
	}
	return srcs, nil
}

func checkStdin(job batch.Job) error {
	n := 0
	for _, srcs := range [][]config.Source{job.Existing, job.Incoming} {
		for _, src := range srcs {
			if src.Type == config.SourceFile && src.Path == "-" {
				n++
			}
		}
	}
	if n > 1 {
		return fmt.Errorf("standard input can only be read by one source")
	}
	return nil
}
