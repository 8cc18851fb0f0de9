package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/one2x-ai/nameversion/internal/config"
	"github.com/one2x-ai/nameversion/internal/debug"
	"github.com/one2x-ai/nameversion/internal/logging"
)

// Version is set at build time with -ldflags.
var Version = "v0.1.0-dev"

func Do(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	rootCmd := &cobra.Command{Use: "nameversion", SilenceUsage: true}
	rootCmd.PersistentFlags().StringP("file", "f", "", "specify an alternate config file (default: nameversion.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error (default: warn)")
	rootCmd.PersistentFlags().String("log-file", "", "also write JSON logs to this file")

	rootCmd.AddCommand(NewCmdInit())
	rootCmd.AddCommand(NewCmdVersion())
	rootCmd.AddCommand(NewCmdParse())
	rootCmd.AddCommand(NewCmdResolve())
	rootCmd.AddCommand(NewCmdPrompt())

	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return 1
	}
	return 0
}

func NewCmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the nameversion version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Version)
		},
	}
}

const initConfig = `version: "1"
log:
  level: info
output:
  format: text
existing:
  - name: existing
    type: file
    path: existing.txt
incoming:
  - name: incoming
    type: file
    path: "-"
`

func NewCmdInit() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty nameversion.yaml settings file",
		RunE: func(cmd *cobra.Command, args []string) error {
			file := "nameversion.yaml"
			if f := cmd.Flag("file"); f != nil && f.Changed {
				file = f.Value.String()
			}
			if _, err := os.Stat(file); err == nil {
				return fmt.Errorf("%s already exists", file)
			} else if !errors.Is(err, os.ErrNotExist) {
				return err
			}
			return os.WriteFile(file, []byte(initConfig), 0644)
		},
	}
}

func addOutputFlags(fs *pflag.FlagSet) {
	fs.String("format", string(config.FormatText), "output format: text, json or yaml")
}

// env is what every command needs after flags are parsed.
type env struct {
	Config config.Config
	// Dir is the directory relative config paths are resolved against.
	Dir    string
	Logger *zap.Logger
	close  func() error
}

// loadEnv reads the config file, if any, and builds the logger. A missing
// config file is only an error when one was named with --file.
func loadEnv(cmd *cobra.Command, needConfig bool) (*env, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	var explicit string
	if f := cmd.Flag("file"); f != nil {
		explicit = f.Value.String()
	}

	e := &env{Config: config.Config{Version: config.VersionOne, Output: config.Output{Format: config.FormatText}}, Dir: wd}
	if needConfig || explicit != "" {
		conf, path, err := config.Load(wd, explicit)
		switch {
		case err == nil:
			e.Config = conf
			e.Dir = filepath.Dir(path)
		case errors.Is(err, config.ErrNoConfig) && explicit == "":
		default:
			return nil, err
		}
	}
	if debug.Debug.DumpConfig {
		debug.Dump(e.Config)
	}

	opts := logging.Options{
		Level:     e.Config.Log.Level,
		File:      e.Config.Log.File,
		MaxSizeMB: e.Config.Log.MaxSizeMB,
		Console:   cmd.ErrOrStderr(),
	}
	// A configured log file is relative to the config file, a flag value
	// to the working directory.
	if opts.File != "" && !filepath.IsAbs(opts.File) {
		opts.File = filepath.Join(e.Dir, opts.File)
	}
	if f := cmd.Flag("log-level"); f != nil && f.Changed {
		opts.Level = f.Value.String()
	}
	if f := cmd.Flag("log-file"); f != nil && f.Changed {
		opts.File = f.Value.String()
		if opts.File != "" {
			if opts.File, err = filepath.Abs(opts.File); err != nil {
				return nil, err
			}
		}
	}
	e.Logger, e.close, err = logging.New(opts)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (e *env) Close() {
	if e.close != nil {
		e.close()
	}
}

// format returns the --format flag when given, the configured format
// otherwise.
func (e *env) format(cmd *cobra.Command) (config.Format, error) {
	format := e.Config.Output.Format
	if f := cmd.Flag("format"); f != nil && f.Changed {
		format = config.Format(f.Value.String())
	}
	switch format {
	case "":
		return config.FormatText, nil
	case config.FormatText, config.FormatJSON, config.FormatYAML:
		return format, nil
	}
	return "", fmt.Errorf("invalid format %q (use 'text', 'json' or 'yaml')", format)
}
