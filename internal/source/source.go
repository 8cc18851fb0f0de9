package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/one2x-ai/nameversion/internal/config"
)

type Loader struct {
	// Stdin is read by file sources whose path is "-".
	Stdin io.Reader
	// Dir is the base for relative file paths.
	Dir    string
	Logger *zap.Logger
}

func (l *Loader) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}

// Load returns the names provided by src.
func (l *Loader) Load(ctx context.Context, src config.Source) ([]string, error) {
	opt, err := config.ParseOption(src.Options)
	if err != nil {
		return nil, err
	}
	switch src.Type {
	case config.SourceText:
		return CleanNames(src.Names), nil
	case config.SourceFile:
		return l.loadFile(src.Path, opt)
	case config.SourceSQL:
		return QuerySQL(ctx, src, opt)
	}
	return nil, fmt.Errorf("unknown source type: %s", src.Type)
}

func (l *Loader) loadFile(path string, opt config.SourceOption) ([]string, error) {
	if path == "-" {
		if l.Stdin == nil {
			return nil, fmt.Errorf("standard input is not available")
		}
		return ParseText(l.Stdin, opt)
	}
	if !filepath.IsAbs(path) && l.Dir != "" {
		path = filepath.Join(l.Dir, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseText(f, opt)
}

// LoadAll concatenates the names of every source in order. A failing source
// does not stop the others; all failures are returned together.
func (l *Loader) LoadAll(ctx context.Context, sources []config.Source) ([]string, error) {
	var names []string
	var merr error
	for i, src := range sources {
		got, err := l.Load(ctx, src)
		if err != nil {
			merr = multierr.Append(merr, fmt.Errorf("source %s: %w", Label(i, src), err))
			continue
		}
		l.logger().Debug("loaded source",
			zap.String("source", Label(i, src)),
			zap.Int("names", len(got)),
		)
		names = append(names, got...)
	}
	return names, merr
}

// Label names a source in messages.
func Label(i int, src config.Source) string {
	if src.Name != "" {
		return src.Name
	}
	switch src.Type {
	case config.SourceFile:
		return fmt.Sprintf("#%d (%s)", i, src.Path)
	case config.SourceSQL:
		return fmt.Sprintf("#%d (%s)", i, src.Engine)
	}
	return fmt.Sprintf("#%d (%s)", i, src.Type)
}
