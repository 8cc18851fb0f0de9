// Package batch loads the configured name sources and resolves every
// incoming name against the existing ones.
package batch

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/one2x-ai/nameversion/internal/config"
	"github.com/one2x-ai/nameversion/internal/debug"
	"github.com/one2x-ai/nameversion/internal/naming"
	"github.com/one2x-ai/nameversion/internal/source"
)

var ErrNoIncoming = errors.New("no incoming names")

// Job lists where names come from. Names given directly are appended after
// the names read from sources.
type Job struct {
	Existing      []config.Source
	Incoming      []config.Source
	ExistingNames []string
	IncomingNames []string
}

type Report struct {
	Existing int
	Results  []naming.Result
	Renamed  int
	Failed   int
}

type Runner struct {
	Loader *source.Loader
	Logger *zap.Logger
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// Run loads the job's names and resolves them. A source error aborts the run
// and no report is returned. Names that fail to resolve are recorded in the
// report and their errors are returned together with it.
func (r *Runner) Run(ctx context.Context, job Job) (*Report, error) {
	log := r.logger()

	existing, err := r.Loader.LoadAll(ctx, job.Existing)
	if err != nil {
		return nil, fmt.Errorf("load existing names: %w", err)
	}
	existing = append(existing, job.ExistingNames...)

	incoming, err := r.Loader.LoadAll(ctx, job.Incoming)
	if err != nil {
		return nil, fmt.Errorf("load incoming names: %w", err)
	}
	incoming = append(incoming, job.IncomingNames...)
	if len(incoming) == 0 {
		return nil, ErrNoIncoming
	}
	log.Debug("names loaded",
		zap.Int("existing", len(existing)),
		zap.Int("incoming", len(incoming)),
	)

	results, nameErr := naming.ProcessNames(existing, incoming)
	if debug.Debug.DumpParse {
		debug.Dump(results)
	}

	rep := &Report{Existing: len(existing), Results: results}
	for _, res := range results {
		switch {
		case res.Err != nil:
			rep.Failed++
			log.Warn("name not resolved", zap.String("input", res.Input), zap.Error(res.Err))
		case res.Changed():
			rep.Renamed++
			log.Debug("name versioned",
				zap.String("input", res.Parsed.Original),
				zap.String("resolved", res.Resolved),
			)
		}
	}
	log.Info("names resolved",
		zap.Int("incoming", len(results)),
		zap.Int("renamed", rep.Renamed),
		zap.Int("failed", rep.Failed),
	)
	return rep, nameErr
}
