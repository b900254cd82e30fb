package runner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"linklist/options"
	"linklist/parallel"
	"linklist/script"
	"linklist/stats"
	"linklist/util"
	"log"
	"strings"

	"github.com/gobwas/glob"
)

type replayer struct {
	kind   Kind
	target target
	opts   *options.Options
	stats  *stats.RunStats
	out    io.Writer
}

// Run replays the configured script on every selected list kind and writes
// each kind's output section to out, in Kinds order.
func Run(opts *options.Options, out io.Writer) (*stats.RunStats, error) {
	ops, err := loadOps(opts)
	if err != nil {
		return nil, err
	}

	patterns, err := compileGlobs(opts.KindPatterns)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_PATTERN,
			InternalError: fmt.Errorf("failed to compile kind patterns '%v': %v", opts.KindPatterns, err),
		}
	}
	kinds := SelectKinds(patterns)
	if len(kinds) == 0 {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_NO_KINDS,
			InternalError: fmt.Errorf("no list kind matches patterns '%v'", opts.KindPatterns),
		}
	}

	log.Printf("replaying %v operations on %v", ops.Len(), kinds)

	queue := parallel.CreateJobQueue(len(kinds), opts.Workers)
	defer queue.Close()

	outputs := make([]bytes.Buffer, len(kinds))
	results := make([]*stats.RunStats, len(kinds))
	for i, kind := range kinds {
		err = queue.Add(func() error {
			rep, err := newReplayer(kind, opts, &outputs[i])
			if err != nil {
				return err
			}
			results[i] = rep.stats
			return rep.replay(ops)
		})
		if err != nil {
			return nil, err
		}
	}
	err = queue.Wait()
	if err != nil {
		return nil, err
	}

	runStats := stats.NewRunStats()
	for i, kind := range kinds {
		_, err = fmt.Fprintf(out, "== %v\n", kind)
		if err != nil {
			return nil, fmt.Errorf("failed to write output: %w", err)
		}
		_, err = outputs[i].WriteTo(out)
		if err != nil {
			return nil, fmt.Errorf("failed to write output: %w", err)
		}
		runStats.Merge(results[i])
	}

	if len(opts.StatsPath) > 0 {
		err = runStats.WriteFile(opts.StatsPath)
		if err != nil {
			return nil, &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_STATS_PATH,
				InternalError: err,
			}
		}
	}

	log.Printf("replayed %v operations across %v list kinds", runStats.TotalOperations, len(kinds))
	return runStats, nil
}

func loadOps(opts *options.Options) (*util.List[script.Op], error) {
	if len(opts.ScriptPath) > 0 {
		return script.Load(opts.ScriptPath)
	}
	return script.Parse(opts.InlineOps)
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		if len(pattern) == 0 {
			continue
		}
		compiled, err := glob.Compile(strings.ToLower(pattern))
		if err != nil {
			return nil, err
		}
		globs = append(globs, compiled)
	}
	return globs, nil
}

// SelectKinds returns the kinds matching any pattern, or all kinds when
// there are no patterns.
func SelectKinds(patterns []glob.Glob) []Kind {
	if len(patterns) == 0 {
		return Kinds
	}
	selected := make([]Kind, 0, len(Kinds))
	for _, kind := range Kinds {
		for _, pattern := range patterns {
			if pattern.Match(string(kind)) {
				selected = append(selected, kind)
				break
			}
		}
	}
	return selected
}

func newReplayer(kind Kind, opts *options.Options, out io.Writer) (*replayer, error) {
	t, err := newTarget(kind)
	if err != nil {
		return nil, err
	}
	return &replayer{
		kind:   kind,
		target: t,
		opts:   opts,
		stats:  stats.NewRunStats(),
		out:    out,
	}, nil
}

func (rep *replayer) verboseLog(format string, v ...interface{}) {
	if rep.opts.VerboseLogging {
		log.Printf(format, v...)
	}
}

func (rep *replayer) replay(ops *util.List[script.Op]) error {
	kind := string(rep.kind)
	for op := range ops.All() {
		err := rep.apply(op)
		if errors.Is(err, errUnsupported) {
			if rep.opts.Strict {
				return &util.ErrorWithCode{
					StatusCode:    util.ERROR_UNSUPPORTED_OPERATION,
					InternalError: fmt.Errorf("line %v: operation '%v' is not supported by %v lists", op.Line, op.Name, kind),
				}
			}
			rep.verboseLog("--- %v: skipping '%v' - not supported", kind, op)
			rep.stats.AddUnsupported(kind)
			continue
		}
		if err != nil {
			return fmt.Errorf("%v: failed to apply '%v' at line %v: %w", kind, op, op.Line, err)
		}
	}

	_, err := fmt.Fprintln(rep.out, "> final")
	if err == nil {
		err = rep.target.render(rep.out)
	}
	if err != nil {
		return fmt.Errorf("%v: failed to render final state: %w", kind, err)
	}
	rep.stats.SetFinalSize(kind, rep.target.Len())
	return nil
}

func (rep *replayer) apply(op script.Op) error {
	kind := string(rep.kind)
	switch op.Name {
	case script.Traverse, script.TraverseRev:
		render := rep.target.render
		if op.Name == script.TraverseRev {
			render = rep.target.renderReverse
		}
		var section bytes.Buffer
		err := render(&section)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(rep.out, "> %v\n%s", op.Name, section.Bytes())
		if err != nil {
			return err
		}
		rep.stats.AddTraversal(kind)
		return nil
	}

	outcome, err := rep.target.mutate(op)
	if err != nil {
		return err
	}
	rep.stats.AddOutcome(kind, outcome)
	rep.verboseLog("+++ %v: '%v' %v -> %v", kind, op, outcome, rep.target)
	return nil
}
