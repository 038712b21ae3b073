package script

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/comalice/listx"
	"github.com/comalice/listx/pkg/logger"
)

// copyFill pre-fills copy_to buffers so untouched slots are visible.
const copyFill = "_"

// Result records the outcome of one step.
type Result struct {
	Step   int    `json:"step"`
	Op     string `json:"op"`
	Output string `json:"output,omitempty"`
	Err    string `json:"error,omitempty"`
}

// Report is the outcome of a script run.
type Report struct {
	Name    string   `json:"name"`
	Results []Result `json:"results"`
	Final   []string `json:"final"`
	Version uint64   `json:"version"`
}

// Failed returns the results whose step returned an error.
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Err != "" {
			out = append(out, res)
		}
	}
	return out
}

// Run replays s against a fresh list built from s.Seed. Step errors are
// recorded in the report; Run itself fails only on cancellation or, with
// StopOnError, on the first failing step. A nil lggr discards log output.
func Run(ctx context.Context, s *Script, lggr logger.Logger) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if lggr == nil {
		lggr = logger.Nop()
	}
	lggr = lggr.Named("script").With("script", s.Name)
	l := listx.From(s.Seed, listx.WithName(s.Name), listx.WithLogger(lggr))
	rep := &Report{Name: s.Name}

	lggr.Infow("Running script", "seed", len(s.Seed), "steps", len(s.Steps))
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return rep, fmt.Errorf("step %d: %w", i, err)
		}

		out, err := exec(l, st)
		res := Result{Step: i, Op: st.Op, Output: out}
		if err != nil {
			res.Err = err.Error()
			lggr.Warnw("Step failed", "step", i, "op", st.Op, "err", err)
		}
		rep.Results = append(rep.Results, res)

		if err != nil && s.StopOnError {
			rep.finish(l)
			return rep, fmt.Errorf("step %d (%s): %w", i, st.Op, err)
		}
	}
	rep.finish(l)
	lggr.Infow("Script finished", "len", l.Len(), "failed", len(rep.Failed()))

	return rep, nil
}

func (r *Report) finish(l *listx.List[string]) {
	r.Final = l.Slice()
	r.Version = l.Version()
}

func exec(l *listx.List[string], st Step) (string, error) {
	index := func() int {
		if st.Index == nil {
			return 0
		}
		return *st.Index
	}

	switch st.Op {
	case OpAdd:
		l.Add(st.Value)
		return "", nil
	case OpInsert:
		return "", l.Insert(index(), st.Value)
	case OpSet:
		return "", l.Set(index(), st.Value)
	case OpAt:
		return l.At(index())
	case OpRemove:
		return strconv.FormatBool(l.Remove(st.Value)), nil
	case OpRemoveAt:
		return "", l.RemoveAt(index())
	case OpContains:
		return strconv.FormatBool(l.Contains(st.Value)), nil
	case OpIndexOf:
		return strconv.Itoa(l.IndexOf(st.Value)), nil
	case OpClear:
		l.Clear()
		return "", nil
	case OpCopyTo:
		return copyTo(l, st)
	case OpIterate:
		return iterate(l, st)
	case OpLen:
		return strconv.Itoa(l.Len()), nil
	default:
		return "", fmt.Errorf("unknown op %q", st.Op)
	}
}

func copyTo(l *listx.List[string], st Step) (string, error) {
	var dst []string
	if !st.Nil {
		dst = make([]string, max(st.Size, 0))
		for i := range dst {
			dst[i] = copyFill
		}
	}
	if err := l.CopyTo(dst, st.Offset); err != nil {
		return "", err
	}
	return "[" + strings.Join(dst, " ") + "]", nil
}

// iterate drains a fresh iterator. With a then step, it advances once, runs
// the nested step and reports the next advance's outcome.
func iterate(l *listx.List[string], st Step) (string, error) {
	it := l.Iterate()
	defer it.Close()

	var seen []string
	if st.Then != nil {
		v, ok, err := it.Next()
		if err != nil {
			return "", err
		}
		if ok {
			seen = append(seen, v)
		}
		if _, err := exec(l, *st.Then); err != nil {
			return strings.Join(seen, " "), fmt.Errorf("then %s: %w", st.Then.Op, err)
		}
	}
	for {
		v, ok, err := it.Next()
		if err != nil {
			return strings.Join(seen, " "), err
		}
		if !ok {
			return strings.Join(seen, " "), nil
		}
		seen = append(seen, v)
	}
}
