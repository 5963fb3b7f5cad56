package demo

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/kode4food/timeline"
)

type (
	// Runner executes Scripts against a Timeline it owns, writing a plain
	// text report of every result
	Runner struct {
		tl     *timeline.Timeline[int64, string]
		out    *report
		logger *zap.Logger
	}

	// report remembers the first write error so the runner can check once
	// per step instead of after every line
	report struct {
		w   io.Writer
		err error
	}
)

// NewRunner creates a Runner whose Timeline is built from cfg
func NewRunner(out io.Writer, cfg timeline.Config) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		tl:     timeline.NewTimeline[int64, string](cfg),
		out:    &report{w: out},
		logger: logger.Named("demo"),
	}
}

// Timeline exposes the Runner's Timeline for inspection
func (r *Runner) Timeline() *timeline.Timeline[int64, string] {
	return r.tl
}

// Run executes every Step of s in order. It stops at the first Step that
// fails
func (r *Runner) Run(s *Script) error {
	r.out.printf("=== %s ===\n\n", s.Name)
	for i, step := range s.Steps {
		r.logger.Debug("running step",
			zap.Int("step", i+1),
			zap.String("title", step.Title),
		)
		if err := r.runStep(step); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Title, err)
		}
		if r.out.err != nil {
			return r.out.err
		}
	}
	return nil
}

func (r *Runner) runStep(step Step) error {
	if step.Title != "" {
		r.out.printf("%s\n", step.Title)
	}
	if step.Clear {
		r.tl.Clear()
		r.out.printf("Cleared\n")
	}
	for _, sp := range step.Insert {
		if err := r.insert(sp); err != nil {
			return err
		}
	}
	if step.Remove != "" {
		r.remove(step.Remove)
	}
	for _, at := range step.At {
		r.eventAt(at)
	}
	if step.Range != nil {
		if err := r.eventsInRange(*step.Range); err != nil {
			return err
		}
	}
	if step.Print {
		r.out.printf("%s", r.tl)
	}
	if step.Validate {
		r.out.printf("Valid: %t\n", r.tl.Validate())
	}
	r.out.printf("\n")
	return nil
}

func (r *Runner) insert(sp Span) error {
	ev, err := timeline.NewEvent(sp.Start, sp.End, sp.Label)
	if err != nil {
		return err
	}
	affected, err := r.tl.Insert(ev)
	if err != nil {
		return err
	}
	r.out.printf("Inserted %s, affected events: %v\n", ev, affected)
	return nil
}

func (r *Runner) remove(label string) {
	for _, ev := range r.tl.Events() {
		if ev.Payload() == label {
			r.out.printf("Removed %s: %t\n", ev, r.tl.Remove(ev))
			return
		}
	}
	r.out.printf("No event labelled %q\n", label)
}

func (r *Runner) eventAt(at int64) {
	if ev, ok := r.tl.EventAt(at); ok {
		r.out.printf("  Time %d: %s\n", at, ev.Payload())
		return
	}
	r.out.printf("  Time %d: No event\n", at)
}

func (r *Runner) eventsInRange(sp Span) error {
	evs, err := r.tl.EventsInRange(sp.Start, sp.End)
	if err != nil {
		return err
	}
	for _, ev := range evs {
		r.out.printf("  %s\n", ev)
	}
	return nil
}

func (r *report) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}
