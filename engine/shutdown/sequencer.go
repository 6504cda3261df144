package shutdown

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// StepFunc is one teardown action. It receives the quit message so steps
// can behave differently on error exits.
type StepFunc func(msg Message) error

type step struct {
	name string
	fn   StepFunc
}

// Alerter shows the final message to the player.
type Alerter interface {
	Alert(title, text string) error
}

// Sequencer runs teardown steps in the order they were added. A failing
// step is logged and the sequence goes on; all failures are returned
// together.
type Sequencer struct {
	steps  []step
	logger *log.Logger
}

func NewSequencer(logger *log.Logger) *Sequencer {
	if logger == nil {
		logger = log.Default()
	}
	return &Sequencer{logger: logger}
}

func (q *Sequencer) Add(name string, fn StepFunc) *Sequencer {
	q.steps = append(q.steps, step{name: name, fn: fn})
	return q
}

// AddFunc adds a step that does not need the quit message.
func (q *Sequencer) AddFunc(name string, fn func() error) *Sequencer {
	return q.Add(name, func(Message) error { return fn() })
}

// Steps returns the step names in run order.
func (q *Sequencer) Steps() []string {
	names := make([]string, len(q.steps))
	for i, s := range q.steps {
		names[i] = s.name
	}
	return names
}

func (q *Sequencer) Run(msg Message) error {
	var errs []error
	for _, s := range q.steps {
		if err := q.run(s, msg); err != nil {
			q.logger.Printf("[shutdown] %s: %v", s.name, err)
			errs = append(errs, fmt.Errorf("%s: %w", s.name, err))
		}
	}
	q.logger.Printf("[shutdown] engine has shut down (%s)", msg.Kind)
	return errors.Join(errs...)
}

func (q *Sequencer) run(s step, msg Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return s.fn(msg)
}

// AlertStep shows msg.Alert through a when the exit was not normal.
func AlertStep(a Alerter, title string) StepFunc {
	return func(msg Message) error {
		if msg.Kind == KindNormal || msg.Alert == "" || a == nil {
			return nil
		}
		return a.Alert(title, msg.Alert)
	}
}

// TempPattern matches the temporary files the engine leaves in its temp dir.
const TempPattern = "~ac*.tmp"

// DeleteTempFiles removes every TempPattern file in dir and returns how many
// were removed.
func DeleteTempFiles(dir string) (int, error) {
	matches, err := filepath.Glob(filepath.Join(dir, TempPattern))
	if err != nil {
		return 0, err
	}
	var errs []error
	n := 0
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			errs = append(errs, err)
			continue
		}
		n++
	}
	return n, errors.Join(errs...)
}
