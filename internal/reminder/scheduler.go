// Package reminder drives the adaptive reminder loop as an explicit state
// machine, so cancellation is provably complete: a single pending timer at
// any time, cancel-before-arm on every transition, and a generation counter
// that makes superseded fires no-ops.
package reminder

import (
	"fmt"
	"sync"
	"time"
)

type State int

const (
	Stopped State = iota
	Scheduled
	Firing
	Snoozed
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Scheduled:
		return "scheduled"
	case Firing:
		return "firing"
	case Snoozed:
		return "snoozed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// StatusSource supplies the reads a fired reminder needs. Implementations
// must never block; all methods are plain store reads.
type StatusSource interface {
	CadenceFactor() (float64, error)
	TodayTotal() (int, error)
	GoalML() (int, error)
}

// Prompt is surfaced to the UI collaborator on every fire. The collaborator
// offers two actions: log a fixed 250 ml event, or snooze. Neither is the
// scheduler's job; it only composes the message and re-arms.
type Prompt struct {
	TodayML int
	GoalML  int
	Percent int
	Message string
}

type timerHandle interface {
	Stop() bool
}

// Scheduler owns one pending timer. Every fired reminder re-arms the next
// one; the chain only stops through Stop.
type Scheduler struct {
	mu       sync.Mutex
	state    State
	interval time.Duration
	timer    timerHandle
	gen      uint64

	source StatusSource
	notify func(Prompt)

	// afterFunc is swapped out by tests.
	afterFunc func(d time.Duration, f func()) timerHandle
}

func New(source StatusSource, notify func(Prompt)) *Scheduler {
	return &Scheduler{
		state:  Stopped,
		source: source,
		notify: notify,
		afterFunc: func(d time.Duration, f func()) timerHandle {
			return time.AfterFunc(d, f)
		},
	}
}

func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Start arms the reminder chain. The delay is the interval divided by the
// predictor's cadence factor, so low adherence shortens the wait. Starting
// while a timer is pending cancels it first.
func (s *Scheduler) Start(intervalMinutes int) error {
	if intervalMinutes < 1 {
		return fmt.Errorf("reminder interval must be >= 1 minute, got %d", intervalMinutes)
	}
	factor, err := s.source.CadenceFactor()
	if err != nil {
		return fmt.Errorf("compute cadence factor: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.interval = time.Duration(intervalMinutes) * time.Minute
	s.arm(time.Duration(float64(s.interval) / factor))
	s.state = Scheduled
	return nil
}

// Snooze re-arms a one-shot timer for the given minutes, bypassing the
// interval and predictor for this one cycle.
func (s *Scheduler) Snooze(minutes int) error {
	if minutes < 1 {
		return fmt.Errorf("snooze must be >= 1 minute, got %d", minutes)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Stopped {
		return fmt.Errorf("cannot snooze: reminders are stopped")
	}
	s.arm(time.Duration(minutes) * time.Minute)
	s.state = Snoozed
	return nil
}

// Stop cancels any pending timer and invalidates in-flight fires. No
// callback runs after Stop returns until Start is called again.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.state = Stopped
}

// arm cancels the pending timer before creating the next one. Callers hold
// s.mu.
func (s *Scheduler) arm(delay time.Duration) {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	gen := s.gen
	s.timer = s.afterFunc(delay, func() { s.fire(gen) })
}

func (s *Scheduler) fire(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.state == Stopped {
		// Superseded by a later Start/Snooze/Stop.
		s.mu.Unlock()
		return
	}
	s.state = Firing
	s.mu.Unlock()

	prompt, err := s.composePrompt()
	if err == nil && s.notify != nil {
		s.notify(prompt)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen || s.state != Firing {
		// Stop or a new Start/Snooze won while the prompt was surfacing.
		return
	}
	factor, ferr := s.source.CadenceFactor()
	if ferr != nil || factor < 1.0 {
		factor = 1.0
	}
	s.arm(time.Duration(float64(s.interval) / factor))
	s.state = Scheduled
}

func (s *Scheduler) composePrompt() (Prompt, error) {
	today, err := s.source.TodayTotal()
	if err != nil {
		return Prompt{}, err
	}
	goal, err := s.source.GoalML()
	if err != nil {
		return Prompt{}, err
	}
	pct := 0
	if goal > 0 {
		pct = int(float64(today) / float64(goal) * 100)
		if pct > 100 {
			pct = 100
		}
	}
	p := Prompt{TodayML: today, GoalML: goal, Percent: pct}
	if pct >= 100 {
		p.Message = "You reached your goal! Great job!"
	} else {
		p.Message = fmt.Sprintf("Time to sip: you're at %d%% of your daily goal.", pct)
	}
	return p, nil
}
