package scheduler

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Scheduler runs one-shot actions after a fixed delay. Callers get no handle
// back: an armed action either fires once or is dropped by Stop.
type Scheduler struct {
	logs  *zap.SugaredLogger
	delay time.Duration

	mu      sync.Mutex
	timers  map[*time.Timer]string
	stopped bool
}

func New(logger *zap.SugaredLogger, delay time.Duration) *Scheduler {
	return &Scheduler{
		logs:   logger,
		delay:  delay,
		timers: make(map[*time.Timer]string),
	}
}

// Schedule arms action to run once after the configured delay. key only
// identifies the action in logs.
func (s *Scheduler) Schedule(key string, action func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		s.logs.Warnw("scheduler stopped, dropping action", "key", key)
		return
	}

	var timer *time.Timer
	timer = time.AfterFunc(s.delay, func() {
		s.mu.Lock()
		delete(s.timers, timer)
		s.mu.Unlock()

		action()
	})
	s.timers[timer] = key
}

// Pending returns the number of armed actions that have not fired yet.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Delay is the interval between Schedule and the action running.
func (s *Scheduler) Delay() time.Duration {
	return s.delay
}

// Stop drops every pending action. Actions already running are not waited for.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	for timer, key := range s.timers {
		if timer.Stop() {
			s.logs.Debugw("pending action dropped", "key", key)
		}
		delete(s.timers, timer)
	}
}
