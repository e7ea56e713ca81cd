// Package manual provides a scheduler and clock that only move when told to.
// Due tasks run synchronously on the goroutine calling Advance, in deadline
// order, which makes timer driven state machines deterministic under test.
package manual

import (
	"sort"
	"sync"
	"time"

	"github.com/bnema/sms-temp/internal/ports"
)

type Scheduler struct {
	mu    sync.Mutex
	now   time.Time
	seq   int
	tasks []*task
}

type task struct {
	scheduler *Scheduler
	due       time.Time
	seq       int
	fn        func()
	stopped   bool
	fired     bool
}

var (
	_ ports.Scheduler = (*Scheduler)(nil)
	_ ports.Clock     = (*Scheduler)(nil)
)

func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{now: start}
}

func (s *Scheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.now
}

func (s *Scheduler) AfterFunc(d time.Duration, f func()) ports.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	t := &task{scheduler: s, due: s.now.Add(d), seq: s.seq, fn: f}
	s.tasks = append(s.tasks, t)

	return t
}

// Advance moves the clock forward by d and runs every task that falls due,
// including tasks scheduled by tasks run during this call.
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now.Add(d)
	s.mu.Unlock()

	for {
		next := s.popDue(target)
		if next == nil {
			break
		}
		next.fn()
	}

	s.mu.Lock()
	s.now = target
	s.mu.Unlock()
}

// Pending reports how many tasks are armed and not yet run or stopped.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.tasks)
}

func (s *Scheduler) popDue(target time.Time) *task {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.tasks) == 0 {
		return nil
	}

	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].due.Equal(s.tasks[j].due) {
			return s.tasks[i].seq < s.tasks[j].seq
		}
		return s.tasks[i].due.Before(s.tasks[j].due)
	})

	head := s.tasks[0]
	if head.due.After(target) {
		return nil
	}

	s.tasks = s.tasks[1:]
	head.fired = true
	if head.due.After(s.now) {
		s.now = head.due
	}

	return head
}

func (t *task) Stop() bool {
	s := t.scheduler
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true

	for i, candidate := range s.tasks {
		if candidate == t {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}

	return true
}
