package application

import (
	"sync"
	"time"

	"github.com/bnema/sms-temp/internal/domain"
	"github.com/bnema/sms-temp/internal/ports"
)

const DefaultToastDuration = 3 * time.Second

// ToastQueue holds a single notification. A newer toast replaces the current
// one and restarts the dismissal timer; nothing is queued. Once stopped it
// ignores new toasts, so no timer outlives the owner.
type ToastQueue struct {
	scheduler ports.Scheduler
	duration  time.Duration
	onChange  func()

	mu         sync.Mutex
	current    *domain.Toast
	timer      ports.Timer
	generation uint64
	stopped    bool
}

func NewToastQueue(scheduler ports.Scheduler, duration time.Duration, onChange func()) *ToastQueue {
	if duration <= 0 {
		duration = DefaultToastDuration
	}

	return &ToastQueue{scheduler: scheduler, duration: duration, onChange: onChange}
}

func (q *ToastQueue) ShowSuccess(message string) {
	q.Show(message, domain.ToastSuccess)
}

func (q *ToastQueue) ShowError(message string) {
	q.Show(message, domain.ToastError)
}

func (q *ToastQueue) Show(message string, kind domain.ToastKind) {
	if kind == "" {
		kind = domain.ToastSuccess
	}

	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return
	}
	q.stopLocked()
	q.generation++
	generation := q.generation
	q.current = &domain.Toast{Message: message, Kind: kind}
	q.timer = q.scheduler.AfterFunc(q.duration, func() {
		q.expire(generation)
	})
	q.mu.Unlock()

	q.notify()
}

func (q *ToastQueue) Current() (domain.Toast, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.current == nil {
		return domain.Toast{}, false
	}

	return *q.current, true
}

// Dismiss hides the visible toast early.
func (q *ToastQueue) Dismiss() {
	q.mu.Lock()
	if q.current == nil {
		q.mu.Unlock()
		return
	}
	q.stopLocked()
	q.generation++
	q.current = nil
	q.mu.Unlock()

	q.notify()
}

// Stop cancels any pending dismissal without touching the slot. Later calls
// to Show are ignored.
func (q *ToastQueue) Stop() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.stopped = true
	q.stopLocked()
	q.generation++
}

func (q *ToastQueue) expire(generation uint64) {
	q.mu.Lock()
	if generation != q.generation {
		q.mu.Unlock()
		return
	}
	q.current = nil
	q.timer = nil
	q.mu.Unlock()

	q.notify()
}

func (q *ToastQueue) stopLocked() {
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
}

func (q *ToastQueue) notify() {
	if q.onChange != nil {
		q.onChange()
	}
}
