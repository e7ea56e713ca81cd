package application

import (
	"sync"
	"time"

	"github.com/bnema/sms-temp/internal/domain"
	"github.com/bnema/sms-temp/internal/ports"
)

const DefaultSplashDuration = 2200 * time.Millisecond

// BootSequencer moves from splash to the gate once, after a fixed delay.
type BootSequencer struct {
	scheduler ports.Scheduler
	duration  time.Duration
	onChange  func()

	mu      sync.Mutex
	state   domain.BootState
	started bool
	timer   ports.Timer
}

func NewBootSequencer(scheduler ports.Scheduler, duration time.Duration, onChange func()) *BootSequencer {
	if duration <= 0 {
		duration = DefaultSplashDuration
	}

	return &BootSequencer{scheduler: scheduler, duration: duration, onChange: onChange, state: domain.BootSplash}
}

func (b *BootSequencer) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.started {
		return
	}
	b.started = true
	b.timer = b.scheduler.AfterFunc(b.duration, b.expire)
}

func (b *BootSequencer) State() domain.BootState {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.state
}

// Stop tears the sequencer down. A pending splash timer is cancelled and the
// sequencer stays where it is.
func (b *BootSequencer) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

func (b *BootSequencer) expire() {
	b.mu.Lock()
	if b.state == domain.BootGate || b.timer == nil {
		b.mu.Unlock()
		return
	}
	b.state = domain.BootGate
	b.timer = nil
	b.mu.Unlock()

	if b.onChange != nil {
		b.onChange()
	}
}
