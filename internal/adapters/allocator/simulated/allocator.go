// Package simulated provisions fake phone lines. Nothing leaves the process:
// the latency is a timer and the digits come from a pseudo-random source.
package simulated

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/bnema/sms-temp/internal/domain"
	"github.com/bnema/sms-temp/internal/ports"
	"github.com/google/uuid"
)

const (
	DefaultLatency    = 2 * time.Second
	DefaultTimeLayout = "15:04"

	SystemSender = "System"
	ReadyBody    = "Secure encryption active. Line ready for verifications."

	minSubscriber = 100_000_000
	maxSubscriber = 999_999_999
)

type Allocator struct {
	clock   ports.Clock
	latency time.Duration
	layout  string
	newID   func() (string, error)

	mu  sync.Mutex
	rng *rand.Rand
}

var _ ports.Allocator = (*Allocator)(nil)

type Option func(*Allocator)

func WithLatency(latency time.Duration) Option {
	return func(a *Allocator) {
		if latency > 0 {
			a.latency = latency
		}
	}
}

func WithTimeLayout(layout string) Option {
	return func(a *Allocator) {
		if layout != "" {
			a.layout = layout
		}
	}
}

func WithRand(rng *rand.Rand) Option {
	return func(a *Allocator) {
		if rng != nil {
			a.rng = rng
		}
	}
}

func WithIDGenerator(newID func() (string, error)) Option {
	return func(a *Allocator) {
		if newID != nil {
			a.newID = newID
		}
	}
}

func NewAllocator(clock ports.Clock, opts ...Option) *Allocator {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	a := &Allocator{
		clock:   clock,
		latency: DefaultLatency,
		layout:  DefaultTimeLayout,
		newID:   newMessageID,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

func (a *Allocator) Latency() time.Duration {
	return a.latency
}

func (a *Allocator) Allocate(scheduler ports.Scheduler, region domain.Region, done func(domain.Allocation, error)) ports.Timer {
	return scheduler.AfterFunc(a.latency, func() {
		done(a.provision(region))
	})
}

func (a *Allocator) provision(region domain.Region) (domain.Allocation, error) {
	dialCode := strings.TrimSpace(region.DialCode)
	if dialCode == "" {
		return domain.Allocation{}, fmt.Errorf("region %q has no dial code: %w", region.Name, domain.ErrAllocationFailed)
	}

	id, err := a.newID()
	if err != nil {
		return domain.Allocation{}, fmt.Errorf("generate message id: %w: %w", domain.ErrAllocationFailed, err)
	}

	return domain.Allocation{
		Number: domain.ActiveNumber{
			Flag:     region.Flag,
			DialCode: dialCode,
			Number:   FormatNumber(dialCode, a.drawSubscriber()),
		},
		Message: domain.Message{
			ID:     id,
			Sender: SystemSender,
			Body:   ReadyBody,
			Time:   a.clock.Now().Format(a.layout),
		},
	}, nil
}

func (a *Allocator) drawSubscriber() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return minSubscriber + a.rng.IntN(maxSubscriber-minSubscriber+1)
}

// FormatNumber renders a nine digit subscriber number as "<dial> ddd ddd ddd".
func FormatNumber(dialCode string, subscriber int) string {
	digits := fmt.Sprintf("%09d", subscriber%1_000_000_000)
	return fmt.Sprintf("%s %s %s %s", dialCode, digits[0:3], digits[3:6], digits[6:9])
}

// newMessageID returns a UUIDv7, whose leading 48 bits are the Unix
// millisecond timestamp, so ids sort in creation order.
func newMessageID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}

	return id.String(), nil
}
