package application

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/bnema/sms-temp/internal/adapters/allocator/simulated"
	"github.com/bnema/sms-temp/internal/adapters/schedule/manual"
	"github.com/bnema/sms-temp/internal/domain"
	"github.com/bnema/sms-temp/internal/ports"
)

var (
	testStart = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	usa       = domain.Region{Flag: "🇺🇸", DialCode: "+1", Name: "USA"}
	uk        = domain.Region{Flag: "🇬🇧", DialCode: "+44", Name: "UK"}
)

type inMemorySessionStore struct {
	mu        sync.Mutex
	session   *domain.Session
	loadErr   error
	saveErr   error
	savePanic string
	saves     []domain.Session
}

func (s *inMemorySessionStore) Load(context.Context) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loadErr != nil || s.session == nil {
		return domain.DefaultSession(), s.loadErr
	}

	return s.session.Clone(), nil
}

func (s *inMemorySessionStore) Save(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.savePanic != "" {
		panic(s.savePanic)
	}

	s.saves = append(s.saves, session.Clone())
	if s.saveErr != nil {
		return s.saveErr
	}
	stored := session.Clone()
	s.session = &stored

	return nil
}

func (s *inMemorySessionStore) savedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.saves)
}

func (s *inMemorySessionStore) stored() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return domain.DefaultSession()
	}

	return s.session.Clone()
}

type fakeClipboard struct {
	err    error
	copied []string
}

func (f *fakeClipboard) Copy(_ context.Context, text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

type failingAllocator struct{}

func (failingAllocator) Allocate(s ports.Scheduler, _ domain.Region, done func(domain.Allocation, error)) ports.Timer {
	return s.AfterFunc(simulated.DefaultLatency, func() {
		done(domain.Allocation{}, errors.New("gateway timer broke"))
	})
}

type panickingAllocator struct{}

func (panickingAllocator) Allocate(ports.Scheduler, domain.Region, func(domain.Allocation, error)) ports.Timer {
	panic("timer subsystem unavailable")
}

// brokenTimerAllocator schedules fine but its task blows up when it fires.
type brokenTimerAllocator struct{}

func (brokenTimerAllocator) Allocate(s ports.Scheduler, _ domain.Region, _ func(domain.Allocation, error)) ports.Timer {
	return s.AfterFunc(simulated.DefaultLatency, func() {
		panic("timer callback broke")
	})
}

type fixture struct {
	scheduler *manual.Scheduler
	store     *inMemorySessionStore
	clipboard *fakeClipboard
	shell     *Shell
	changes   int
}

func newFixture(t *testing.T, store *inMemorySessionStore, allocator func(*manual.Scheduler) ports.Allocator) *fixture {
	t.Helper()

	if store == nil {
		store = &inMemorySessionStore{}
	}

	f := &fixture{
		scheduler: manual.NewScheduler(testStart),
		store:     store,
		clipboard: &fakeClipboard{},
	}

	var alloc ports.Allocator
	if allocator != nil {
		alloc = allocator(f.scheduler)
	} else {
		alloc = simulated.NewAllocator(f.scheduler, simulated.WithRand(rand.New(rand.NewPCG(7, 11))))
	}

	f.shell = NewShell(context.Background(), ShellConfig{
		Store:     store,
		Allocator: alloc,
		Clipboard: f.clipboard,
		Scheduler: f.scheduler,
		OnChange:  func() { f.changes++ },
	})
	t.Cleanup(f.shell.Close)

	return f
}

func loggedInStore() *inMemorySessionStore {
	session := domain.DefaultSession()
	session.IsLoggedIn = true
	return &inMemorySessionStore{session: &session}
}
