package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/bnema/sms-temp/internal/domain"
	"github.com/bnema/sms-temp/internal/ports"
)

const (
	ToastSessionStarted  = "Secure Session Started"
	ToastLineActivated   = "Line Activated"
	ToastAllocationError = "Allocation Failed"
	ToastCopied          = "Copied to Clipboard"
	ToastCopyFailed      = "Copy Failed"
	ToastNoActiveLine    = "No Active Line"
)

type SessionControllerDeps struct {
	Store     ports.SessionStore
	Allocator ports.Allocator
	Clipboard ports.Clipboard
	Scheduler ports.Scheduler
	Toasts    *ToastQueue
	Router    *ViewRouter
	Logger    *slog.Logger
	OnChange  func()
}

// SessionController is the only writer of the session. Every mutation is
// saved before the lock is released, so saves land in mutation order.
type SessionController struct {
	store     ports.SessionStore
	allocator ports.Allocator
	clipboard ports.Clipboard
	scheduler ports.Scheduler
	toasts    *ToastQueue
	router    *ViewRouter
	logger    *slog.Logger
	onChange  func()

	mu         sync.Mutex
	session    domain.Session
	generating bool
	pending    ports.Timer
	attempt    uint64
	idle       chan struct{}
	lastErr    error
	closed     bool
}

func NewSessionController(ctx context.Context, deps SessionControllerDeps) *SessionController {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	router := deps.Router
	if router == nil {
		router = NewViewRouter()
	}

	session, err := deps.Store.Load(ctx)
	if err != nil {
		logger.Info("session snapshot unusable, starting from defaults", "error", err)
	}

	idle := make(chan struct{})
	close(idle)

	return &SessionController{
		store:     deps.Store,
		allocator: deps.Allocator,
		clipboard: deps.Clipboard,
		scheduler: deps.Scheduler,
		toasts:    deps.Toasts,
		router:    router,
		logger:    logger,
		onChange:  deps.OnChange,
		session:   session.Clone(),
		idle:      idle,
	}
}

func (c *SessionController) Session() domain.Session {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.session.Clone()
}

func (c *SessionController) IsGenerating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.generating
}

// Idle returns a channel that is closed once no allocation is in flight.
func (c *SessionController) Idle() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.idle
}

// LastAllocationError reports how the most recent settled allocation ended.
func (c *SessionController) LastAllocationError() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lastErr
}

// StartSession logs the user in. It reports false when already logged in.
func (c *SessionController) StartSession(ctx context.Context) bool {
	c.mu.Lock()
	if c.session.IsLoggedIn {
		c.mu.Unlock()
		return false
	}
	next := c.session.Clone()
	next.IsLoggedIn = true
	c.commitLocked(ctx, next)
	c.mu.Unlock()

	c.logger.Info("session started")
	c.toast(ToastSessionStarted, domain.ToastSuccess)
	c.notify()

	return true
}

// AllocateNumber starts provisioning a line for region. While another
// allocation is in flight the call is rejected and nothing changes.
func (c *SessionController) AllocateNumber(ctx context.Context, region domain.Region) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return fmt.Errorf("controller closed: %w", domain.ErrAllocationRejected)
	}
	if !c.session.IsLoggedIn {
		c.mu.Unlock()
		return domain.ErrNotLoggedIn
	}
	if c.generating {
		c.mu.Unlock()
		c.logger.Debug("allocation rejected, another is in flight", "region", region.Name)
		return domain.ErrAllocationRejected
	}

	c.generating = true
	c.attempt++
	attempt := c.attempt
	c.idle = make(chan struct{})
	c.mu.Unlock()

	c.logger.Info("allocation started", "region", region.Name, "dial_code", region.DialCode)
	c.notify()

	saveCtx := context.WithoutCancel(ctx)
	timer, err := c.startAllocation(saveCtx, attempt, region, func(alloc domain.Allocation, allocErr error) {
		c.settle(saveCtx, attempt, alloc, allocErr)
	})
	if err != nil {
		c.settle(saveCtx, attempt, domain.Allocation{}, err)
		return nil
	}

	c.mu.Lock()
	if c.generating && c.attempt == attempt {
		c.pending = timer
	}
	c.mu.Unlock()

	return nil
}

// CopyActiveNumber places the active number on the clipboard. The session is
// never modified.
func (c *SessionController) CopyActiveNumber(ctx context.Context) error {
	session := c.Session()
	if !session.HasActiveNumber() {
		c.toast(ToastNoActiveLine, domain.ToastError)
		return domain.ErrNoActiveNumber
	}

	if c.clipboard == nil {
		c.toast(ToastCopyFailed, domain.ToastError)
		return fmt.Errorf("no clipboard configured: %w", domain.ErrClipboardUnavailable)
	}

	if err := c.clipboard.Copy(ctx, session.ActiveNumber.Number); err != nil {
		c.logger.Warn("copy to clipboard failed", "error", err)
		c.toast(ToastCopyFailed, domain.ToastError)
		return fmt.Errorf("copy active number: %w", err)
	}

	c.toast(ToastCopied, domain.ToastSuccess)
	return nil
}

// Close cancels an in-flight allocation. The session keeps its last state.
func (c *SessionController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.pending != nil {
		c.pending.Stop()
		c.pending = nil
	}
	if c.generating {
		c.generating = false
		c.attempt++
		close(c.idle)
	}
}

func (c *SessionController) startAllocation(ctx context.Context, attempt uint64, region domain.Region, done func(domain.Allocation, error)) (timer ports.Timer, err error) {
	if c.allocator == nil {
		return nil, fmt.Errorf("no allocator configured: %w", domain.ErrAllocationFailed)
	}
	if c.scheduler == nil {
		return nil, fmt.Errorf("no scheduler configured: %w", domain.ErrAllocationFailed)
	}

	defer func() {
		if r := recover(); r != nil {
			timer = nil
			err = fmt.Errorf("allocator panicked: %v: %w", r, domain.ErrAllocationFailed)
		}
	}()

	guarded := attemptScheduler{inner: c.scheduler, fail: func(fireErr error) {
		c.settle(ctx, attempt, domain.Allocation{}, fireErr)
	}}

	return c.allocator.Allocate(guarded, region, done), nil
}

// settle ends attempt. idle is closed last, after the toast and the route
// change, so a caller woken by Idle sees the settled UI state.
func (c *SessionController) settle(ctx context.Context, attempt uint64, alloc domain.Allocation, err error) {
	if err != nil && !errors.Is(err, domain.ErrAllocationFailed) {
		err = fmt.Errorf("%w: %w", domain.ErrAllocationFailed, err)
	}

	idle, ok := c.finish(ctx, attempt, alloc, err)
	if !ok {
		return
	}
	defer close(idle)

	if err != nil {
		c.logger.Warn("allocation failed", "error", err)
		c.toast(ToastAllocationError, domain.ToastError)
		c.notify()
		return
	}

	c.logger.Info("line activated", "number", alloc.Number.Number, "message_id", alloc.Message.ID)
	c.toast(ToastLineActivated, domain.ToastSuccess)
	c.router.Select(domain.ViewNumbers)
	c.notify()
}

// finish applies the outcome of attempt and hands back its idle channel. It
// reports false when attempt is no longer the one in flight. A panic while
// saving leaves attempt in flight so the caller can settle it as a failure.
func (c *SessionController) finish(ctx context.Context, attempt uint64, alloc domain.Allocation, err error) (chan struct{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.generating || c.attempt != attempt {
		return nil, false
	}
	if err == nil {
		c.commitLocked(ctx, c.session.WithAllocation(alloc))
	}

	c.generating = false
	c.pending = nil
	c.lastErr = err

	return c.idle, true
}

// commitLocked replaces the session and writes it through. A failed save
// keeps the in-memory state.
func (c *SessionController) commitLocked(ctx context.Context, next domain.Session) {
	err := c.store.Save(ctx, next.Clone())
	c.session = next
	if err != nil {
		c.logger.Error("persist session failed", "error", err)
	}
}

func (c *SessionController) toast(message string, kind domain.ToastKind) {
	if c.toasts != nil {
		c.toasts.Show(message, kind)
	}
}

func (c *SessionController) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}

// attemptScheduler wraps every task an allocator schedules for one attempt.
// A panic when the task fires settles the attempt as failed instead of
// escaping into the scheduler.
type attemptScheduler struct {
	inner ports.Scheduler
	fail  func(error)
}

func (s attemptScheduler) AfterFunc(d time.Duration, f func()) ports.Timer {
	return s.inner.AfterFunc(d, func() {
		defer func() {
			if r := recover(); r != nil {
				s.fail(fmt.Errorf("allocation task panicked: %v: %w", r, domain.ErrAllocationFailed))
			}
		}()
		f()
	})
}
