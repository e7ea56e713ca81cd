package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/bnema/sms-temp/internal/domain"
	"github.com/bnema/sms-temp/internal/ports"
)

type ShellConfig struct {
	Store          ports.SessionStore
	Allocator      ports.Allocator
	Clipboard      ports.Clipboard
	Scheduler      ports.Scheduler
	SplashDuration time.Duration
	ToastDuration  time.Duration
	Logger         *slog.Logger
	OnChange       func()
}

// Shell is the top-level composition. It owns the lifecycle of every timer
// started on behalf of the UI.
type Shell struct {
	boot       *BootSequencer
	toasts     *ToastQueue
	router     *ViewRouter
	controller *SessionController
}

func NewShell(ctx context.Context, cfg ShellConfig) *Shell {
	onChange := cfg.OnChange
	toasts := NewToastQueue(cfg.Scheduler, cfg.ToastDuration, onChange)
	router := NewViewRouter()

	return &Shell{
		boot:   NewBootSequencer(cfg.Scheduler, cfg.SplashDuration, onChange),
		toasts: toasts,
		router: router,
		controller: NewSessionController(ctx, SessionControllerDeps{
			Store:     cfg.Store,
			Allocator: cfg.Allocator,
			Clipboard: cfg.Clipboard,
			Scheduler: cfg.Scheduler,
			Toasts:    toasts,
			Router:    router,
			Logger:    cfg.Logger,
			OnChange:  onChange,
		}),
	}
}

func (s *Shell) Start() {
	s.boot.Start()
}

// Close invalidates the boot, toast and allocation timers.
func (s *Shell) Close() {
	s.boot.Stop()
	s.toasts.Stop()
	s.controller.Close()
}

// Screen decides what renders: the splash while booting, then the auth gate
// until the session starts, then the tabbed main UI.
func (s *Shell) Screen() domain.Screen {
	if s.boot.State() == domain.BootSplash {
		return domain.ScreenSplash
	}
	if !s.controller.Session().IsLoggedIn {
		return domain.ScreenAuth
	}

	return domain.ScreenMain
}

func (s *Shell) Boot() *BootSequencer {
	return s.boot
}

func (s *Shell) Toasts() *ToastQueue {
	return s.toasts
}

func (s *Shell) Router() *ViewRouter {
	return s.router
}

func (s *Shell) Controller() *SessionController {
	return s.controller
}
