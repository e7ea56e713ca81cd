package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/bnema/sms-temp/internal/adapters/allocator/simulated"
	chainclip "github.com/bnema/sms-temp/internal/adapters/clipboard/chain"
	osc52clip "github.com/bnema/sms-temp/internal/adapters/clipboard/osc52"
	summaryadapter "github.com/bnema/sms-temp/internal/adapters/render/summary"
	systemschedule "github.com/bnema/sms-temp/internal/adapters/schedule/system"
	"github.com/bnema/sms-temp/internal/adapters/store/jsonfile"
	"github.com/bnema/sms-temp/internal/application"
	"github.com/bnema/sms-temp/internal/config"
	"github.com/bnema/sms-temp/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
)

const logDirMode = 0o700

type app struct {
	cfg        config.Config
	store      ports.SessionStore
	clipboard  ports.Clipboard
	scheduler  ports.Scheduler
	clock      ports.Clock
	logger     *slog.Logger
	logFile    io.Closer
	newSummary func(io.Writer) *summaryadapter.Renderer
}

type wireOptions struct {
	configPath string
	// interactive sends logs to the configured file instead of stderr,
	// because the terminal belongs to the UI.
	interactive bool
	stderr      io.Writer
	// terminal receives OSC 52 sequences. When tty is set, terminal forwards
	// to it and tty is what gets checked for a terminal.
	terminal io.Writer
	tty      *os.File
}

func wireApp(opts wireOptions) (*app, error) {
	cfg, err := config.Load(viper.New(), opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	store, err := jsonfile.NewStore(cfg.State.Dir, cfg.State.Key)
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	var osc52Opts []osc52clip.Option
	if opts.tty != nil {
		osc52Opts = append(osc52Opts, osc52clip.ForTerminal(opts.tty))
	}

	clipboard, err := chainclip.NewCommandFirstWithTerminalFallback(opts.terminal, osc52Opts...)
	if err != nil {
		return nil, fmt.Errorf("wire clipboard chain: %w", err)
	}

	logger, logFile, err := newLogger(cfg.Log, opts)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:        cfg,
		store:      store,
		clipboard:  clipboard,
		scheduler:  systemschedule.Scheduler{},
		clock:      ports.SystemClock{},
		logger:     logger,
		logFile:    logFile,
		newSummary: summaryadapter.NewRenderer,
	}, nil
}

func (a *app) newShell(ctx context.Context, onChange func()) *application.Shell {
	allocator := simulated.NewAllocator(a.clock,
		simulated.WithLatency(a.cfg.Timing.Allocation),
		simulated.WithTimeLayout(a.cfg.Clock.Layout),
	)

	return application.NewShell(ctx, application.ShellConfig{
		Store:          a.store,
		Allocator:      allocator,
		Clipboard:      a.clipboard,
		Scheduler:      a.scheduler,
		SplashDuration: a.cfg.Timing.Splash,
		ToastDuration:  a.cfg.Timing.Toast,
		Logger:         a.logger,
		OnChange:       onChange,
	})
}

func (a *app) Close() {
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

func newLogger(cfg config.LogConfig, opts wireOptions) (*slog.Logger, io.Closer, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}

	if !opts.interactive {
		stderr := opts.stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		if level < slog.LevelWarn {
			level = slog.LevelWarn
		}
		return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})), nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), logDirMode); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := tea.LogToFile(cfg.Path, "smstemp")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	return slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: level})), file, nil
}
