package tui

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/bnema/sms-temp/internal/adapters/allocator/simulated"
	"github.com/bnema/sms-temp/internal/adapters/schedule/manual"
	"github.com/bnema/sms-temp/internal/adapters/store/jsonfile"
	"github.com/bnema/sms-temp/internal/application"
	"github.com/bnema/sms-temp/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClipboard struct {
	err    error
	copied []string

	// out, when set, receives a fake terminal sequence per copy.
	out io.Writer
}

func (s *stubClipboard) Copy(_ context.Context, text string) error {
	if s.err != nil {
		return s.err
	}
	s.copied = append(s.copied, text)
	if s.out != nil {
		_, _ = fmt.Fprintf(s.out, "\x1b]52;c;%s\a", text)
	}
	return nil
}

type harness struct {
	scheduler *manual.Scheduler
	store     *jsonfile.Store
	clipboard *stubClipboard
	terminal  *TerminalWriter
	shell     *application.Shell
	notifier  *Notifier
	model     Model
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	scheduler := manual.NewScheduler(time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC))
	store, err := jsonfile.NewStore(t.TempDir(), jsonfile.DefaultKey)
	require.NoError(t, err)

	h := &harness{
		scheduler: scheduler,
		store:     store,
		clipboard: &stubClipboard{},
		terminal:  NewTerminalWriter(),
		notifier:  NewNotifier(),
	}
	h.shell = application.NewShell(context.Background(), application.ShellConfig{
		Store:     store,
		Allocator: simulated.NewAllocator(scheduler, simulated.WithRand(rand.New(rand.NewPCG(3, 5)))),
		Clipboard: h.clipboard,
		Scheduler: scheduler,
		OnChange:  h.notifier.Notify,
	})
	t.Cleanup(h.shell.Close)

	h.shell.Start()
	h.model = NewModel(context.Background(), h.shell, h.notifier, h.terminal)

	return h
}

func (h *harness) press(t *testing.T, keys ...tea.KeyMsg) tea.Cmd {
	t.Helper()

	var cmd tea.Cmd
	for _, key := range keys {
		next, c := h.model.Update(key)
		model, ok := next.(Model)
		require.True(t, ok)
		h.model = model
		cmd = c
	}

	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	right = tea.KeyMsg{Type: tea.KeyRight}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func (h *harness) bootAndLogin(t *testing.T) {
	t.Helper()

	h.scheduler.Advance(application.DefaultSplashDuration)
	h.press(t, enter)
	require.Equal(t, domain.ScreenMain, h.shell.Screen())
}

func TestSplashThenAuthThenHome(t *testing.T) {
	h := newHarness(t)

	view := h.model.View()
	assert.Contains(t, view, "SMS Temp")
	assert.Contains(t, view, "Secure Protocol v4.3.0")
	assert.Contains(t, view, "INITIALIZING SECURE LINK")

	h.press(t, enter)
	assert.Equal(t, domain.ScreenSplash, h.shell.Screen(), "keys on the splash do nothing")

	h.scheduler.Advance(application.DefaultSplashDuration)
	view = h.model.View()
	assert.Contains(t, view, "Stay Anonymous")
	assert.Contains(t, view, "Start Now")

	h.press(t, enter)
	view = h.model.View()
	assert.Contains(t, view, "Secure Gateway")
	assert.Contains(t, view, "Select Region")
	assert.Contains(t, view, "USA")
	assert.Contains(t, view, "Belgium")
	assert.Contains(t, view, application.ToastSessionStarted)

	stored, err := h.store.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, stored.IsLoggedIn)
}

func TestAllocateFromHomeSwitchesToNumbers(t *testing.T) {
	h := newHarness(t)
	h.bootAndLogin(t)

	h.press(t, enter)
	assert.Contains(t, h.model.View(), "Allocating Line")
	assert.True(t, h.shell.Controller().IsGenerating())

	h.press(t, right, enter)
	h.scheduler.Advance(simulated.DefaultLatency)

	assert.Equal(t, domain.ViewNumbers, h.shell.Router().Current())
	session := h.shell.Controller().Session()
	require.NotNil(t, session.ActiveNumber)
	assert.Equal(t, "+1", session.ActiveNumber.DialCode, "grid input is ignored while generating")
	assert.Regexp(t, regexp.MustCompile(`^\+1 \d{3} \d{3} \d{3}$`), session.ActiveNumber.Number)

	view := h.model.View()
	assert.Contains(t, view, "SECURE LINE")
	assert.Contains(t, view, session.ActiveNumber.Number)
	assert.Contains(t, view, application.ToastLineActivated)
}

func TestGridNavigationPicksRegion(t *testing.T) {
	h := newHarness(t)
	h.bootAndLogin(t)

	h.press(t, down, right, enter)
	h.scheduler.Advance(simulated.DefaultLatency)

	session := h.shell.Controller().Session()
	require.NotNil(t, session.ActiveNumber)
	assert.Equal(t, "🇦🇺", session.ActiveNumber.Flag)
	assert.Equal(t, "+61", session.ActiveNumber.DialCode)
}

func TestCopyFromNumbersView(t *testing.T) {
	h := newHarness(t)
	h.bootAndLogin(t)
	h.press(t, enter)
	h.scheduler.Advance(simulated.DefaultLatency)

	cmd := h.press(t, runes("c"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(copyDoneMsg)
	require.True(t, ok)
	require.NoError(t, msg.err)

	assert.Equal(t, []string{h.shell.Controller().Session().ActiveNumber.Number}, h.clipboard.copied)
	assert.Contains(t, h.model.View(), application.ToastCopied)
}

func TestCopyFailureShowsErrorAndKeepsSession(t *testing.T) {
	h := newHarness(t)
	h.bootAndLogin(t)
	h.press(t, enter)
	h.scheduler.Advance(simulated.DefaultLatency)
	before := h.shell.Controller().Session()

	h.clipboard.err = domain.ErrClipboardUnavailable
	cmd := h.press(t, enter)
	require.NotNil(t, cmd)
	msg := cmd().(copyDoneMsg)
	require.ErrorIs(t, msg.err, domain.ErrClipboardUnavailable)

	assert.Equal(t, before, h.shell.Controller().Session())
	assert.Contains(t, h.model.View(), application.ToastCopyFailed)
}

func TestTabsAndInbox(t *testing.T) {
	h := newHarness(t)
	h.bootAndLogin(t)

	h.press(t, runes("3"))
	assert.Contains(t, h.model.View(), "Inbox Empty")

	h.press(t, runes("2"))
	assert.Contains(t, h.model.View(), "No Active Lines")

	h.press(t, runes("1"), enter)
	h.scheduler.Advance(simulated.DefaultLatency)
	h.press(t, tab)
	assert.Equal(t, domain.ViewInbox, h.shell.Router().Current())

	view := h.model.View()
	assert.Contains(t, view, "Recent Messages")
	assert.Contains(t, view, "1 SMS")
	assert.Contains(t, view, simulated.ReadyBody)
}

func TestEscDismissesToast(t *testing.T) {
	h := newHarness(t)
	h.bootAndLogin(t)

	_, visible := h.shell.Toasts().Current()
	require.True(t, visible)

	h.press(t, esc)
	_, visible = h.shell.Toasts().Current()
	assert.False(t, visible)
}

func TestToastDisappearsAfterTimeout(t *testing.T) {
	h := newHarness(t)
	h.bootAndLogin(t)
	require.Contains(t, h.model.View(), application.ToastSessionStarted)

	h.scheduler.Advance(application.DefaultToastDuration)
	assert.NotContains(t, h.model.View(), application.ToastSessionStarted)
}

func TestQuitClosesShell(t *testing.T) {
	h := newHarness(t)

	cmd := h.press(t, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, h.model.View())
	assert.Zero(t, h.scheduler.Pending())
}

func TestRefreshRearmsNotifier(t *testing.T) {
	h := newHarness(t)

	h.notifier.Notify()
	h.notifier.Notify()

	next, cmd := h.model.Update(refreshMsg{})
	require.NotNil(t, cmd)
	h.model = next.(Model)

	assert.Equal(t, refreshMsg{}, cmd())
}

func TestTerminalCopyIsEmittedWithTheFrame(t *testing.T) {
	h := newHarness(t)
	h.clipboard.out = h.terminal
	h.bootAndLogin(t)
	h.press(t, enter)
	h.scheduler.Advance(simulated.DefaultLatency)
	number := h.shell.Controller().Session().ActiveNumber.Number

	cmd := h.press(t, runes("c"))
	require.NotNil(t, cmd)
	assert.NotContains(t, h.model.View(), "\x1b]52;", "nothing is emitted before the copy settles")

	next, hold := h.model.Update(cmd())
	h.model = next.(Model)
	require.NotNil(t, hold)

	view := h.model.View()
	assert.True(t, strings.HasPrefix(view, "\x1b]52;c;"+number+"\a"))
	assert.Empty(t, h.terminal.take(), "the sequence is handed over once")

	next, _ = h.model.Update(sequenceSentMsg{})
	h.model = next.(Model)
	assert.NotContains(t, h.model.View(), "\x1b]52;")
}
