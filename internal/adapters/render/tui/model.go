package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/sms-temp/internal/application"
	"github.com/bnema/sms-temp/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const gridColumns = 2

var ErrUnexpectedModel = errors.New("unexpected final bubbletea model type")

type copyDoneMsg struct {
	err error
}

type Model struct {
	ctx      context.Context
	shell    *application.Shell
	notifier *Notifier
	terminal *TerminalWriter
	sequence string
	regions  []domain.Region
	cursor   int
	spinner  spinner.Model
	styles   styles
	width    int
	quitting bool
}

// NewModel builds the program model. terminal may be nil when nothing needs
// to reach the terminal outside the rendered frames.
func NewModel(ctx context.Context, shell *application.Shell, notifier *Notifier, terminal *TerminalWriter) Model {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(accent)),
	)

	return Model{
		ctx:      ctx,
		shell:    shell,
		notifier: notifier,
		terminal: terminal,
		regions:  domain.Regions(),
		spinner:  s,
		styles:   newStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.notifier.wait())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case refreshMsg:
		return m, m.notifier.wait()
	case copyDoneMsg:
		if seq := m.terminal.take(); seq != "" {
			m.sequence = seq
			return m, clearSequenceAfterHold()
		}
		return m, nil
	case sequenceSentMsg:
		m.sequence = ""
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		m.shell.Close()
		return m, tea.Quit
	}

	switch m.shell.Screen() {
	case domain.ScreenAuth:
		if msg.String() == "enter" || msg.String() == " " {
			m.shell.Controller().StartSession(m.ctx)
		}
		return m, nil
	case domain.ScreenMain:
		return m.handleMainKey(msg)
	default:
		return m, nil
	}
}

func (m Model) handleMainKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	router := m.shell.Router()
	controller := m.shell.Controller()

	switch msg.String() {
	case "1":
		router.Select(domain.ViewHome)
		return m, nil
	case "2":
		router.Select(domain.ViewNumbers)
		return m, nil
	case "3":
		router.Select(domain.ViewInbox)
		return m, nil
	case "tab":
		router.Next()
		return m, nil
	case "shift+tab":
		router.Prev()
		return m, nil
	case "esc":
		m.shell.Toasts().Dismiss()
		return m, nil
	case "c":
		return m, m.copyCmd()
	}

	switch router.Current() {
	case domain.ViewHome:
		if controller.IsGenerating() {
			return m, nil
		}
		switch msg.String() {
		case "left", "h":
			m.moveCursor(-1)
		case "right", "l":
			m.moveCursor(1)
		case "up", "k":
			m.moveCursor(-gridColumns)
		case "down", "j":
			m.moveCursor(gridColumns)
		case "enter", " ":
			if m.cursor < len(m.regions) {
				_ = controller.AllocateNumber(m.ctx, m.regions[m.cursor])
			}
		}
	case domain.ViewNumbers:
		if msg.String() == "enter" {
			return m, m.copyCmd()
		}
	}

	return m, nil
}

func (m *Model) moveCursor(step int) {
	next := m.cursor + step
	if next < 0 || next >= len(m.regions) {
		return
	}
	m.cursor = next
}

// copyCmd runs the clipboard write off the event loop; external clipboard
// tools may take a moment.
func (m Model) copyCmd() tea.Cmd {
	controller := m.shell.Controller()
	ctx := m.ctx

	return func() tea.Msg {
		return copyDoneMsg{err: controller.CopyActiveNumber(ctx)}
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var view string
	switch m.shell.Screen() {
	case domain.ScreenSplash:
		view = m.splashView()
	case domain.ScreenAuth:
		view = m.authView()
	default:
		view = m.mainView()
	}

	// Escape sequences have no width, so the frame layout is unchanged.
	return m.sequence + view
}

// Run starts the boot sequence and drives the interactive program until the
// user quits. The shell is closed on return.
func Run(ctx context.Context, shell *application.Shell, notifier *Notifier, terminal *TerminalWriter, opts ...tea.ProgramOption) error {
	defer shell.Close()

	shell.Start()
	p := tea.NewProgram(NewModel(ctx, shell, notifier, terminal), append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)...)

	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run interactive ui: %w", err)
	}

	if _, ok := finalModel.(Model); !ok {
		return ErrUnexpectedModel
	}

	return nil
}
