package tui

import (
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// sequenceHold keeps an emitted escape sequence in the view for a few
// frames so the renderer flushes it at least once.
const sequenceHold = 150 * time.Millisecond

// TerminalWriter collects escape sequences, such as an OSC 52 copy, for the
// program to emit inside its next frame. Nothing writes to the terminal
// behind the renderer's back.
type TerminalWriter struct {
	mu  sync.Mutex
	buf strings.Builder
}

type sequenceSentMsg struct{}

func NewTerminalWriter() *TerminalWriter {
	return &TerminalWriter{}
}

func (w *TerminalWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.buf.Write(p)
}

func (w *TerminalWriter) take() string {
	if w == nil {
		return ""
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	out := w.buf.String()
	w.buf.Reset()
	return out
}

func clearSequenceAfterHold() tea.Cmd {
	return tea.Tick(sequenceHold, func(time.Time) tea.Msg {
		return sequenceSentMsg{}
	})
}
