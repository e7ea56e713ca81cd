package tui

import tea "github.com/charmbracelet/bubbletea"

// Notifier turns state-change callbacks, which may arrive from timer
// goroutines or from inside Update, into program messages. Notify never
// blocks; bursts collapse into one refresh.
type Notifier struct {
	ch chan struct{}
}

type refreshMsg struct{}

func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan struct{}, 1)}
}

func (n *Notifier) Notify() {
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

func (n *Notifier) wait() tea.Cmd {
	return func() tea.Msg {
		<-n.ch
		return refreshMsg{}
	}
}
