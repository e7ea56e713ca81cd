package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bnema/sms-temp/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// allocationWaiter is the part of the session controller the progress view
// watches.
type allocationWaiter interface {
	Idle() <-chan struct{}
	LastAllocationError() error
}

type allocationSettledMsg struct {
	err error
}

type allocationView struct {
	region   domain.Region
	spinner  spinner.Model
	title    lipgloss.Style
	subtitle lipgloss.Style
	idle     <-chan struct{}
	waiter   allocationWaiter
	settled  bool
	err      error
}

func newAllocationView(region domain.Region, waiter allocationWaiter) allocationView {
	return allocationView{
		region: region,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Points),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("45"))),
		),
		title:    lipgloss.NewStyle().Bold(true),
		subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		idle:     waiter.Idle(),
		waiter:   waiter,
	}
}

func (v allocationView) Init() tea.Cmd {
	return tea.Batch(v.spinner.Tick, v.awaitSettle)
}

func (v allocationView) awaitSettle() tea.Msg {
	<-v.idle
	return allocationSettledMsg{err: v.waiter.LastAllocationError()}
}

func (v allocationView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	case allocationSettledMsg:
		v.settled = true
		v.err = msg.err
		return v, tea.Quit
	default:
		return v, nil
	}
}

func (v allocationView) View() string {
	if v.settled {
		return ""
	}

	return fmt.Sprintf("%s %s %s  %s\n",
		v.spinner.View(),
		v.region.Flag,
		v.title.Render("Allocating Line"),
		v.subtitle.Render(fmt.Sprintf("Establishing secure proxy via %s (%s)...", v.region.Name, v.region.DialCode)),
	)
}

// awaitAllocation draws progress on out until the in-flight allocation for
// region settles, and returns how it ended.
func awaitAllocation(ctx context.Context, out io.Writer, region domain.Region, waiter allocationWaiter) error {
	p := tea.NewProgram(
		newAllocationView(region, waiter),
		tea.WithInput(nil),
		tea.WithOutput(out),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("draw allocation progress: %w", err)
	}

	view, ok := finalModel.(allocationView)
	if !ok {
		return fmt.Errorf("unexpected final allocation view type %T", finalModel)
	}

	return view.err
}
