package tui

import (
	"fmt"
	"strings"

	"github.com/bnema/sms-temp/internal/adapters/render/summary"
	"github.com/bnema/sms-temp/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const protocolVersion = "Secure Protocol v4.3.0"

func (m Model) splashView() string {
	s := m.styles

	return m.center(lipgloss.JoinVertical(lipgloss.Center,
		s.brand.Render("✉  SMS Temp"),
		s.subtitle.Render(protocolVersion),
		"",
		m.spinner.View()+" "+s.muted.Render("INITIALIZING SECURE LINK..."),
	))
}

func (m Model) authView() string {
	s := m.styles

	return m.center(lipgloss.JoinVertical(lipgloss.Center,
		s.brand.Render("✉"),
		"",
		s.title.Render("Stay Anonymous"),
		s.subtitle.Render("Instantly generate disposable numbers for verification."),
		s.subtitle.Render("No SIM card required."),
		"",
		s.button.Render("Start Now"),
		s.help.Render("enter start • q quit"),
	))
}

func (m Model) mainView() string {
	s := m.styles
	view := m.shell.Router().Current()

	var body string
	switch view {
	case domain.ViewNumbers:
		body = m.numbersView()
	case domain.ViewInbox:
		body = m.inboxView()
	default:
		body = m.homeView()
	}

	if m.shell.Controller().IsGenerating() {
		body = m.allocatingView()
	}

	parts := []string{
		s.brand.Render("✉  SMS TEMP"),
		m.toastLine(),
		body,
		"",
		m.tabBar(view),
		s.help.Render(helpFor(view)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) toastLine() string {
	toast, ok := m.shell.Toasts().Current()
	if !ok {
		return ""
	}

	if toast.Kind == domain.ToastError {
		return m.styles.toastErr.Render("✗ " + toast.Message)
	}

	return m.styles.toastOK.Render("✓ " + toast.Message)
}

func (m Model) homeView() string {
	s := m.styles
	generating := m.shell.Controller().IsGenerating()

	gateway := s.gateway.Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, s.title.Render("Secure Gateway"), "   ", s.online.Render("● Online")),
		s.muted.Render("Protocol TLS 1.3 Active"),
	))

	rows := make([]string, 0, (len(m.regions)+gridColumns-1)/gridColumns)
	for i := 0; i < len(m.regions); i += gridColumns {
		cells := make([]string, 0, gridColumns)
		for j := i; j < i+gridColumns && j < len(m.regions); j++ {
			cells = append(cells, m.regionCell(j, generating))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		gateway,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, s.title.Render("Select Region"), "  ", s.muted.Render("GLOBAL PROXY")),
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
}

func (m Model) regionCell(idx int, disabled bool) string {
	s := m.styles
	region := m.regions[idx]
	content := fmt.Sprintf("%s %s  %s", region.Flag, region.Name, s.dialCode.Render(region.DialCode))

	switch {
	case disabled:
		return s.regionOff.Render(content)
	case idx == m.cursor:
		return s.regionFocus.Render("› " + content)
	default:
		return s.region.Render("  " + content)
	}
}

func (m Model) numbersView() string {
	s := m.styles
	session := m.shell.Controller().Session()

	if !session.HasActiveNumber() {
		return s.card.Render(lipgloss.JoinVertical(lipgloss.Center,
			s.muted.Render("#"),
			s.title.Render("No Active Lines"),
			s.subtitle.Render("Visit Home to allocate a number."),
		))
	}

	n := session.ActiveNumber
	return s.card.Render(lipgloss.JoinVertical(lipgloss.Center,
		n.Flag,
		s.muted.Render("SECURE LINE"),
		s.number.Render(n.Number),
		"",
		s.button.Render("Copy Number"),
	))
}

func (m Model) inboxView() string {
	s := m.styles
	messages := m.shell.Controller().Session().Messages

	if len(messages) == 0 {
		return s.card.Render(lipgloss.JoinVertical(lipgloss.Center,
			s.muted.Render("✉"),
			s.title.Render("Inbox Empty"),
			s.subtitle.Render("Monitoring incoming verifications..."),
		))
	}

	parts := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, s.title.Render("Recent Messages"), "  ", s.badge.Render(fmt.Sprintf("%d SMS", len(messages)))),
	}
	for _, msg := range messages {
		parts = append(parts, s.card.Render(lipgloss.JoinHorizontal(lipgloss.Top,
			s.avatar.Render(summary.Initial(msg.Sender)),
			"  ",
			lipgloss.JoinVertical(lipgloss.Left,
				lipgloss.JoinHorizontal(lipgloss.Top, s.sender.Render(msg.Sender), "  ", s.muted.Render(strings.ToUpper(msg.Time))),
				s.subtitle.Render(msg.Body),
			),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) allocatingView() string {
	s := m.styles

	return s.overlay.Render(lipgloss.JoinVertical(lipgloss.Center,
		m.spinner.View(),
		s.title.Render("Allocating Line"),
		s.subtitle.Render("Establishing secure proxy..."),
	))
}

func (m Model) tabBar(current domain.View) string {
	tabs := make([]string, 0, len(domain.Views()))
	for i, v := range domain.Views() {
		label := fmt.Sprintf("%d %s", i+1, v.Label())
		if v == current {
			tabs = append(tabs, m.styles.tabActive.Render(label))
			continue
		}
		tabs = append(tabs, m.styles.tab.Render(label))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func helpFor(view domain.View) string {
	switch view {
	case domain.ViewHome:
		return "←↑↓→ choose region • enter allocate • 1/2/3 tabs • q quit"
	case domain.ViewNumbers:
		return "c copy number • 1/2/3 tabs • esc dismiss • q quit"
	default:
		return "1/2/3 tabs • esc dismiss • q quit"
	}
}

func (m Model) center(content string) string {
	if m.width <= 0 {
		return content
	}

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
}
