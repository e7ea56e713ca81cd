package summary

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bnema/sms-temp/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	// MaxMessages caps the inbox listing; zero shows everything.
	MaxMessages int
}

func renderView(session domain.Session, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("SMS Temp"),
		s.header.Render("session: ") + sessionState(session, s),
		s.section.Render(renderLine(session, s)),
		s.section.Render(renderInbox(session.Messages, opts, s)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func sessionState(session domain.Session, s styles) string {
	if session.IsLoggedIn {
		return s.online.Render("active")
	}

	return s.offline.Render("not started")
}

func renderLine(session domain.Session, s styles) string {
	if !session.HasActiveNumber() {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.title.Render("No Active Lines"),
			s.empty.Render("Visit Home to allocate a number."),
		)
	}

	n := session.ActiveNumber
	return lipgloss.JoinVertical(lipgloss.Left,
		s.label.Render("Secure Line"),
		lipgloss.JoinHorizontal(lipgloss.Top, n.Flag, " ", s.number.Render(n.Number)),
	)
}

func renderInbox(messages []domain.Message, opts RenderOptions, s styles) string {
	if len(messages) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.title.Render("Inbox Empty"),
			s.empty.Render("Monitoring incoming verifications..."),
		)
	}

	shown := messages
	if opts.MaxMessages > 0 && len(shown) > opts.MaxMessages {
		shown = shown[:opts.MaxMessages]
	}

	parts := []string{s.title.Render("Recent Messages") + " " + s.header.Render(fmt.Sprintf("%d SMS", len(messages)))}
	for _, msg := range shown {
		parts = append(parts, renderMessage(msg, s))
	}
	if hidden := len(messages) - len(shown); hidden > 0 {
		parts = append(parts, s.empty.Render(fmt.Sprintf("... %d older", hidden)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderMessage(msg domain.Message, s styles) string {
	head := lipgloss.JoinHorizontal(lipgloss.Top,
		s.label.Render("["+Initial(msg.Sender)+"]"),
		" ",
		s.sender.Render(msg.Sender),
		" ",
		s.time.Render(msg.Time),
	)

	return lipgloss.JoinVertical(lipgloss.Left, head, "    "+s.body.Render(msg.Body))
}

// Initial is the avatar letter shown next to a sender.
func Initial(sender string) string {
	trimmed := strings.TrimSpace(sender)
	if trimmed == "" {
		return "?"
	}

	r, _ := utf8.DecodeRuneInString(trimmed)
	return strings.ToUpper(string(r))
}
