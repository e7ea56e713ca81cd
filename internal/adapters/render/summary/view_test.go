package summary

import (
	"bytes"
	"errors"
	"testing"

	"github.com/bnema/sms-temp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDefaultSession(t *testing.T) {
	output := NewRenderer(&bytes.Buffer{}).Render(domain.DefaultSession(), RenderOptions{})

	assert.Contains(t, output, "SMS Temp")
	assert.Contains(t, output, "not started")
	assert.Contains(t, output, "No Active Lines")
	assert.Contains(t, output, "Inbox Empty")
}

func TestRenderActiveSession(t *testing.T) {
	output := NewRenderer(&bytes.Buffer{}).Render(domain.Session{
		IsLoggedIn:   true,
		ActiveNumber: &domain.ActiveNumber{Flag: "🇺🇸", DialCode: "+1", Number: "+1 555 123 456"},
		Messages: []domain.Message{
			{ID: "2", Sender: "System", Body: "Secure encryption active. Line ready for verifications.", Time: "10:01"},
			{ID: "1", Sender: "bank", Body: "Your code is 1234", Time: "09:58"},
		},
	}, RenderOptions{})

	assert.Contains(t, output, "session: active")
	assert.Contains(t, output, "Secure Line")
	assert.Contains(t, output, "+1 555 123 456")
	assert.Contains(t, output, "Recent Messages")
	assert.Contains(t, output, "2 SMS")
	assert.Contains(t, output, "[S] System")
	assert.Contains(t, output, "[B] bank")
	assert.Contains(t, output, "10:01")
	assert.NotContains(t, output, "Inbox Empty")
}

func TestRenderCapsMessages(t *testing.T) {
	session := domain.Session{IsLoggedIn: true}
	for i := 0; i < 5; i++ {
		session.Messages = append(session.Messages, domain.Message{Sender: "System", Body: "line", Time: "10:00"})
	}

	output := NewRenderer(&bytes.Buffer{}).Render(session, RenderOptions{MaxMessages: 2})

	assert.Contains(t, output, "5 SMS")
	assert.Contains(t, output, "... 3 older")
}

func TestWriteToNonTerminalIsPlainText(t *testing.T) {
	var out bytes.Buffer
	session := domain.Session{
		IsLoggedIn:   true,
		ActiveNumber: &domain.ActiveNumber{Flag: "🇬🇧", DialCode: "+44", Number: "+44 700 900 123"},
	}

	require.NoError(t, NewRenderer(&out).Write(session, RenderOptions{}))
	assert.NotContains(t, out.String(), "\x1b[", "piped output carries no color codes")
	assert.Contains(t, out.String(), "+44 700 900 123")
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("stdout closed")
}

func TestWriteReportsOutputFailure(t *testing.T) {
	err := NewRenderer(brokenWriter{}).Write(domain.DefaultSession(), RenderOptions{})
	assert.ErrorContains(t, err, "stdout closed")
}

func TestInitial(t *testing.T) {
	assert.Equal(t, "S", Initial("System"))
	assert.Equal(t, "Ü", Initial(" über"))
	assert.Equal(t, "?", Initial("  "))
}
