package chain

import (
	"context"
	"errors"
	"fmt"
	"io"

	commandclip "github.com/bnema/sms-temp/internal/adapters/clipboard/command"
	osc52clip "github.com/bnema/sms-temp/internal/adapters/clipboard/osc52"
	"github.com/bnema/sms-temp/internal/ports"
)

type Clipboard struct {
	primary  ports.Clipboard
	fallback ports.Clipboard
}

var _ ports.Clipboard = (*Clipboard)(nil)

var (
	errNilPrimaryClipboard  = errors.New("primary clipboard is nil")
	errNilFallbackClipboard = errors.New("fallback clipboard is nil")
)

func NewClipboard(primary ports.Clipboard, fallback ports.Clipboard) (*Clipboard, error) {
	if primary == nil {
		return nil, errNilPrimaryClipboard
	}
	if fallback == nil {
		return nil, errNilFallbackClipboard
	}

	return &Clipboard{primary: primary, fallback: fallback}, nil
}

// NewCommandFirstWithTerminalFallback prefers a local clipboard tool and
// falls back to OSC 52 on the given terminal.
func NewCommandFirstWithTerminalFallback(terminal io.Writer, opts ...osc52clip.Option) (*Clipboard, error) {
	return NewClipboard(commandclip.NewClipboard(), osc52clip.NewClipboard(terminal, opts...))
}

func (c *Clipboard) Copy(ctx context.Context, text string) error {
	err := c.primary.Copy(ctx, text)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := c.fallback.Copy(ctx, text)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary backend copy failed: %w; fallback backend copy failed: %w", err, fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
