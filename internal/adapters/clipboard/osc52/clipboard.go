// Package osc52 copies text through the terminal emulator using the OSC 52
// escape sequence, which works over SSH where no local clipboard tool exists.
package osc52

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/bnema/sms-temp/internal/domain"
	"github.com/bnema/sms-temp/internal/ports"
	"github.com/mattn/go-isatty"
)

type Clipboard struct {
	out        io.Writer
	isTerminal func(io.Writer) bool
	getenv     func(string) string
}

var _ ports.Clipboard = (*Clipboard)(nil)

type Option func(*Clipboard)

// ForTerminal checks tty instead of out when deciding whether a terminal is
// attached. It is for writers that forward to tty, such as a UI that emits
// the sequence with its next frame.
func ForTerminal(tty *os.File) Option {
	return func(c *Clipboard) {
		c.isTerminal = func(io.Writer) bool {
			return tty != nil && writerIsTerminal(tty)
		}
	}
}

func NewClipboard(out io.Writer, opts ...Option) *Clipboard {
	c := &Clipboard{out: out, isTerminal: writerIsTerminal, getenv: os.Getenv}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Clipboard) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.out == nil || !c.isTerminal(c.out) {
		return fmt.Errorf("osc52 output is not a terminal: %w", domain.ErrClipboardUnavailable)
	}

	seq := osc52.New(text)
	switch {
	case c.getenv("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(c.getenv("TERM"), "screen"):
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(c.out); err != nil {
		return fmt.Errorf("write osc52 sequence: %w: %w", domain.ErrClipboardUnavailable, err)
	}

	return nil
}

func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
