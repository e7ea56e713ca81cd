package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/sms-temp/internal/domain"
	"github.com/bnema/sms-temp/internal/ports"
)

type tool struct {
	name string
	args []string
}

// Known clipboard writers, tried in order.
var defaultTools = []tool{
	{name: "wl-copy"},
	{name: "xclip", args: []string{"-selection", "clipboard"}},
	{name: "xsel", args: []string{"--clipboard", "--input"}},
	{name: "pbcopy"},
	{name: "clip.exe"},
}

type lookPathFunc func(file string) (string, error)

type runFunc func(ctx context.Context, input string, path string, args ...string) (stderr string, err error)

type Clipboard struct {
	tools    []tool
	lookPath lookPathFunc
	run      runFunc
}

var _ ports.Clipboard = (*Clipboard)(nil)

func NewClipboard() *Clipboard {
	return &Clipboard{tools: defaultTools, lookPath: exec.LookPath, run: runCommand}
}

func (c *Clipboard) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t, path, err := c.resolve()
	if err != nil {
		return err
	}

	stderr, err := c.run(ctx, text, path, t.args...)
	if err != nil {
		if stderr == "" {
			return fmt.Errorf("%s: %w: %w", t.name, domain.ErrClipboardUnavailable, err)
		}
		return fmt.Errorf("%s: %w: %w: %s", t.name, domain.ErrClipboardUnavailable, err, stderr)
	}

	return nil
}

func (c *Clipboard) resolve() (tool, string, error) {
	for _, t := range c.tools {
		path, err := c.lookPath(t.name)
		if err == nil {
			return t, path, nil
		}
		if !errors.Is(err, exec.ErrNotFound) {
			return tool{}, "", fmt.Errorf("locate %s: %w", t.name, err)
		}
	}

	return tool{}, "", fmt.Errorf("no clipboard command found: %w", domain.ErrClipboardUnavailable)
}

func runCommand(ctx context.Context, input string, path string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = strings.NewReader(input)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	return strings.TrimSpace(stderr.String()), err
}
