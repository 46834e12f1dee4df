// Package shell runs the interactive add/show/edit/delete loop.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/jot/pkg/core"
)

// Prompts written before each read.
const (
	PromptCommand     = "Command (add/show/edit/delete/exit): "
	PromptTitle       = "Title: "
	PromptMessage     = "Message: "
	PromptFilterDate  = "Filter date (YYYY-MM-DD, empty for all notes): "
	PromptEditTitle   = "Title of the note to edit: "
	PromptNewMessage  = "New message: "
	PromptDeleteTitle = "Title of the note to delete: "
)

// Shell reads one command per iteration and applies it to a Manager.
type Shell struct {
	mgr    *core.Manager
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
}

// New creates a Shell reading commands from in and printing to out.
func New(mgr *core.Manager, in io.Reader, out io.Writer, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Shell{mgr: mgr, in: scanner, out: out, logger: logger}
}

// errEOF signals that input ended mid-command.
var errEOF = errors.New("end of input")

// Run loops until "exit" or end of input.
// A malformed filter date or a storage failure stops the loop and is returned.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		cmd, err := s.ask(PromptCommand)
		if err != nil {
			return s.finish(err)
		}

		switch strings.TrimSpace(cmd) {
		case "add":
			err = s.add(ctx)
		case "show":
			err = s.show()
		case "edit":
			err = s.edit(ctx)
		case "delete":
			err = s.delete(ctx)
		case "exit":
			return nil
		default:
			fmt.Fprintln(s.out, "unknown command")
			continue
		}

		if err != nil {
			return s.finish(err)
		}
	}
}

func (s *Shell) finish(err error) error {
	if errors.Is(err, errEOF) {
		s.logger.Debug("input closed, leaving shell")
		return nil
	}
	return err
}

func (s *Shell) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", errEOF
	}
	return strings.TrimRight(s.in.Text(), "\r"), nil
}

func (s *Shell) add(ctx context.Context) error {
	title, err := s.ask(PromptTitle)
	if err != nil {
		return err
	}
	message, err := s.ask(PromptMessage)
	if err != nil {
		return err
	}

	_, err = s.mgr.Add(ctx, title, message)
	return err
}

func (s *Shell) show() error {
	raw, err := s.ask(PromptFilterDate)
	if err != nil {
		return err
	}

	var opts core.ShowOptions
	if raw = strings.TrimSpace(raw); raw != "" {
		date, err := core.ParseDate(raw)
		if err != nil {
			return err
		}
		opts.Date = &date
	}
	return s.mgr.Show(s.out, opts)
}

func (s *Shell) edit(ctx context.Context) error {
	title, err := s.ask(PromptEditTitle)
	if err != nil {
		return err
	}
	message, err := s.ask(PromptNewMessage)
	if err != nil {
		return err
	}

	found, err := s.mgr.Edit(ctx, title, message)
	if err != nil {
		return err
	}
	if !found {
		s.logger.Debug("edit matched no note", "title", title)
	}
	return nil
}

func (s *Shell) delete(ctx context.Context) error {
	title, err := s.ask(PromptDeleteTitle)
	if err != nil {
		return err
	}

	removed, err := s.mgr.Delete(ctx, title)
	if err != nil {
		return err
	}
	if removed == 0 {
		s.logger.Debug("delete matched no note", "title", title)
	}
	return nil
}
