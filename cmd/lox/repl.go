package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type lineReader interface {
	ReadLine() (string, error)
}

type scannerLines struct {
	scanner *bufio.Scanner
}

func (s scannerLines) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

type readWriter struct {
	io.Reader
	io.Writer
}

// openLines returns a line editor when in is a terminal and a plain line
// scanner otherwise. The returned writer must be used for output while the
// terminal is in raw mode; logging is routed through it until restore.
func (a *app) openLines(in io.Reader, hist *history) (lineReader, io.Writer, func(), error) {
	f, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return scannerLines{scanner: bufio.NewScanner(in)}, a.out, func() {}, nil
	}

	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, nil, nil, err
	}
	t := term.NewTerminal(readWriter{Reader: f, Writer: a.out}, a.cfg.Prompt)
	t.AutoCompleteCallback = hist.recall
	a.log = newLogger(syncWriter{t}, a.verbose)
	restore := func() {
		_ = term.Restore(fd, oldState)
		a.log = newLogger(syncWriter{a.errOut}, a.verbose)
	}
	return t, t, restore, nil
}

func (a *app) repl(in io.Reader) error {
	hist, err := loadHistory(a.cfg.HistoryFile, a.cfg.HistorySize)
	if err != nil {
		return err
	}
	a.log.Debugf("loaded %d history entries from %q", hist.Len(), a.cfg.HistoryFile)

	lines, out, restore, err := a.openLines(in, hist)
	if err != nil {
		return err
	}
	defer restore()

	fmt.Fprintln(out, a.styles.banner.Render("Lox Interpreter"))
	return a.replLoop(lines, out, hist)
}

// replLoop reports errors for a line and keeps going; it only returns when
// input ends or reading fails. Every non-blank line is added to hist.
func (a *app) replLoop(lines lineReader, out io.Writer, hist *history) error {
	count := 0
	for {
		line, err := lines.ReadLine()
		if err == io.EOF {
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Aborted!")
			a.log.Debugf("repl read %d lines", count)
			return nil
		}
		if err != nil {
			return err
		}
		count++

		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := hist.Add(line); err != nil {
			a.log.Warningf("%s", err)
		}
		if err := a.process(out, line); err != nil {
			fmt.Fprintln(out, a.styles.err.Render(err.Error()))
		}
	}
}
