package main

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// DefaultHistorySize is the number of REPL lines kept in the history file.
const DefaultHistorySize = 100

const keyCtrlR = 18

// history holds the most recent REPL lines, oldest first, and mirrors them to
// a file so they survive between sessions. An empty path keeps them in memory
// only.
type history struct {
	path    string
	size    int
	entries []string

	// Ctrl-R state: index of the recalled entry (-1 when not recalling) and
	// the text typed before the first press.
	recallIdx   int
	recallQuery string
}

// loadHistory reads the last size lines of the file at path. A missing file is
// an empty history.
func loadHistory(path string, size int) (*history, error) {
	if size <= 0 {
		size = DefaultHistorySize
	}
	h := &history{path: path, size: size, recallIdx: -1}
	if path == "" {
		return h, nil
	}

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return h, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading history")
	}

	for _, line := range strings.Split(string(content), "\n") {
		if line != "" {
			h.entries = append(h.entries, line)
		}
	}
	h.trim()
	return h, nil
}

// Add appends entry and rewrites the file with at most size lines.
func (h *history) Add(entry string) error {
	entry = strings.TrimRight(entry, "\r\n")
	if entry == "" {
		return nil
	}
	h.entries = append(h.entries, entry)
	h.trim()
	h.recallIdx, h.recallQuery = -1, ""
	if h.path == "" {
		return nil
	}

	content := strings.Join(h.entries, "\n") + "\n"
	if err := os.WriteFile(h.path, []byte(content), 0o600); err != nil {
		return errors.Wrap(err, "writing history")
	}
	return nil
}

func (h *history) Len() int {
	return len(h.entries)
}

// At returns the entry idx steps back from the most recent one.
func (h *history) At(idx int) string {
	return h.entries[len(h.entries)-1-idx]
}

func (h *history) trim() {
	if over := len(h.entries) - h.size; over > 0 {
		h.entries = append([]string(nil), h.entries[over:]...)
	}
}

// recall is a term.Terminal AutoCompleteCallback. Each Ctrl-R replaces the
// line with the next older entry containing the text typed before the first
// press, including entries loaded from earlier sessions. Any other key ends
// the recall.
func (h *history) recall(line string, pos int, key rune) (string, int, bool) {
	if key != keyCtrlR {
		h.recallIdx, h.recallQuery = -1, ""
		return "", 0, false
	}
	if h.recallIdx == -1 {
		h.recallQuery = line
	}
	for i := h.recallIdx + 1; i < h.Len(); i++ {
		if entry := h.At(i); strings.Contains(entry, h.recallQuery) {
			h.recallIdx = i
			return entry, len(entry), true
		}
	}
	return line, pos, true
}
