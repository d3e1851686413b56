// Package clipboard writes generated CSS to the system clipboard.
package clipboard

import (
	"fmt"
	"io"
	"os"
	"sync"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// Clipboard receives copied text.
type Clipboard interface {
	Copy(text string) error
}

// OSC52 copies through the terminal with an OSC 52 escape sequence, which
// works over SSH and inside tmux or screen.
type OSC52 struct {
	w    io.Writer
	tmux bool
	scrn bool
}

// NewOSC52 creates an OSC 52 clipboard writing to w. A nil w means stderr.
// Multiplexers are detected from the environment.
func NewOSC52(w io.Writer) *OSC52 {
	if w == nil {
		w = os.Stderr
	}

	return &OSC52{
		w:    w,
		tmux: os.Getenv("TMUX") != "",
		scrn: os.Getenv("STY") != "",
	}
}

// Copy writes text to the clipboard.
func (c *OSC52) Copy(text string) error {
	seq := osc52.New(text)

	switch {
	case c.tmux:
		seq = seq.Tmux()
	case c.scrn:
		seq = seq.Screen()
	}

	if _, err := seq.WriteTo(c.w); err != nil {
		return fmt.Errorf("failed to write clipboard sequence: %w", err)
	}

	return nil
}

// Recorder keeps copied text in memory. It is used by tests and by
// headless runs.
type Recorder struct {
	mu     sync.Mutex
	copies []string
	Err    error
}

// Copy records text, or returns Err when set.
func (r *Recorder) Copy(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Err != nil {
		return r.Err
	}

	r.copies = append(r.copies, text)

	return nil
}

// Last returns the most recently copied text.
func (r *Recorder) Last() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.copies) == 0 {
		return "", false
	}

	return r.copies[len(r.copies)-1], true
}
