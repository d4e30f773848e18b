// ABOUTME: Best-effort sound/notification surface.
// ABOUTME: Terminal implementation rings BEL and prints colored lines; failures never propagate past callers.
package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Category selects which completion cue to play.
type Category string

const (
	CategoryRest     Category = "rest"
	CategoryExercise Category = "exercise"
	CategoryWorkout  Category = "workout"

	// CategoryTick is the per-second cue played in a countdown's final
	// seconds, distinct from the completion sound.
	CategoryTick Category = "tick"
)

// Notifier is the audio/visual feedback surface. Implementations may fail;
// callers treat every error as best-effort and move on.
type Notifier interface {
	PlaySound(category Category) error
	Notify(title, body string) error
}

// Terminal writes cues to a terminal: BEL for sounds, colored lines for
// notifications.
type Terminal struct {
	out io.Writer
}

// NewTerminal creates a terminal notifier writing to stderr.
func NewTerminal() *Terminal {
	return &Terminal{out: os.Stderr}
}

// NewTerminalTo creates a terminal notifier writing to w.
func NewTerminalTo(w io.Writer) *Terminal {
	return &Terminal{out: w}
}

// PlaySound rings the terminal bell.
func (t *Terminal) PlaySound(category Category) error {
	_, err := fmt.Fprint(t.out, "\a")
	return err
}

// Notify prints a colored notification line.
func (t *Terminal) Notify(title, body string) error {
	bold := color.New(color.Bold)
	_, err := fmt.Fprintf(t.out, "%s %s\n", bold.Sprint(title), body)
	return err
}

// Silent discards all cues. Used by tests and the MCP server.
type Silent struct{}

// PlaySound does nothing.
func (Silent) PlaySound(category Category) error { return nil }

// Notify does nothing.
func (Silent) Notify(title, body string) error { return nil }
