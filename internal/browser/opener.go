package browser

import (
	"fmt"
	"io"

	"github.com/pkg/browser"
)

// Opener opens a URL in a new browsing context.
type Opener interface {
	Open(url string) error
}

// System opens URLs with the platform's default browser.
type System struct {
	// Stdout and Stderr receive the launcher's output. nil discards it.
	Stdout io.Writer
	Stderr io.Writer
}

func (s System) Open(url string) error {
	browser.Stdout = discardIfNil(s.Stdout)
	browser.Stderr = discardIfNil(s.Stderr)
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("could not open %s: %w", url, err)
	}
	return nil
}

func discardIfNil(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

// Game binds the play-game affordance to a fixed URL.
type Game struct {
	URL    string
	Opener Opener
}

// Play opens the game URL.
func (g Game) Play() error {
	return g.Opener.Open(g.URL)
}
