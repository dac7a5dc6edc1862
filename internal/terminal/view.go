package terminal

// view.go = recommend.View for the command line.

import (
	"fmt"
	"io"
	"sync"

	"movierecommender/internal/recommend"
	"movierecommender/internal/render"

	"github.com/fatih/color"
)

// View prints states and alerts to a terminal.
type View struct {
	mu      sync.Mutex
	out     io.Writer
	html    bool   // print the HTML fragment instead of text cards
	gameURL string // shown next to the loading line
	state   recommend.State
}

func NewView(out io.Writer, html bool, gameURL string) *View {
	return &View{out: out, html: html, gameURL: gameURL, state: recommend.IdleState()}
}

// State returns the last rendered state.
func (v *View) State() recommend.State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *View) Render(s recommend.State) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = s

	switch s.Phase {
	case recommend.PhaseLoading:
		color.New(color.FgCyan).Fprintln(v.out, "Loading recommendations...")
		if s.PlayGame && v.gameURL != "" {
			color.New(color.FgHiBlack).Fprintf(v.out, "While you wait, play a game: %s (mrec play)\n", v.gameURL)
		}
	case recommend.PhaseResults, recommend.PhaseEmpty:
		if v.html {
			fmt.Fprintln(v.out, render.Fragment(s))
			return
		}
		fmt.Fprint(v.out, render.Text(s.Results))
	case recommend.PhaseFailed:
		if v.html {
			fmt.Fprintln(v.out, render.Fragment(s))
			return
		}
		color.New(color.FgRed).Fprintf(v.out, "Error fetching recommendations: %s\n", s.Error)
	}
}

func (v *View) Alert(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	color.New(color.FgYellow).Fprintf(v.out, "⚠ %s\n", message)
}
