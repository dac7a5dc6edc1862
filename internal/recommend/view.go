package recommend

// Phase is where a flow currently stands.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseResults Phase = "results"
	PhaseEmpty   Phase = "empty"
	PhaseFailed  Phase = "failed"
)

// State is everything a view needs to draw the results area, the loading
// indicator and the play-game affordance.
type State struct {
	Phase    Phase            `json:"phase"`
	Loading  bool             `json:"loading"`
	PlayGame bool             `json:"play_game"`
	Results  []Recommendation `json:"results,omitempty"`
	Error    string           `json:"error,omitempty"`
}

// Terminal reports whether the state ends an activation.
func (s State) Terminal() bool {
	switch s.Phase {
	case PhaseResults, PhaseEmpty, PhaseFailed:
		return true
	}
	return false
}

// IdleState is the state before any activation.
func IdleState() State {
	return State{Phase: PhaseIdle}
}

// LoadingState is rendered as soon as a request is dispatched.
func LoadingState() State {
	return State{Phase: PhaseLoading, Loading: true, PlayGame: true}
}

// ResultState is the terminal state for a successful response.
func ResultState(recs []Recommendation) State {
	if len(recs) == 0 {
		return State{Phase: PhaseEmpty}
	}
	return State{Phase: PhaseResults, Results: recs}
}

// FailedState is the terminal state for any failed request.
func FailedState(message string) State {
	return State{Phase: PhaseFailed, Error: message}
}

// View is the UI surface a Handler drives.
type View interface {
	// Render replaces whatever the view shows with s.
	Render(s State)
	// Alert shows a blocking warning. It does not change the rendered state.
	Alert(message string)
}
