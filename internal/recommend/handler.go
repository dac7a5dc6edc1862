package recommend

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

// Fetcher asks the recommendation API for movies similar to q.
type Fetcher interface {
	Recommend(ctx context.Context, q Query) ([]Recommendation, error)
}

// Handler runs the request/render flow for one UI surface.
// Each activation reads fresh input, issues at most one request and ends in
// exactly one terminal state.
type Handler struct {
	fetcher Fetcher
	view    View
	guard   Guard
	log     zerolog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithGuard replaces the Handler's own in-flight flag, e.g. with a
// per-session guard from a FlightTable.
func WithGuard(g Guard) Option {
	return func(h *Handler) {
		h.guard = g
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(h *Handler) {
		h.log = l
	}
}

func NewHandler(fetcher Fetcher, view View, opts ...Option) *Handler {
	h := &Handler{
		fetcher: fetcher,
		view:    view,
		guard:   &Flight{},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Activate validates in, fetches recommendations and renders the outcome.
//
// A *ValidationError is alerted and returned without touching the view state.
// ErrInFlight is returned when a previous activation has not finished yet.
// Otherwise the loading state is rendered, followed by exactly one terminal
// state, and the fetch error (if any) is returned.
func (h *Handler) Activate(ctx context.Context, in Input) error {
	q, err := ParseQuery(in)
	if err != nil {
		h.log.Debug().Err(err).Msg("activation rejected")
		h.view.Alert(err.Error())
		return err
	}

	if !h.guard.TryStart() {
		h.log.Debug().Str("name", q.Name).Msg("activation ignored, request already in flight")
		return ErrInFlight
	}
	defer h.guard.Done()

	h.log.Debug().Str("target", Target(q)).Msg("fetching recommendations")
	h.view.Render(LoadingState())

	recs, err := h.fetcher.Recommend(ctx, q)
	if err != nil {
		h.logFailure(err)
		h.view.Render(FailedState(Message(err)))
		return err
	}

	h.log.Debug().Int("count", len(recs)).Msg("received recommendations")
	h.view.Render(ResultState(recs))
	return nil
}

// ActivateAsync runs Activate on its own goroutine. The returned channel
// yields Activate's result once and is then closed.
func (h *Handler) ActivateAsync(ctx context.Context, in Input) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- h.Activate(ctx, in)
	}()
	return done
}

func (h *Handler) logFailure(err error) {
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		h.log.Warn().Int("status", serverErr.StatusCode).Str("body", serverErr.Message).Msg("recommendation API returned an error")
		return
	}
	h.log.Warn().Err(err).Msg("error fetching recommendations")
}
