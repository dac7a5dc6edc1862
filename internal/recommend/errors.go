package recommend

import "errors"

// ErrInFlight is returned when an activation arrives while the flow
// already has a request outstanding. The activation is ignored.
var ErrInFlight = errors.New("a recommendation request is already in progress")

// ValidationError reports missing or malformed input. No request is issued.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ServerError is a non-2xx response. Message is the response body verbatim.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return e.Message
}

// TransportError covers everything else that can fail between dispatch and
// a decoded result: network failures, unreadable bodies, malformed JSON.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return "request failed"
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Message returns the text shown to the user for a failed activation.
func Message(err error) string {
	var serverErr *ServerError
	if errors.As(err, &serverErr) {
		return serverErr.Message
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Error()
	}
	return err.Error()
}
