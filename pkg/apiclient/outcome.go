package apiclient

import "fmt"

// Outcome is the result of a submission. It is one of TransportFailure,
// StatusFailure, Rejected or Accepted; switch on the concrete type.
type Outcome interface {
	outcome()
	String() string
}

// TransportFailure means no usable reply arrived: the request could not be
// sent, or the reply body was not the expected JSON.
type TransportFailure struct {
	Err error
}

// StatusFailure means the backend answered with a non-2xx status.
// Callers do not redirect and take no further action.
type StatusFailure struct {
	Code   int
	Status string
}

// Rejected means the backend answered 2xx with success=false.
// Message is the backend's error text, meant for the user.
type Rejected struct {
	Message string
}

// Accepted means the backend answered 2xx with success=true.
type Accepted struct {
	RedirectTo string
}

func (TransportFailure) outcome() {}
func (StatusFailure) outcome()    {}
func (Rejected) outcome()         {}
func (Accepted) outcome()         {}

func (o TransportFailure) String() string { return fmt.Sprintf("transport failure: %v", o.Err) }
func (o StatusFailure) String() string    { return fmt.Sprintf("status %d: %s", o.Code, o.Status) }
func (o Rejected) String() string         { return "rejected: " + o.Message }
func (o Accepted) String() string         { return "accepted, redirect to " + o.RedirectTo }
