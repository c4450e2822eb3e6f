package core

import "fmt"

// NotFoundError means a name could not be resolved at any registry tier.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("agent or skill %q not found in registry", e.Name)
}

// TransportError is a connection-level failure (DNS, refused connection),
// as opposed to a non-2xx response which just means "absent at this tier".
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("connecting to registry at %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError means a fetched descriptor or frontmatter block was malformed.
type ParseError struct {
	Resource string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Resource, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// PreconditionError means a required platform directory could not be
// resolved. It is raised before any write is attempted.
type PreconditionError struct {
	Reason string
	Err    error
}

func (e *PreconditionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *PreconditionError) Unwrap() error { return e.Err }
