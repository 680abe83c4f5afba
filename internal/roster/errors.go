package roster

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is against a *FetchError.
var (
	ErrTransport = errors.New("roster: transport failure")
	ErrStatus    = errors.New("roster: unexpected HTTP status")
	ErrDecode    = errors.New("roster: malformed response")
)

// ErrorKind classifies why a fetch failed.
type ErrorKind int

const (
	KindTransport ErrorKind = iota
	KindStatus
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "network error"
	case KindStatus:
		return "server error"
	case KindDecode:
		return "invalid data"
	default:
		return "unknown"
	}
}

// FetchError reports a failed roster fetch.
type FetchError struct {
	Kind       ErrorKind
	URL        string
	StatusCode int // set for KindStatus
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	default:
		return fmt.Sprintf("fetch %s: %s: %v", e.URL, e.Kind, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is matches the sentinel for e.Kind.
func (e *FetchError) Is(target error) bool {
	switch e.Kind {
	case KindTransport:
		return target == ErrTransport
	case KindStatus:
		return target == ErrStatus
	case KindDecode:
		return target == ErrDecode
	}
	return false
}
