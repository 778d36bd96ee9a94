package mihomo

import (
	"errors"
	"fmt"
)

var (
	// ErrFetchProfile is attached to every error returned by FetchProfile.
	ErrFetchProfile = errors.New("failed to fetch profile")
	// ErrRequest covers failures below http: building the request, dialing, cancellation and
	// reading the body.
	ErrRequest = errors.New("profile request failed")
	// ErrResponseStatus is returned when the api answers with a non 2xx status.
	ErrResponseStatus = errors.New("unexpected response status")
	// ErrDecode is returned when the body is not valid JSON or does not match the profile schema.
	ErrDecode = errors.New("failed to decode profile")

	ErrInvalidLanguage = errors.New("invalid language")
)

// StatusError carries the status of a rejected response.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api returned status %s", e.Status)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrResponseStatus
}

type LanguageError struct {
	Value string
	Err   error
}

func (e *LanguageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unsupported language %q: %s", e.Value, e.Err.Error())
	}

	return fmt.Sprintf("unsupported language %q", e.Value)
}

func (e *LanguageError) Is(target error) bool {
	return target == ErrInvalidLanguage
}

func (e *LanguageError) Unwrap() error {
	return e.Err
}

// ErrorKind is the coarse classification of a fetch failure.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindRequest
	KindStatus
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	case KindUnknown:
		fallthrough
	default:
		return "unknown"
	}
}

// Classify reports which stage of a fetch produced err.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrDecode):
		return KindDecode
	case errors.Is(err, ErrResponseStatus):
		return KindStatus
	case errors.Is(err, ErrRequest):
		return KindRequest
	default:
		return KindUnknown
	}
}
