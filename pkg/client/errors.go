package client

import "fmt"

// TransportError - request never produced an HTTP response (connection refused, DNS, cancelled context, ...)
type TransportError struct {
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %v failed: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError - server responded with other status than 200
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%v responded with unexpected status code %d", e.Path, e.StatusCode)
}

// MalformedBodyError - response body is not valid JSON
type MalformedBodyError struct {
	Body []byte
}

func (e *MalformedBodyError) Error() string {
	return fmt.Sprintf("response body is not valid JSON (%d bytes)", len(e.Body))
}

// MissingFieldError - expected field is absent, null or empty
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("field %v is missing in response", e.Field)
}
