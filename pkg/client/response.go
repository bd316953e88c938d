package client

import (
	"net/http"

	"github.com/tidwall/gjson"
)

// Response - raw outcome of a single API call
type Response struct {
	Path       string
	StatusCode int
	Body       []byte
}

// OK - whether the server responded with 200
func (r *Response) OK() bool {
	return r.StatusCode == http.StatusOK
}

// Text - response body as received
func (r *Response) Text() string {
	return string(r.Body)
}

// Field - looks up a dotted path (ie. data.token) in the JSON body
// Returns MalformedBodyError if the body is not JSON and MissingFieldError if the value
// is empty (absent, null, false, "", {} or []) or its type is not one of allowed.
// No allowed types means any non-empty value is accepted.
func (r *Response) Field(path string, allowed ...gjson.Type) (gjson.Result, error) {
	if !gjson.ValidBytes(r.Body) {
		return gjson.Result{}, &MalformedBodyError{Body: r.Body}
	}

	value := gjson.GetBytes(r.Body, path)
	if isEmpty(value) || !hasType(value, allowed) {
		return gjson.Result{}, &MissingFieldError{Field: path}
	}

	return value, nil
}

func isEmpty(value gjson.Result) bool {
	switch {
	case !value.Exists():
		return true
	case value.Type == gjson.Null, value.Type == gjson.False:
		return true
	case value.Type == gjson.String:
		return value.Str == ""
	case value.IsArray():
		return len(value.Array()) == 0
	case value.IsObject():
		return len(value.Map()) == 0
	}

	return false
}

func hasType(value gjson.Result, allowed []gjson.Type) bool {
	if len(allowed) == 0 {
		return true
	}

	for _, t := range allowed {
		if value.Type == t {
			return true
		}
	}

	return false
}

// Message - human readable message from the {success, message, data, code} envelope, if any
func (r *Response) Message() string {
	if !gjson.ValidBytes(r.Body) {
		return ""
	}

	return gjson.GetBytes(r.Body, "message").String()
}
