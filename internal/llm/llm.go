package llm

import (
	"errors"
	"fmt"
	"strings"
)

// Failure reasons carried by UpstreamError.
const (
	ReasonTransport  = "transport"
	ReasonUnparsable = "unparsable"
)

// UpstreamError wraps any failure of an LLM provider call, whether the
// request never completed or the response could not be turned into usable
// output. Callers treat either reason as "skip this tier and fall back".
type UpstreamError struct {
	Reason string
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("llm upstream failure (%s)", e.Reason)
	}
	return fmt.Sprintf("llm upstream failure (%s): %v", e.Reason, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Transport wraps a network, HTTP, or provider-side error.
func Transport(err error) *UpstreamError {
	return &UpstreamError{Reason: ReasonTransport, Err: err}
}

// Unparsable wraps a response that came back but could not be decoded.
func Unparsable(err error) *UpstreamError {
	return &UpstreamError{Reason: ReasonUnparsable, Err: err}
}

// ReasonOf returns the upstream failure reason, or "" when err is not an
// UpstreamError.
func ReasonOf(err error) string {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Reason
	}
	return ""
}

// ExtractJSONArray pulls the outermost JSON array out of free-form model
// output. Providers often wrap the payload in prose or markdown fences, so
// everything from the first '[' to the last ']' is taken as the candidate.
func ExtractJSONArray(content string) (string, bool) {
	start := strings.Index(content, "[")
	end := strings.LastIndex(content, "]")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return content[start : end+1], true
}
