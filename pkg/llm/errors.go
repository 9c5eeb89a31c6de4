package llm

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
)

// ConfigError reports missing client configuration. It is returned before
// any request is sent.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() (msg string) {
	msg = "generation API not configured: " + e.Message
	return msg
}

// TransportError wraps a connection failure, timeout or cancellation.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() (msg string) {
	msg = fmt.Sprintf("generation API request failed: %v", e.Err)
	return msg
}

func (e *TransportError) Unwrap() (err error) {
	err = e.Err
	return err
}

// UpstreamError is a non-200 response from the generation API. Body is the
// response body as received; Message is the error message parsed out of it,
// when there was one.
type UpstreamError struct {
	StatusCode int
	Body       string
	Message    string
}

func (e *UpstreamError) Error() (msg string) {
	msg = fmt.Sprintf("generation API returned status %d: %s", e.StatusCode, e.Body)
	return msg
}

// PayloadError means the model answered with something other than the
// expected content.
type PayloadError struct {
	Reason  string
	Content string
	Err     error
}

func (e *PayloadError) Error() (msg string) {
	msg = "malformed generation payload: " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *PayloadError) Unwrap() (err error) {
	err = e.Err
	return err
}

// classify converts an error from the chat completion call into one of the
// typed errors above. body is the raw error response, if one was captured.
func classify(err error, body string) (typed error) {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		upstream := &UpstreamError{StatusCode: apiErr.HTTPStatusCode, Body: body, Message: apiErr.Message}
		if upstream.Body == "" {
			upstream.Body = apiErr.Message
		}
		typed = upstream
		return typed
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		upstream := &UpstreamError{StatusCode: reqErr.HTTPStatusCode, Body: body}
		if upstream.Body == "" {
			upstream.Body = reqErr.Error()
		}
		typed = upstream
		return typed
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		typed = &PayloadError{Reason: "response body is not a chat completion", Err: err}
		return typed
	}

	typed = &TransportError{Err: err}
	return typed
}
