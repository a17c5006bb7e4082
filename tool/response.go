package tool

import (
	"fmt"
	"strings"
)

// Kind represents a response payload kind
type Kind string

// Payload kinds
const (
	KindData   Kind = "data"
	KindText   Kind = "text"
	KindBinary Kind = "binary"
)

// FailureKind classifies failures
type FailureKind string

// Failure kinds
const (
	FailureUnknownOperation  FailureKind = "unknown_operation"
	FailureInvalidParameters FailureKind = "invalid_parameters"
	FailureUnreachable       FailureKind = "unreachable"
	FailureTimeout           FailureKind = "timeout"
	FailureExecution         FailureKind = "execution"
	FailureOperation         FailureKind = "operation"
	FailureCancelled         FailureKind = "cancelled"
	FailureInternal          FailureKind = "internal"
)

// Failure represents a failed invocation
type Failure struct {
	Kind    FailureKind `json:"kind"`
	Message string      `json:"message"`
}

// Response represents an invocation envelope
type Response struct {
	Kind     Kind        `json:"kind,omitempty"`
	Data     interface{} `json:"data,omitempty"`
	Text     string      `json:"text,omitempty"`
	Binary   []byte      `json:"binary,omitempty"`
	MimeType string      `json:"mimeType,omitempty"`
	Failure  *Failure    `json:"failure,omitempty"`
	// Omitted lists fields a composite operation could not collect
	Omitted []string `json:"omitted,omitempty"`
}

// Success returns true unless the response carries a failure
func (r *Response) Success() bool {
	return r.Failure == nil
}

// Partial returns true when a successful response misses some fields
func (r *Response) Partial() bool {
	return r.Success() && len(r.Omitted) > 0
}

// Note returns the partial data message, empty for complete responses
func (r *Response) Note() string {
	if !r.Partial() {
		return ""
	}
	return "partial data: unavailable " + strings.Join(r.Omitted, ", ")
}

// NewData creates a structured data response
func NewData(data interface{}) *Response {
	return &Response{Kind: KindData, Data: data}
}

// NewText creates a text response
func NewText(text string) *Response {
	return &Response{Kind: KindText, Text: text}
}

// NewBinary creates a binary response
func NewBinary(data []byte, mimeType string) *Response {
	return &Response{Kind: KindBinary, Binary: data, MimeType: mimeType}
}

// NewFailure creates a failure response
func NewFailure(kind FailureKind, message string) *Response {
	return &Response{Kind: KindText, Text: message, Failure: &Failure{Kind: kind, Message: message}}
}

// NewFailuref creates a failure response with a formatted message
func NewFailuref(kind FailureKind, format string, args ...interface{}) *Response {
	return NewFailure(kind, fmt.Sprintf(format, args...))
}

// Status reports the outcome of an action as "<action>: Success" or a failure "<action>: Failed"
func Status(action string, ok bool) *Response {
	if ok {
		return NewText(action + ": Success")
	}
	return NewFailure(FailureOperation, action+": Failed")
}
