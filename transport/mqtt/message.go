package mqtt

import "github.com/viant/android-mcp/tool"

// Request methods
const (
	MethodCall = "call"
	MethodList = "list"
)

// Request represents a command read from the command topic
type Request struct {
	ID        string                 `json:"id,omitempty"`
	Method    string                 `json:"method,omitempty"`
	Name      string                 `json:"name,omitempty"`
	Arguments map[string]interface{} `json:"arguments,omitempty"`
}

// Reply represents a message published to the response topic
type Reply struct {
	ID         string             `json:"id"`
	Method     string             `json:"method"`
	Name       string             `json:"name,omitempty"`
	Success    bool               `json:"success"`
	Response   *tool.Response     `json:"response,omitempty"`
	Operations []*tool.Descriptor `json:"operations,omitempty"`
	Error      string             `json:"error,omitempty"`
	DurationMs int64              `json:"durationMs"`
	Timestamp  int64              `json:"timestamp"`
}
