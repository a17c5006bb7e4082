package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"

	"github.com/viant/android-mcp/tool"
	"github.com/viant/mcp-protocol/schema"
)

// Content types
const (
	ContentText  = "text"
	ContentImage = "image"
)

// InitializeResult represents the initialize result
type InitializeResult struct {
	ProtocolVersion string                `json:"protocolVersion"`
	ServerInfo      schema.Implementation `json:"serverInfo"`
	Capabilities    Capabilities          `json:"capabilities"`
	Instructions    *string               `json:"instructions,omitempty"`
}

// Capabilities advertises tools and logging; both are always present
type Capabilities struct {
	Tools   ToolsCapability `json:"tools"`
	Logging struct{}        `json:"logging"`
}

// ToolsCapability represents the tools capability
type ToolsCapability struct {
	ListChanged bool `json:"listChanged"`
}

// Tool represents a tools/list entry
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ListToolsResult represents the tools/list result
type ListToolsResult struct {
	Tools []*Tool `json:"tools"`
}

// Content represents a tools/call content element
type Content struct {
	Type     string `json:"type"`
	Text     string `json:"text,omitempty"`
	Data     string `json:"data,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
}

// CallToolResult represents the tools/call result
type CallToolResult struct {
	Content           []*Content             `json:"content"`
	StructuredContent map[string]interface{} `json:"structuredContent,omitempty"`
	IsError           bool                   `json:"isError,omitempty"`
}

func newTool(descriptor *tool.Descriptor) *Tool {
	return &Tool{
		Name:        descriptor.Name,
		Description: descriptor.Description,
		InputSchema: descriptor.InputSchema(),
	}
}

// newCallToolResult maps a response envelope onto MCP content
func newCallToolResult(response *tool.Response) (*CallToolResult, error) {
	ret := &CallToolResult{}
	if !response.Success() {
		ret.IsError = true
		ret.Content = append(ret.Content, &Content{Type: ContentText, Text: response.Failure.Message})
		return ret, nil
	}
	switch response.Kind {
	case tool.KindData:
		data, err := json.MarshalIndent(response.Data, "", "  ")
		if err != nil {
			return nil, err
		}
		ret.Content = append(ret.Content, &Content{Type: ContentText, Text: string(data)})
		if bytes.HasPrefix(data, []byte("{")) {
			structured := map[string]interface{}{}
			if err = json.Unmarshal(data, &structured); err == nil {
				ret.StructuredContent = structured
			}
		}
	case tool.KindBinary:
		ret.Content = append(ret.Content, &Content{
			Type:     ContentImage,
			Data:     base64.StdEncoding.EncodeToString(response.Binary),
			MimeType: response.MimeType,
		})
	default:
		ret.Content = append(ret.Content, &Content{Type: ContentText, Text: response.Text})
	}
	if note := response.Note(); note != "" {
		ret.Content = append(ret.Content, &Content{Type: ContentText, Text: note})
	}
	return ret, nil
}
