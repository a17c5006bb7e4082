package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
	"go.uber.org/zap"
)

// ListTools handles the tools/list method
func (h *Handler) ListTools(ctx context.Context, request *jsonrpc.Request) (*ListToolsResult, *jsonrpc.Error) {
	listToolsRequest := &schema.ListToolsRequest{Method: request.Method}
	if len(request.Params) > 0 {
		if err := json.Unmarshal(request.Params, &listToolsRequest.Params); err != nil {
			return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
		}
	}
	descriptors := h.registry.Descriptors()
	ret := &ListToolsResult{Tools: make([]*Tool, 0, len(descriptors))}
	for _, descriptor := range descriptors {
		ret.Tools = append(ret.Tools, newTool(descriptor))
	}
	return ret, nil
}

type callToolParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments,omitempty"`
}

// CallTool handles the tools/call method
func (h *Handler) CallTool(ctx context.Context, request *jsonrpc.Request) (*CallToolResult, *jsonrpc.Error) {
	params := &callToolParams{}
	if err := json.Unmarshal(request.Params, params); err != nil {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse: %v", err), request.Params)
	}
	if params.Name == "" {
		return nil, jsonrpc.NewInvalidParamsError("tool name was empty", request.Params)
	}
	started := time.Now()
	response := h.registry.Invoke(ctx, params.Name, params.Arguments)
	result, err := newCallToolResult(response)
	if err != nil {
		return nil, jsonrpc.NewInternalError(err.Error(), nil)
	}
	elapsed := time.Since(started)
	switch {
	case !response.Success():
		_ = h.Logger.Warning(ctx, map[string]interface{}{"tool": params.Name, "failure": response.Failure.Kind, "message": response.Failure.Message})
	case response.Partial():
		_ = h.Logger.Notice(ctx, map[string]interface{}{"tool": params.Name, "omitted": response.Omitted})
	default:
		_ = h.Logger.Debug(ctx, map[string]interface{}{"tool": params.Name, "elapsed": elapsed.String()})
	}
	h.logger.Debug("tools/call", zap.String("tool", params.Name), zap.Bool("success", response.Success()), zap.Duration("elapsed", elapsed))
	return result, nil
}
