package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
	"go.uber.org/zap"
)

// Initialize handles the initialize method
func (h *Handler) Initialize(ctx context.Context, request *jsonrpc.Request) (*InitializeResult, *jsonrpc.Error) {
	initRequest := schema.InitializeRequest{Method: schema.MethodInitialize}
	if err := json.Unmarshal(request.Params, &initRequest.Params); err != nil {
		return nil, jsonrpc.NewInvalidParamsError(fmt.Sprintf("failed to parse %v", err), request.Params)
	}
	h.clientInitialize = &initRequest.Params
	h.logger.Info("session initialized", zap.String("clientProtocol", initRequest.Params.ProtocolVersion))
	result := InitializeResult{
		ProtocolVersion: h.protocolVersion,
		ServerInfo:      h.info,
		Instructions:    h.instructions,
	}
	return &result, nil
}

// Ping handles the ping method
func (h *Handler) Ping(ctx context.Context, request *jsonrpc.Request) (*schema.PingResult, *jsonrpc.Error) {
	result := schema.PingResult{}
	return &result, nil
}
