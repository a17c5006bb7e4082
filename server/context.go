package server

import (
	"context"
	"encoding/json"

	"github.com/viant/android-mcp/internal/conv"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

type activeContext struct {
	context.Context
	context.CancelFunc
}

func newActiveContext(ctx context.Context, cancel context.CancelFunc, request *jsonrpc.Request) (*activeContext, context.Context) {
	if progressToken := extractProgressToken(request); progressToken != nil {
		ctx = context.WithValue(ctx, schema.TokenProgressContextKey, *progressToken)
	}
	return &activeContext{Context: ctx, CancelFunc: cancel}, ctx
}

func extractProgressToken(request *jsonrpc.Request) *schema.ProgressToken {
	meta := parameterMeta(request)
	value, ok := meta["progressToken"]
	if !ok {
		return nil
	}
	token, ok := conv.AsInt(value)
	if !ok {
		return nil
	}
	progressToken := schema.ProgressToken(token)
	return &progressToken
}

func parameterMeta(request *jsonrpc.Request) map[string]interface{} {
	type paramsMeta struct {
		Meta map[string]interface{} `json:"_meta,omitempty"`
	}
	meta := &paramsMeta{}
	if len(request.Params) > 0 {
		if err := json.Unmarshal(request.Params, meta); err == nil && meta.Meta != nil {
			return meta.Meta
		}
	}
	return map[string]interface{}{}
}
