package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/viant/jsonrpc"
)

type cancelledParams struct {
	RequestId interface{} `json:"requestId"`
	Reason    string      `json:"reason,omitempty"`
}

// Cancel handles notifications/cancelled; cancelling the request context kills its bridge process
func (h *Handler) Cancel(ctx context.Context, notification *jsonrpc.Notification) *jsonrpc.Error {
	var params cancelledParams
	if err := json.Unmarshal(notification.Params, &params); err != nil {
		return jsonrpc.NewParsingError(fmt.Sprintf("failed to parse notification: %v", err), notification.Params)
	}
	key := requestKey(params.RequestId)
	if key == "" {
		return jsonrpc.NewInvalidParamsError("invalid requestId", notification.Params)
	}
	h.CancelOperation(key)
	return nil
}

// CancelOperation cancels an in-flight request by its request id key
func (h *Handler) CancelOperation(key string) {
	if active, ok := h.activeContexts.Get(key); ok {
		active.CancelFunc()
		h.activeContexts.Delete(key)
	}
}

// release removes a finished request unless the key was already taken over by another request
func (h *Handler) release(key string, active *activeContext) {
	if current, ok := h.activeContexts.Get(key); ok && current == active {
		h.activeContexts.Delete(key)
	}
}

// requestKey returns the canonical form of a JSON-RPC id, empty when absent
func requestKey(id interface{}) string {
	switch actual := id.(type) {
	case nil:
		return ""
	case string:
		return actual
	case float64:
		return strconv.FormatFloat(actual, 'f', -1, 64)
	case json.Number:
		return actual.String()
	}
	return fmt.Sprint(id)
}
