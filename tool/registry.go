package tool

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/viant/android-mcp/adb"
	"github.com/viant/android-mcp/internal/metrics"
	"github.com/viant/android-mcp/internal/stage"
	"go.uber.org/zap"
)

// Handler executes an operation with validated arguments.
//
// A returned error is classified by the registry; soft failures are returned as
// failure responses.
type Handler func(ctx context.Context, args Args) (*Response, error)

// Operation represents a registered operation
type Operation struct {
	Descriptor
	Handler Handler
}

// Registry represents the operation catalog
type Registry struct {
	mux        sync.RWMutex
	operations map[string]*Operation
	order      []string
	logger     *zap.Logger
	stage      *stage.Service
}

// Register adds an operation; names must be unique
func (r *Registry) Register(operation *Operation) error {
	if operation == nil || operation.Name == "" {
		return errors.New("operation name was empty")
	}
	if operation.Handler == nil {
		return fmt.Errorf("operation %v has no handler", operation.Name)
	}
	r.mux.Lock()
	defer r.mux.Unlock()
	if _, ok := r.operations[operation.Name]; ok {
		return fmt.Errorf("operation %v already registered", operation.Name)
	}
	r.operations[operation.Name] = operation
	r.order = append(r.order, operation.Name)
	return nil
}

// Descriptors returns descriptors in registration order
func (r *Registry) Descriptors() []*Descriptor {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]*Descriptor, 0, len(r.order))
	for _, name := range r.order {
		ret = append(ret, &r.operations[name].Descriptor)
	}
	return ret
}

// Lookup returns a descriptor by name
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	operation, ok := r.operations[name]
	if !ok {
		return nil, false
	}
	return &operation.Descriptor, true
}

// Invoke dispatches name with arguments; it always returns a response
func (r *Registry) Invoke(ctx context.Context, name string, arguments map[string]interface{}) (ret *Response) {
	r.mux.RLock()
	operation, ok := r.operations[name]
	r.mux.RUnlock()
	if !ok {
		metrics.OperationInvocations.WithLabelValues("unknown", string(FailureUnknownOperation)).Inc()
		return NewFailuref(FailureUnknownOperation, "unsupported operation: %v", name)
	}

	id := uuid.New().String()
	logger := r.logger.With(zap.String("operation", name), zap.String("invocation", id))
	started := time.Now()
	defer func() {
		if recovered := recover(); recovered != nil {
			logger.Error("operation panicked", zap.Any("panic", recovered), zap.ByteString("stack", debug.Stack()))
			ret = NewFailuref(FailureInternal, "%v failed unexpectedly: %v", name, recovered)
		}
		elapsed := time.Since(started)
		status := "success"
		if ret.Failure != nil {
			status = string(ret.Failure.Kind)
		} else if ret.Partial() {
			status = "partial"
		}
		metrics.OperationInvocations.WithLabelValues(name, status).Inc()
		metrics.OperationLatency.WithLabelValues(name).Observe(elapsed.Seconds())
		logger.Debug("operation completed", zap.String("status", status), zap.Duration("elapsed", elapsed))
	}()

	args, err := bind(operation.Parameters, arguments)
	if err != nil {
		return NewFailuref(FailureInvalidParameters, "invalid parameters for %v: %v", name, err)
	}
	response, err := operation.Handler(ctx, args)
	if err != nil {
		logger.Warn("operation failed", zap.Error(err))
		return classify(name, err)
	}
	if response == nil {
		return NewFailuref(FailureInternal, "%v returned no response", name)
	}
	return response
}

func classify(name string, err error) *Response {
	var timeoutErr *adb.TimeoutError
	var unreachableErr *adb.UnreachableError
	var executionErr *adb.ExecutionError
	switch {
	case errors.As(err, &timeoutErr):
		return NewFailuref(FailureTimeout, "%v timed out: %v", name, err)
	case errors.As(err, &unreachableErr):
		return NewFailuref(FailureUnreachable, "%v failed, target not found/unreachable: %v", name, err)
	case errors.As(err, &executionErr):
		return NewFailuref(FailureExecution, "%v failed, adb could not be started: %v", name, err)
	case errors.Is(err, context.DeadlineExceeded):
		return NewFailuref(FailureTimeout, "%v timed out: %v", name, err)
	case errors.Is(err, context.Canceled):
		return NewFailuref(FailureCancelled, "%v cancelled", name)
	}
	return NewFailuref(FailureOperation, "%v failed: %v", name, err)
}

// NewRegistry creates an empty registry
func NewRegistry(options ...Option) *Registry {
	ret := &Registry{
		operations: map[string]*Operation{},
		logger:     zap.NewNop(),
	}
	for _, option := range options {
		option(ret)
	}
	if ret.stage == nil {
		ret.stage = stage.New(nil)
	}
	return ret
}
