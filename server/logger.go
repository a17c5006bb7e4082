package server

import (
	"context"
	"encoding/json"

	"github.com/viant/jsonrpc"
	"github.com/viant/jsonrpc/transport"
	"github.com/viant/mcp-protocol/schema"
)

// Logger emits notifications/message to the connected client
type Logger struct {
	name     string
	level    *schema.LoggingLevel
	notifier transport.Notifier
}

// Named returns a logger sharing level and notifier under a different name
func (l *Logger) Named(name string) *Logger {
	return &Logger{name: name, level: l.level, notifier: l.notifier}
}

// Enabled reports whether level passes the client selected threshold
func (l *Logger) Enabled(level schema.LoggingLevel) bool {
	return l.level != nil && l.level.Ordinal() <= level.Ordinal()
}

func (l *Logger) log(ctx context.Context, level schema.LoggingLevel, data any) error {
	if l.notifier == nil || !l.Enabled(level) {
		return nil
	}
	notification := &jsonrpc.Notification{Method: schema.MethodNotificationMessage}
	params := schema.LoggingMessageNotificationParams{
		Level:  level,
		Logger: &l.name,
		Data:   data,
	}
	var err error
	if notification.Params, err = json.Marshal(params); err != nil {
		return err
	}
	return l.notifier.Notify(ctx, notification)
}

func (l *Logger) Debug(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.LoggingLevelDebug, data)
}

func (l *Logger) Info(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.Info, data)
}

func (l *Logger) Notice(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.Notice, data)
}

func (l *Logger) Warning(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.Warning, data)
}

func (l *Logger) Error(ctx context.Context, data interface{}) error {
	return l.log(ctx, schema.LoggingLevelError, data)
}

// NewLogger creates a protocol logger
func NewLogger(name string, level *schema.LoggingLevel, notifier transport.Notifier) *Logger {
	return &Logger{name: name, level: level, notifier: notifier}
}
