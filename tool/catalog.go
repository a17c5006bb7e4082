package tool

import (
	"github.com/viant/android-mcp/adb"
	"github.com/viant/android-mcp/internal/stage"
)

// android binds catalog handlers to a device client
type android struct {
	client *adb.Client
	stage  *stage.Service
}

func (a *android) operations() []*Operation {
	var ret []*Operation
	ret = append(ret, a.deviceOperations()...)
	ret = append(ret, a.inputOperations()...)
	ret = append(ret, a.appOperations()...)
	ret = append(ret, a.fileOperations()...)
	ret = append(ret, a.systemOperations()...)
	ret = append(ret, a.shellOperations()...)
	ret = append(ret, a.controlOperations()...)
	return ret
}

func operation(name, description string, handler Handler, parameters ...*Parameter) *Operation {
	return &Operation{
		Descriptor: Descriptor{Name: name, Description: description, Parameters: parameters},
		Handler:    handler,
	}
}

// NewAndroid creates a registry exposing the Android operation catalog for client
func NewAndroid(client *adb.Client, options ...Option) (*Registry, error) {
	registry := NewRegistry(options...)
	catalog := &android{client: client, stage: registry.stage}
	for _, item := range catalog.operations() {
		if err := registry.Register(item); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
