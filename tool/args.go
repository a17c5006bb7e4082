package tool

import (
	"fmt"

	"github.com/viant/android-mcp/internal/conv"
)

// Args represents validated invocation arguments, normalized to int, string or bool
type Args map[string]interface{}

// Has returns true if name was supplied or defaulted
func (a Args) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Int returns an integer argument, zero when absent
func (a Args) Int(name string) int {
	value, _ := conv.AsInt(a[name])
	return value
}

// IntPtr returns an integer argument, nil when absent
func (a Args) IntPtr(name string) *int {
	value, ok := conv.AsInt(a[name])
	if !ok {
		return nil
	}
	return &value
}

// String returns a string argument, empty when absent
func (a Args) String(name string) string {
	value, _ := conv.AsString(a[name])
	return value
}

// Bool returns a boolean argument, false when absent
func (a Args) Bool(name string) bool {
	value, _ := conv.AsBool(a[name])
	return value
}

// bind validates arguments against parameters, applying defaults
func bind(parameters []*Parameter, arguments map[string]interface{}) (Args, error) {
	ret := Args{}
	for _, parameter := range parameters {
		value, ok := arguments[parameter.Name]
		if !ok || value == nil {
			if parameter.Required {
				return nil, fmt.Errorf("missing required parameter '%v'", parameter.Name)
			}
			if parameter.Default != nil {
				ret[parameter.Name] = parameter.Default
			}
			continue
		}
		normalized, err := normalize(parameter, value)
		if err != nil {
			return nil, err
		}
		ret[parameter.Name] = normalized
	}
	return ret, nil
}

func normalize(parameter *Parameter, value interface{}) (interface{}, error) {
	var ret interface{}
	var ok bool
	switch parameter.Type {
	case TypeInteger:
		ret, ok = conv.AsInt(value)
	case TypeBoolean:
		ret, ok = conv.AsBool(value)
	case TypeString:
		ret, ok = conv.AsString(value)
	default:
		return nil, fmt.Errorf("parameter '%v' has unsupported type %v", parameter.Name, parameter.Type)
	}
	if !ok {
		return nil, fmt.Errorf("parameter '%v' expects %v, got %T", parameter.Name, parameter.Type, value)
	}
	return ret, nil
}
