package tool

// Type represents a parameter primitive type
type Type string

// Parameter types
const (
	TypeInteger Type = "integer"
	TypeString  Type = "string"
	TypeBoolean Type = "boolean"
)

// Parameter represents an operation parameter
type Parameter struct {
	Name        string      `json:"name" yaml:"name"`
	Type        Type        `json:"type" yaml:"type"`
	Required    bool        `json:"required,omitempty" yaml:"required"`
	Default     interface{} `json:"default,omitempty" yaml:"default"`
	Description string      `json:"description,omitempty" yaml:"description"`
}

// Descriptor represents an operation catalog entry
type Descriptor struct {
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Parameters  []*Parameter `json:"parameters,omitempty" yaml:"parameters"`
}

// Parameter returns a parameter by name
func (d *Descriptor) Parameter(name string) *Parameter {
	for _, parameter := range d.Parameters {
		if parameter.Name == name {
			return parameter
		}
	}
	return nil
}

// InputSchema returns the JSON schema of the parameters
func (d *Descriptor) InputSchema() map[string]interface{} {
	properties := map[string]interface{}{}
	required := make([]string, 0)
	for _, parameter := range d.Parameters {
		property := map[string]interface{}{"type": string(parameter.Type)}
		if parameter.Description != "" {
			property["description"] = parameter.Description
		}
		if parameter.Default != nil {
			property["default"] = parameter.Default
		}
		properties[parameter.Name] = property
		if parameter.Required {
			required = append(required, parameter.Name)
		}
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

// Required creates a required parameter
func Required(name string, kind Type, description string) *Parameter {
	return &Parameter{Name: name, Type: kind, Required: true, Description: description}
}

// Optional creates an optional parameter; defaultValue may be nil
func Optional(name string, kind Type, description string, defaultValue interface{}) *Parameter {
	return &Parameter{Name: name, Type: kind, Default: defaultValue, Description: description}
}
