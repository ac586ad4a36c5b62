package catalog

// Gemini structured-output type names.
const (
	TypeObject = "OBJECT"
	TypeArray  = "ARRAY"
	TypeString = "STRING"
)

// Schema is a declarative description of the document a design type expects
// the text model to produce. It marshals verbatim into the responseSchema
// field of a generateContent request, which forces the backend into
// schema-conforming JSON output instead of free text.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

func obj(props map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: TypeObject, Properties: props, Required: required}
}

func arr(items *Schema) *Schema {
	return &Schema{Type: TypeArray, Items: items}
}

func str(description string) *Schema {
	return &Schema{Type: TypeString, Description: description}
}
