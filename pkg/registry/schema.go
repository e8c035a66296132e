// pkg/registry/schema.go
package registry

// FormRegistry is the serialized catalogue of enquiry forms, consumed by
// tooling and exported for frontend clients.
type FormRegistry struct {
	Version     string `json:"version"`
	LastUpdated string `json:"lastUpdated"`
	Forms       []Form `json:"forms"`
}

type Form struct {
	Name              string                 `json:"name"`
	DisplayName       string                 `json:"displayName"`
	Description       string                 `json:"description,omitempty"`
	EndpointPath      string                 `json:"endpointPath"`
	ReadPath          string                 `json:"readPath,omitempty"`
	NameRequired      bool                   `json:"nameRequired"`
	RequiredPaxFields []string               `json:"requiredPaxFields"`
	CategoryField     string                 `json:"categoryField,omitempty"`
	DocumentTypes     []string               `json:"documentTypes,omitempty"`
	CountStrategy     string                 `json:"countStrategy"`
	FixedCount        int                    `json:"fixedCount,omitempty"`
	FieldSchema       map[string]interface{} `json:"fieldSchema,omitempty"`
}
