package codec

import (
	// Go Internal Packages
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	// External Packages
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaPath = "schemas/transaction.v1.json"

//go:embed schemas/*.json
var schemaFS embed.FS

// Validator checks encoded payloads against the published value schema.
type Validator struct {
	schema *jsonschema.Schema
}

func NewValidator() (*Validator, error) {
	data, err := schemaFS.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("transaction.v1.json", bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	s, err := c.Compile("transaction.v1.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Validator{schema: s}, nil
}

// Validate checks a raw JSON payload. Numbers are compared exactly.
func (v *Validator) Validate(payload []byte) error {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return v.schema.Validate(doc)
}
