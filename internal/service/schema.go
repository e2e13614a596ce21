package service

import (
	"fmt"
	"strings"

	"github.com/fadilmartias/bizsim/internal/util"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema is a compiled JSON Schema used to validate model replies.
type Schema struct {
	Name     string
	compiled *jsonschema.Schema
}

// MustSchema compiles definition and panics if it is not a valid schema.
func MustSchema(name, definition string) *Schema {
	s, err := NewSchema(name, definition)
	if err != nil {
		panic(err)
	}
	return s
}

func NewSchema(name, definition string) (*Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(definition))
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", name, err)
	}

	url := "schema://" + name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return &Schema{Name: name, compiled: compiled}, nil
}

// ValidateJSON strips markdown fences from raw, then checks the remainder
// against the schema. The cleaned JSON is returned on success.
func (s *Schema) ValidateJSON(raw string) (string, error) {
	cleaned := util.StripCodeFences(raw)

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(cleaned))
	if err != nil {
		return "", &InvalidResponseError{Raw: raw, Err: fmt.Errorf("not valid JSON: %w", err)}
	}
	if err := s.compiled.Validate(doc); err != nil {
		return "", &InvalidResponseError{Raw: raw, Err: fmt.Errorf("schema %s: %w", s.Name, err)}
	}
	return cleaned, nil
}
