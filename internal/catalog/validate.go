package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/elara/elara-outfits/internal/types"
)

//go:embed schema.json
var catalogSchema []byte

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates schema violations found in a catalog document.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("catalog validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// Parse validates raw catalog JSON against the embedded schema and unmarshals
// it. Schema violations come back as a *ValidationError.
func Parse(data []byte) ([]types.Product, error) {
	schemaLoader := gojsonschema.NewBytesLoader(catalogSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("failed to run schema validation: %w", err)
	}

	if !result.Valid() {
		ve := &ValidationError{}
		for _, desc := range result.Errors() {
			ve.Errors = append(ve.Errors, FieldError{
				Field:   desc.Field(),
				Message: desc.Description(),
			})
		}
		return nil, ve
	}

	var products []types.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}
	return products, nil
}

// ValidateFile schema-checks a catalog file without loading it for serving.
func ValidateFile(path string) ([]types.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return Parse(data)
}
