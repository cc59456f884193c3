// Package schemas validates JSON artifacts against JSON Schema documents.
package schemas

import "github.com/xeipuuv/gojsonschema"

const inlineSchema = "(inline schema)"

// ValidateBytes validates an encoded document against schema content.
// A violation is returned as *ValidationError; an unloadable schema or
// document as *SchemaLoadError.
func ValidateBytes(schemaContent string, data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaContent),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return &SchemaLoadError{
			Path:    inlineSchema,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
