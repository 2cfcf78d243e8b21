package ai

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const recommendationSchemaJSON = `{
  "type": "object",
  "required": ["recommendations"],
  "properties": {
    "summary": {"type": "string"},
    "recommendations": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "category", "description", "reason", "estimated_time", "price_range"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "category": {"type": "string"},
          "description": {"type": "string"},
          "reason": {"type": "string"},
          "estimated_time": {"type": "string"},
          "price_range": {"type": "string"}
        }
      }
    }
  }
}`

var recommendationSchema = mustSchema(recommendationSchemaJSON)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("compile schema: %v", err))
	}
	return s
}

// validateOutput checks raw against the recommendation schema.
func validateOutput(raw string) error {
	result, err := recommendationSchema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOutput, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%w: %s", ErrInvalidOutput, strings.Join(errs, "; "))
	}
	return nil
}
