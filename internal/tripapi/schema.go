package tripapi

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// responseSchema is the minimum shape a 2xx body must have before it is
// shown as results. An empty recommendation list is allowed.
const responseSchema = `{
  "type": "object",
  "required": ["city", "recommendations"],
  "properties": {
    "city": {"type": "string", "minLength": 1},
    "summary": {"type": "string"},
    "recommendations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "category"],
        "properties": {
          "name": {"type": "string"},
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

var responseLoader = gojsonschema.NewStringLoader(responseSchema)

var compiledResponse *gojsonschema.Schema

func init() {
	s, err := gojsonschema.NewSchema(responseLoader)
	if err != nil {
		panic(fmt.Sprintf("tripapi: compile response schema: %v", err))
	}
	compiledResponse = s
}

func validateResponse(raw []byte) error {
	result, err := compiledResponse.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if result.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidResponse, strings.Join(msgs, "; "))
}
