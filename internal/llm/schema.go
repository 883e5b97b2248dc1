package llm

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// summarySchema is the JSON Schema the model output must satisfy before it is
// trusted. Fields are optional (absent fields degrade to the placeholder) but
// any field that is present must be a string.
const summarySchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "role": {"type": "string"},
    "company": {"type": "string"},
    "location": {"type": "string"},
    "how_to_apply": {"type": "string"},
    "salary": {"type": "string"}
  }
}`

// ValidateSummaryJSON checks a raw model response against the summary schema.
func ValidateSummaryJSON(document string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(summarySchema),
		gojsonschema.NewStringLoader(document),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var messages []string
	for _, desc := range result.Errors() {
		messages = append(messages, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return fmt.Errorf("summary does not match schema: %s", strings.Join(messages, "; "))
}
