package extractor

// BuildEntityRecordSchema returns a JSON-Schema (draft 2020-12 subset) for
// the extraction payload: an array of four-field entity record objects.
// Providers that support structured output pass it as a response
// constraint; decoding always enforces it locally.
func BuildEntityRecordSchema() map[string]any {
	return map[string]any{
		"type": "array",
		"items": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"identifier": map[string]any{"type": "string"},
				"relation":   map[string]any{"type": "string", "enum": []string{"IDENTIFIER_OF"}},
				"entityName": map[string]any{"type": "string"},
				"entityType": map[string]any{"type": "string", "enum": []string{"Organisation", "Individual"}},
			},
			"required": []string{"identifier", "relation", "entityName", "entityType"},
		},
	}
}

// BuildWrappedSchema wraps the record-array schema in an object root with a
// single "records" property, for providers whose structured output
// requires a top-level object.
func BuildWrappedSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"records": BuildEntityRecordSchema(),
		},
		"required": []string{"records"},
	}
}
