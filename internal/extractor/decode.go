package extractor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Abhijeet-077/Query-AI-Agent/internal/domain"
)

// DecodeRecords parses and validates a raw extraction payload into entity
// records. An empty or whitespace-only payload is domain.ErrEmptyResponse;
// anything that fails to parse as JSON, is not an array, or violates the
// record schema is domain.ErrMalformedResponse, with no per-element
// repair attempted. Records with an empty identifier or name are dropped
// silently.
func DecodeRecords(payload string) ([]domain.EntityRecord, error) {
	trimmed := strings.TrimSpace(payload)
	if trimmed == "" {
		return nil, domain.ErrEmptyResponse
	}
	trimmed = stripCodeFence(trimmed)

	var raw json.RawMessage
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	// Providers constrained to an object root wrap the array in a
	// "records" key; unwrap before validating.
	if len(raw) > 0 && raw[0] == '{' {
		var wrapper struct {
			Records json.RawMessage `json:"records"`
		}
		if err := json.Unmarshal(raw, &wrapper); err == nil && len(wrapper.Records) > 0 {
			raw = wrapper.Records
		}
	}

	if err := validateAgainstSchema(BuildEntityRecordSchema(), raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	var records []domain.EntityRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	valid := make([]domain.EntityRecord, 0, len(records))
	for _, r := range records {
		if !r.Valid() {
			continue // tolerance policy, not an error
		}
		valid = append(valid, r)
	}
	return valid, nil
}

// validateAgainstSchema validates data against the given schema map.
func validateAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("payload does not match schema: %w", err)
	}
	return nil
}

// stripCodeFence removes a surrounding markdown code fence, which some
// models emit despite being told not to. Fenced JSON is still a JSON
// payload, not a malformation.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
