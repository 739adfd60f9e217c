package extractor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhijeet-077/Query-AI-Agent/internal/domain"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/extractor"
)

func TestDecodeRecords_BareArray(t *testing.T) {
	payload := `[
		{"identifier":"ABCDE1234F","relation":"IDENTIFIER_OF","entityName":"Sharma Traders","entityType":"Organisation"},
		{"identifier":"FGHIJ5678K","relation":"IDENTIFIER_OF","entityName":"Ravi Kumar","entityType":"Individual"}
	]`

	records, err := extractor.DecodeRecords(payload)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.EntityRecord{
		Identifier: "ABCDE1234F",
		Relation:   domain.RelationIdentifierOf,
		EntityName: "Sharma Traders",
		EntityType: domain.EntityTypeOrganisation,
	}, records[0])
}

func TestDecodeRecords_WrappedObject(t *testing.T) {
	payload := `{"records":[{"identifier":"ABCDE1234F","relation":"IDENTIFIER_OF","entityName":"Sharma Traders","entityType":"Organisation"}]}`

	records, err := extractor.DecodeRecords(payload)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "ABCDE1234F", records[0].Identifier)
}

func TestDecodeRecords_CodeFenced(t *testing.T) {
	payload := "```json\n" +
		`[{"identifier":"ABCDE1234F","relation":"IDENTIFIER_OF","entityName":"Sharma Traders","entityType":"Organisation"}]` +
		"\n```"

	records, err := extractor.DecodeRecords(payload)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestDecodeRecords_EmptyArray(t *testing.T) {
	records, err := extractor.DecodeRecords("[]")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDecodeRecords_EmptyPayload(t *testing.T) {
	for _, payload := range []string{"", "   ", "\n\t"} {
		records, err := extractor.DecodeRecords(payload)
		assert.Nil(t, records)
		assert.True(t, errors.Is(err, domain.ErrEmptyResponse), "payload %q", payload)
	}
}

func TestDecodeRecords_NotJSON(t *testing.T) {
	records, err := extractor.DecodeRecords("{not json")
	assert.Nil(t, records)
	assert.True(t, errors.Is(err, domain.ErrMalformedResponse))
}

func TestDecodeRecords_NotAnArray(t *testing.T) {
	records, err := extractor.DecodeRecords(`{"identifier":"ABCDE1234F"}`)
	assert.Nil(t, records)
	assert.True(t, errors.Is(err, domain.ErrMalformedResponse))
}

func TestDecodeRecords_SchemaViolation(t *testing.T) {
	// entityType outside the enum
	payload := `[{"identifier":"ABCDE1234F","relation":"IDENTIFIER_OF","entityName":"Sharma Traders","entityType":"Company"}]`

	records, err := extractor.DecodeRecords(payload)
	assert.Nil(t, records)
	assert.True(t, errors.Is(err, domain.ErrMalformedResponse))
}

func TestDecodeRecords_MissingField(t *testing.T) {
	payload := `[{"identifier":"ABCDE1234F","relation":"IDENTIFIER_OF","entityType":"Organisation"}]`

	records, err := extractor.DecodeRecords(payload)
	assert.Nil(t, records)
	assert.True(t, errors.Is(err, domain.ErrMalformedResponse))
}

func TestDecodeRecords_DropsEmptyIdentifierOrName(t *testing.T) {
	payload := `[
		{"identifier":"","relation":"IDENTIFIER_OF","entityName":"Sharma Traders","entityType":"Organisation"},
		{"identifier":"ABCDE1234F","relation":"IDENTIFIER_OF","entityName":"","entityType":"Organisation"},
		{"identifier":"FGHIJ5678K","relation":"IDENTIFIER_OF","entityName":"Ravi Kumar","entityType":"Individual"}
	]`

	records, err := extractor.DecodeRecords(payload)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "FGHIJ5678K", records[0].Identifier)
}
