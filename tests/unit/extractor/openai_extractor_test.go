package extractor_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhijeet-077/Query-AI-Agent/internal/config"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/domain"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/extractor"
	openai "github.com/Abhijeet-077/Query-AI-Agent/internal/extractor/openai"
	"github.com/Abhijeet-077/Query-AI-Agent/internal/port"
)

func newOpenAITestExtractor(serverURL string) *openai.Extractor {
	cfg := &config.ProviderConfig{
		Provider:     "openai",
		APIKey:       "test-openai-key",
		DefaultModel: "gpt-4o",
		TimeoutSecs:  30,
	}
	return openai.NewExtractorWithEndpoint(cfg, serverURL)
}

func openaiSuccessResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message": map[string]interface{}{
					"role":    "assistant",
					"content": content,
				},
				"finish_reason": "stop",
			},
		},
	}
}

func TestOpenAIExtractor_Extract_Success(t *testing.T) {
	llmJSON := `{"records":[{"identifier":"ABCDE1234F","relation":"IDENTIFIER_OF","entityName":"Sharma Traders","entityType":"Organisation"}]}`
	responseBody := openaiSuccessResponse(llmJSON)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify auth header
		assert.Equal(t, "Bearer test-openai-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		// Verify request body
		var reqBody map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&reqBody)
		assert.NoError(t, err)
		assert.Equal(t, "gpt-4o", reqBody["model"])
		assert.Equal(t, float64(16384), reqBody["max_completion_tokens"])

		messages := reqBody["messages"].([]interface{})
		assert.Len(t, messages, 1)
		msg := messages[0].(map[string]interface{})
		assert.Equal(t, "user", msg["role"])
		assert.Contains(t, msg["content"].(string), "PAN: ABCDE1234F")

		// Verify structured-output constraint
		respFormat := reqBody["response_format"].(map[string]interface{})
		assert.Equal(t, "json_schema", respFormat["type"])
		schema := respFormat["json_schema"].(map[string]interface{})
		assert.Equal(t, "entity_records", schema["name"])
		assert.Equal(t, true, schema["strict"])

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(responseBody)
	}))
	defer server.Close()

	e := newOpenAITestExtractor(server.URL)

	records, err := e.Extract(context.Background(), port.ExtractInput{
		Text: "Sharma Traders, PAN: ABCDE1234F",
	})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.EntityRecord{
		Identifier: "ABCDE1234F",
		Relation:   domain.RelationIdentifierOf,
		EntityName: "Sharma Traders",
		EntityType: domain.EntityTypeOrganisation,
	}, records[0])
}

func TestOpenAIExtractor_Extract_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	e := newOpenAITestExtractor(server.URL)

	records, err := e.Extract(context.Background(), port.ExtractInput{Text: "doc"})
	assert.Nil(t, records)
	assert.True(t, errors.Is(err, domain.ErrEmptyResponse))
}

func TestOpenAIExtractor_Extract_TruncatedOutput(t *testing.T) {
	responseBody := map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message":       map[string]interface{}{"content": `[{"identifier":"ABC`},
				"finish_reason": "length",
			},
		},
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(responseBody)
	}))
	defer server.Close()

	e := newOpenAITestExtractor(server.URL)

	records, err := e.Extract(context.Background(), port.ExtractInput{Text: "doc"})
	assert.Nil(t, records)
	assert.True(t, errors.Is(err, domain.ErrMalformedResponse))
}

func TestOpenAIExtractor_Extract_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"upstream unavailable"}`))
	}))
	defer server.Close()

	e := newOpenAITestExtractor(server.URL)

	records, err := e.Extract(context.Background(), port.ExtractInput{Text: "doc"})
	assert.Nil(t, records)
	assert.True(t, errors.Is(err, domain.ErrExtractionService))
}

func TestOpenAIExtractor_Extract_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "42")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":"rate limit exceeded"}`))
	}))
	defer server.Close()

	e := newOpenAITestExtractor(server.URL)

	records, err := e.Extract(context.Background(), port.ExtractInput{Text: "doc"})
	assert.Nil(t, records)

	var rlErr *extractor.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, "openai", rlErr.Provider)
	assert.Contains(t, rlErr.RetryAfter.String(), "42s")
	assert.True(t, errors.Is(err, domain.ErrExtractionService))
}

func TestOpenAIExtractor_Extract_UnreachableEndpoint(t *testing.T) {
	e := newOpenAITestExtractor("http://127.0.0.1:1")

	records, err := e.Extract(context.Background(), port.ExtractInput{Text: "doc"})
	assert.Nil(t, records)
	assert.True(t, errors.Is(err, domain.ErrExtractionService))
}
