package leetcode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leetpush/internal/domain/model"
)

func TestMetadataClientQuestion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body struct {
			Variables map[string]string `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "two-sum", body.Variables["titleSlug"])

		_, _ = w.Write([]byte(`{"data":{"question":{"questionFrontendId":"1","title":"Two Sum","titleSlug":"two-sum","difficulty":"Easy","topicTags":[{"name":"Array"},{"name":"Hash Table"}]}}}`))
	}))
	defer server.Close()

	client := NewMetadataClient(time.Second, nil).WithEndpoint(server.URL)
	meta, err := client.Question(context.Background(), "two-sum")
	require.NoError(t, err)

	assert.Equal(t, "Two Sum", meta.Title)
	assert.Equal(t, model.DifficultyEasy, meta.Difficulty)
	assert.Equal(t, []string{"Array", "Hash Table"}, meta.Topics)
}

func TestMetadataClientMissingQuestion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"question":null}}`))
	}))
	defer server.Close()

	_, err := NewMetadataClient(time.Second, nil).WithEndpoint(server.URL).Question(context.Background(), "nope")
	assert.ErrorContains(t, err, "not found")
}

func TestMetadataClientEmptySlug(t *testing.T) {
	_, err := NewMetadataClient(time.Second, nil).Question(context.Background(), "")
	assert.Error(t, err)
}
