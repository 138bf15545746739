package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"leetpush/internal/domain/model"
	"leetpush/internal/domain/ports"
)

const graphQLEndpoint = "https://leetcode.com/graphql"

const questionQuery = `query questionData($titleSlug: String!) { question(titleSlug: $titleSlug) { questionFrontendId title titleSlug difficulty topicTags { name } } }`

// QuestionMetadata is the public metadata LeetCode serves for a problem.
type QuestionMetadata struct {
	FrontendID string
	Title      string
	Slug       string
	Difficulty model.Difficulty
	Topics     []string
}

// MetadataClient looks problems up through the public LeetCode GraphQL endpoint.
type MetadataClient struct {
	httpClient *http.Client
	endpoint   string
	logger     ports.Logger
}

// NewMetadataClient creates a new LeetCode metadata client.
func NewMetadataClient(timeout time.Duration, logger ports.Logger) *MetadataClient {
	return &MetadataClient{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   graphQLEndpoint,
		logger:     logger,
	}
}

// WithEndpoint points the client at another GraphQL endpoint.
func (c *MetadataClient) WithEndpoint(endpoint string) *MetadataClient {
	clone := *c
	clone.endpoint = endpoint
	return &clone
}

// Question retrieves metadata for the problem with the given slug.
func (c *MetadataClient) Question(ctx context.Context, slug string) (*QuestionMetadata, error) {
	if slug == "" {
		return nil, fmt.Errorf("empty problem slug")
	}

	payload := map[string]any{
		"query":         questionQuery,
		"operationName": "questionData",
		"variables":     map[string]string{"titleSlug": slug},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal graphql payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", ProblemURL(slug))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	var gqlResp struct {
		Data struct {
			Question *struct {
				QuestionFrontendID string `json:"questionFrontendId"`
				Title              string `json:"title"`
				TitleSlug          string `json:"titleSlug"`
				Difficulty         string `json:"difficulty"`
				TopicTags          []struct {
					Name string `json:"name"`
				} `json:"topicTags"`
			} `json:"question"`
		} `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	q := gqlResp.Data.Question
	if q == nil || q.TitleSlug == "" {
		return nil, fmt.Errorf("question %q not found", slug)
	}

	topics := make([]string, 0, len(q.TopicTags))
	for _, tag := range q.TopicTags {
		topics = append(topics, tag.Name)
	}

	return &QuestionMetadata{
		FrontendID: q.QuestionFrontendID,
		Title:      q.Title,
		Slug:       q.TitleSlug,
		Difficulty: model.ParseDifficulty(q.Difficulty),
		Topics:     topics,
	}, nil
}
