package github

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"leetpush/internal/domain/model"
	"leetpush/internal/domain/ports"
)

// DefaultBaseURL is the public GitHub REST API.
const DefaultBaseURL = "https://api.github.com"

const acceptHeader = "application/vnd.github.v3+json"

// Client implements ports.ContentStore on the GitHub repository contents API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.ContentStore = (*Client)(nil)

// New creates a GitHub client authenticating every request with tokens from ts.
func New(baseURL string, timeout time.Duration, ts oauth2.TokenSource, logger ports.Logger) *Client {
	base := &http.Client{Timeout: timeout}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)

	httpClient := base
	if ts != nil {
		httpClient = oauth2.NewClient(ctx, ts)
		httpClient.Timeout = timeout
	}

	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// GetFile reads the metadata of path on branch.
func (c *Client) GetFile(ctx context.Context, repository, branch, path string) (*model.RemoteFile, error) {
	endpoint, err := c.contentsURL(repository, path)
	if err != nil {
		return nil, err
	}
	endpoint += "?ref=" + url.QueryEscape(branch)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotFound:
		return nil, model.ErrFileNotFound
	case http.StatusOK:
	default:
		return nil, &model.RemoteCheckError{Status: resp.StatusCode}
	}

	var payload struct {
		Path string `json:"path"`
		SHA  string `json:"sha"`
		Size int    `json:"size"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &model.RemoteFile{Path: payload.Path, SHA: payload.SHA, Size: payload.Size}, nil
}

// PutFile creates the file, or updates it when target.PriorSHA is set.
func (c *Client) PutFile(ctx context.Context, target model.RemoteFileTarget, encodedContent, message string) (*model.CommitResult, error) {
	endpoint, err := c.contentsURL(target.Repository, target.Path)
	if err != nil {
		return nil, err
	}

	payload := struct {
		Message string `json:"message"`
		Content string `json:"content"`
		SHA     string `json:"sha,omitempty"`
		Branch  string `json:"branch"`
	}{
		Message: message,
		Content: encodedContent,
		SHA:     target.PriorSHA,
		Branch:  target.Branch,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, writeError(resp)
	}

	var result struct {
		Content struct {
			Path    string `json:"path"`
			SHA     string `json:"sha"`
			HTMLURL string `json:"html_url"`
		} `json:"content"`
		Commit struct {
			SHA string `json:"sha"`
		} `json:"commit"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if c.logger != nil {
		c.logger.Info(ctx, "file written", "repository", target.Repository, "path", target.Path, "commit", result.Commit.SHA)
	}

	return &model.CommitResult{
		Path:       result.Content.Path,
		ContentSHA: result.Content.SHA,
		CommitSHA:  result.Commit.SHA,
		FileURL:    result.Content.HTMLURL,
	}, nil
}

func (c *Client) contentsURL(repository, path string) (string, error) {
	owner, name, ok := strings.Cut(repository, "/")
	if !ok || owner == "" || name == "" {
		return "", fmt.Errorf("invalid repository %q", repository)
	}
	if strings.Trim(path, "/") == "" {
		return "", errors.New("empty file path")
	}

	segments := strings.Split(strings.Trim(path, "/"), "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return fmt.Sprintf("%s/repos/%s/%s/contents/%s",
		c.baseURL, url.PathEscape(owner), url.PathEscape(name), strings.Join(segments, "/")), nil
}

func writeError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))

	var payload struct {
		Message string `json:"message"`
	}
	message := ""
	if err := json.Unmarshal(data, &payload); err == nil {
		message = payload.Message
	}
	if message == "" {
		message = strings.TrimSpace(string(data))
	}
	return &model.RemoteWriteError{Status: resp.StatusCode, Message: message}
}
