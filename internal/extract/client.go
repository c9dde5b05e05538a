// Package extract 调用视觉模型把简历图片/PDF 转写为结构化草稿。
package extract

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.anthropic.com/v1/messages"

// Client 封装 Messages API 的视觉转写调用。
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, model string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

type contentBlock struct {
	Type   string       `json:"type"`
	Text   string       `json:"text,omitempty"`
	Source *mediaSource `json:"source,omitempty"`
}

type mediaSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type visionMessage struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type visionRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []visionMessage `json:"messages"`
}

type visionResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Transcribe 把原始文件字节送入模型，返回解析后的转写结果。
func (c *Client) Transcribe(ctx context.Context, mimeType string, data []byte) (RawResume, error) {
	var zero RawResume

	blockType := "image"
	if mimeType == "application/pdf" {
		blockType = "document"
	}
	reqBody := visionRequest{
		Model:     c.model,
		MaxTokens: 8192,
		Messages: []visionMessage{
			{
				Role: "user",
				Content: []contentBlock{
					{
						Type: blockType,
						Source: &mediaSource{
							Type:      "base64",
							MediaType: mimeType,
							Data:      base64.StdEncoding.EncodeToString(data),
						},
					},
					{Type: "text", Text: transcriptionPrompt},
				},
			},
		},
	}
	body, err := json.Marshal(reqBody)
	if err != nil {
		return zero, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return zero, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return zero, fmt.Errorf("vision api: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return zero, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return zero, &RetryableError{
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
	}
	if resp.StatusCode != http.StatusOK {
		return zero, fmt.Errorf("vision api status %d: %s", resp.StatusCode, string(respBody))
	}

	var apiResp visionResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return zero, fmt.Errorf("decode response: %w", err)
	}
	if apiResp.Error != nil {
		return zero, fmt.Errorf("vision error: %s: %s", apiResp.Error.Type, apiResp.Error.Message)
	}
	if len(apiResp.Content) == 0 {
		return zero, fmt.Errorf("empty response from vision model")
	}

	raw, err := ParseRaw([]byte(ExtractJSON(apiResp.Content[0].Text)))
	if err != nil {
		return zero, err
	}
	return raw, nil
}

// Close releases resources.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// RetryableError 标记可重试的瞬时失败（限流或上游 5xx）。
type RetryableError struct {
	StatusCode int
	Message    string
}

func (e *RetryableError) Error() string {
	return fmt.Sprintf("retryable error (status %d): %s", e.StatusCode, truncate(e.Message, 200))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
