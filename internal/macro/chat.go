// ABOUTME: OpenAI-compatible chat completion client for macro estimation.
// ABOUTME: One JSON POST per day of food entries; errors degrade to unknown nutrition.
package macro

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const estimatePrompt = `Estimate the total daily macros for the following food log.
Reply with a single JSON object: {"calories": int, "protein_g": int, "carbs_g": int, "fat_g": int, "fiber_g": int}.

Food log:
%s`

// ChatEstimator calls an OpenAI-compatible chat completions endpoint.
type ChatEstimator struct {
	BaseURL string
	Model   string
	APIKey  string
	Client  *http.Client
}

var _ Estimator = (*ChatEstimator)(nil)

// NewChatEstimator creates an estimator for the given endpoint and model.
func NewChatEstimator(baseURL, model, apiKey string) *ChatEstimator {
	return &ChatEstimator{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Model:   model,
		APIKey:  apiKey,
		Client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Estimate sends the food log and parses the macro JSON from the reply.
func (c *ChatEstimator) Estimate(ctx context.Context, items []string) (*Macros, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no food entries to estimate")
	}

	body, err := json.Marshal(chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{Role: "user", Content: fmt.Sprintf(estimatePrompt, strings.Join(items, "\n"))},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("macro estimation request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("macro estimation: status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return nil, fmt.Errorf("empty completion")
	}

	return ParseReply(cr.Choices[0].Message.Content)
}
