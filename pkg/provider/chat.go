package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/utkarshrajputt/concept-ai/pkg/topic"
)

// chat-completions wire types shared by both backends.

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatChoice struct {
	Message      chatMessage `json:"message"`
	FinishReason string      `json:"finish_reason"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

// completeChat issues one bounded chat-completion request and extracts the
// answer text, appending the truncation notice when the backend reports a
// length cutoff. Failures come back as classified *Error values.
func completeChat(ctx context.Context, client *http.Client, url, apiKey, model, systemPrompt, rawTopic, level string) (string, error) {
	params := paramsFor(topic.NormalizeLevel(level))

	ctx, cancel := context.WithTimeout(ctx, params.timeout)
	defer cancel()

	payload := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("Please explain: %s", rawTopic)},
		},
		MaxTokens:   params.maxTokens,
		Temperature: temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", formatErr("encode request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", transportErr("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := client.Do(req)
	if err != nil {
		return "", transportErr("request failed: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", transportErr("read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", transportErr("unexpected status %d: %s", resp.StatusCode, truncateBody(respBody))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", formatErr("decode response: %v", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", formatErr("response has no choices")
	}

	text := parsed.Choices[0].Message.Content
	if parsed.Choices[0].FinishReason == "length" {
		text += truncationNotice
	}
	return text, nil
}

// truncateBody keeps error messages readable when the upstream returns a
// large error page.
func truncateBody(b []byte) string {
	const max = 256
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}
