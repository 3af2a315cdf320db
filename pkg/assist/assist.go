package assist

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	fastshot "github.com/opus-domini/fast-shot"
)

// ErrNotConfigured is returned when no assist backend URL is set.
var ErrNotConfigured = errors.New("assist backend is not configured")

const systemPrompt = "You are a portfolio planning assistant. Answer questions " +
	"about project budgets, spend and schedules concisely. If you are unsure, say so."

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// Client talks to an OpenAI-compatible chat completion endpoint.
type Client struct {
	http  fastshot.ClientHttpMethods
	model string
}

// NewClient builds an assist client for the given base URL and model.
// The API key is read from VANTAGE_ASSIST_API_KEY. A nil client is
// returned when baseURL is empty.
func NewClient(baseURL, model string) *Client {
	if baseURL == "" {
		return nil
	}

	c := fastshot.NewClient(baseURL)
	if key := os.Getenv("VANTAGE_ASSIST_API_KEY"); key != "" {
		c.Auth().BearerToken(key)
	}

	return &Client{
		http: c.Config().SetTimeout(time.Minute).
			Config().SetFollowRedirects(true).
			Header().Add("Content-Type", "application/json").
			Build(),
		model: model,
	}
}

// Chat sends the user's question together with a portfolio context blurb
// and returns the assistant's reply.
func (c *Client) Chat(ctx context.Context, contextBlurb, question string) (string, error) {
	if c == nil {
		return "", ErrNotConfigured
	}

	msgs := []message{{Role: "system", Content: systemPrompt}}
	if contextBlurb != "" {
		msgs = append(msgs, message{Role: "system", Content: "Portfolio context:\n" + contextBlurb})
	}
	msgs = append(msgs, message{Role: "user", Content: question})

	resp, err := c.http.
		POST("/v1/chat/completions").
		Context().Set(ctx).
		Header().Add("Accept", "application/json").
		Retry().SetExponentialBackoff(time.Second, 2, 2.0).
		Body().AsJSON(chatRequest{Model: c.model, Messages: msgs}).
		Send()
	if err != nil {
		return "", fmt.Errorf("failed to reach assist backend: %w", err)
	}
	defer resp.Body().Close()

	if resp.Status().IsError() {
		msg, err := resp.Body().AsString()
		if err != nil {
			return "", fmt.Errorf("failed to read assist error response: %w", err)
		}
		return "", fmt.Errorf("assist backend returned an error: %s", msg)
	}

	var parsed chatResponse
	if err := resp.Body().AsJSON(&parsed); err != nil {
		return "", fmt.Errorf("failed to parse assist response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("assist backend returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
