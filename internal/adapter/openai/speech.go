package openai

import (
	"context"
	"fmt"
	"io"

	openaiapi "github.com/sashabaranov/go-openai"
)

// Client synthesizes speech through the OpenAI audio API. Catalog voice
// names are passed through as-is; a name the API does not know fails the
// request, which the dispatcher reports to the user.
type Client struct {
	api    *openaiapi.Client
	model  string
	format string
}

func NewClient(token, model, format string) *Client {
	return &Client{
		api:    openaiapi.NewClient(token),
		model:  model,
		format: format,
	}
}

func (c *Client) Synthesize(ctx context.Context, voice, text string) ([]byte, error) {
	resp, err := c.api.CreateSpeech(ctx, openaiapi.CreateSpeechRequest{
		Model:          openaiapi.SpeechModel(c.model),
		Input:          text,
		Voice:          openaiapi.SpeechVoice(voice),
		ResponseFormat: openaiapi.SpeechResponseFormat(c.format),
	})
	if err != nil {
		return nil, err
	}
	defer resp.Close()

	data, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("read speech response: %w", err)
	}
	return data, nil
}
