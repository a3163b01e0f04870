package llm

import (
	"context"

	"lexigate/internal/prompt"

	"github.com/sashabaranov/go-openai"
)

type OpenAIClient struct {
	client *openai.Client
}

// NewOpenAIClient creates a client for the OpenAI API or any compatible
// endpoint (Groq, local gateways) when baseURL is non-empty.
func NewOpenAIClient(apiKey, baseURL string) *OpenAIClient {
	if baseURL == "" {
		return &OpenAIClient{client: openai.NewClient(apiKey)}
	}
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg)}
}

func (c *OpenAIClient) TestConnection(ctx context.Context) error {
	_, err := c.client.ListModels(ctx)
	return err
}

func (c *OpenAIClient) ListModels(ctx context.Context) ([]Model, error) {
	resp, err := c.client.ListModels(ctx)
	if err != nil {
		return nil, err
	}

	var models []Model
	for _, m := range resp.Models {
		// The models endpoint does not report capabilities; every chat
		// model it returns accepts completion requests.
		models = append(models, Model{
			ID:         m.ID,
			Name:       m.ID,
			Generation: true,
		})
	}
	return models, nil
}

func (c *OpenAIClient) Generate(ctx context.Context, model string, p prompt.Prompt) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: StripModelPrefix(model),
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: p.System,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: p.User,
			},
		},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
