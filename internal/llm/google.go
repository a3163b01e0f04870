package llm

import (
	"context"
	"strings"

	"lexigate/internal/prompt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

type GoogleClient struct {
	apiKey string
}

func NewGoogleClient(apiKey string) *GoogleClient {
	return &GoogleClient{
		apiKey: apiKey,
	}
}

func (c *GoogleClient) TestConnection(ctx context.Context) error {
	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return err
	}
	defer client.Close()

	// List models to verify connection
	iter := client.ListModels(ctx)
	_, err = iter.Next()
	if err != nil && err != iterator.Done {
		return err
	}

	return nil
}

func (c *GoogleClient) ListModels(ctx context.Context) ([]Model, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return nil, err
	}
	defer client.Close()

	var models []Model
	iter := client.ListModels(ctx)
	for {
		m, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		if m.Name == "" {
			continue
		}

		models = append(models, Model{
			ID:          m.Name,
			Name:        m.DisplayName,
			Description: m.Description,
			Generation:  supportsGeneration(m.SupportedGenerationMethods),
		})
	}

	return models, nil
}

func supportsGeneration(methods []string) bool {
	for _, m := range methods {
		if m == "generateContent" {
			return true
		}
	}
	return false
}

func (c *GoogleClient) Generate(ctx context.Context, model string, p prompt.Prompt) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	// The API rejects ids carrying the "models/" namespace prefix
	genModel := client.GenerativeModel(StripModelPrefix(model))

	resp, err := genModel.GenerateContent(ctx, genai.Text(p.System+"\n\n"+p.User))
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	return sb.String(), nil
}
