// Package gateway orchestrates translation and definition requests:
// validate, build the prompt, call the upstream client with the
// resolved model under a bounded timeout, sanitize, and classify
// failures into the closed error taxonomy.
package gateway

import (
	"context"
	"strings"
	"time"

	"lexigate/internal/llm"
	"lexigate/internal/prompt"
)

type TranslationRequest struct {
	Text string `json:"text"`
}

type TranslationResult struct {
	Translation string `json:"translation"`
}

type DefinitionRequest struct {
	Word    string `json:"word"`
	Context string `json:"context"`
}

type DefinitionResult struct {
	HTML string `json:"definition"`
}

// Gateway holds the resolved model for its whole lifetime. It has two
// states: unconfigured (empty model, every operation fails fast) and
// configured. Reconfiguration means constructing a new Gateway, so
// concurrent requests only ever read immutable fields.
type Gateway struct {
	client  llm.Client
	model   string
	timeout time.Duration
}

// New builds a gateway bound to the given resolved model. A nil client
// or empty model yields an unconfigured gateway.
func New(client llm.Client, model string, timeout time.Duration) *Gateway {
	return &Gateway{
		client:  client,
		model:   model,
		timeout: timeout,
	}
}

// Configured reports whether the gateway can serve requests.
func (g *Gateway) Configured() bool {
	return g.client != nil && g.model != ""
}

// Model returns the resolved model id, empty when unconfigured.
func (g *Gateway) Model() string {
	return g.model
}

// Translate converts text to the fixed target language.
func (g *Gateway) Translate(ctx context.Context, req TranslationRequest) (TranslationResult, error) {
	if req.Text == "" {
		return TranslationResult{}, errInvalidInput("No text provided")
	}
	if !g.Configured() {
		return TranslationResult{}, errNotConfigured()
	}

	raw, err := g.generate(ctx, prompt.Translation(req.Text))
	if err != nil {
		return TranslationResult{}, err
	}

	return TranslationResult{Translation: raw}, nil
}

// Define produces the structured dict-card HTML for a word in context.
// The context is optional.
func (g *Gateway) Define(ctx context.Context, req DefinitionRequest) (DefinitionResult, error) {
	if req.Word == "" {
		return DefinitionResult{}, errInvalidInput("No word provided")
	}
	if !g.Configured() {
		return DefinitionResult{}, errNotConfigured()
	}

	raw, err := g.generate(ctx, prompt.Definition(req.Word, req.Context))
	if err != nil {
		return DefinitionResult{}, err
	}

	return DefinitionResult{HTML: prompt.Clean(raw)}, nil
}

// generate runs the upstream call with the deadline applied and maps
// every outcome into the taxonomy.
func (g *Gateway) generate(ctx context.Context, p prompt.Prompt) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	raw, err := g.client.Generate(ctx, g.model, p)
	if err != nil {
		return "", errUpstream(g.model, err)
	}
	if strings.TrimSpace(raw) == "" {
		return "", errEmptyResponse(g.model)
	}
	return raw, nil
}
