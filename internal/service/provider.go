package service

import "context"

// Provider is a chat-completion backend.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	ModelID() string
}

// Embedder turns text into a vector for similarity search.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type Request struct {
	System string
	Prompt string
	// Schema, when set, validates the reply; see ValidateJSON.
	Schema      *Schema
	JSONMode    bool
	MaxTokens   int
	Temperature float64
}

type Usage struct {
	InputTokens  int
	OutputTokens int
}

type Response struct {
	Content string
	Model   string
	Usage   Usage
}

// finish applies the schema check shared by every provider.
func finish(req Request, content, model string, usage Usage) (*Response, error) {
	if req.Schema != nil {
		cleaned, err := req.Schema.ValidateJSON(content)
		if err != nil {
			return nil, err
		}
		content = cleaned
	}
	return &Response{Content: content, Model: model, Usage: usage}, nil
}
