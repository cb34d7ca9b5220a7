package chat

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const systemTemplate = `You are a cute, enthusiastic, and helpful AI assistant for %[1]s's portfolio website.
You are knowledgeable about Software Engineering and AI/ML.
Your tone should be friendly, professional but slightly playful (use occasional emojis).
Use the following resume data to answer questions about %[1]s's background:

%[2]s

If the user asks something not in the resume, politely say you don't know but suggest they email %[1]s.
Keep answers concise (under 100 words) unless asked for details.`

// SystemInstruction renders the fixed prompt around the resume.
func SystemInstruction() string {
	return fmt.Sprintf(systemTemplate, Owner, Resume)
}

// GeminiGenerator asks the Gemini API for one completion per message.
type GeminiGenerator struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGeminiGenerator creates a client. An empty key returns ErrNoAPIKey.
func NewGeminiGenerator(ctx context.Context, apiKey, model string, temperature float32) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model, temperature: temperature}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, userMessage string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(userMessage), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(SystemInstruction(), genai.RoleUser),
		Temperature:       genai.Ptr(g.temperature),
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}
