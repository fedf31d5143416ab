package concierge

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/nashwabd/storefront-backend/internal/catalog"
	"github.com/nashwabd/storefront-backend/pkg/config"
)

const systemInstructionTemplate = `
You are "Luxury Concierge", an AI assistant for Luxury BD, a premium e-commerce store in Bangladesh.
Your goal is to help customers find high-end products.
Be polite, professional, and knowledgeable.
The user might ask in English or Bengali. Respond in the same language.
Here is our current inventory:
%s

When recommending products:
1. Mention specific prices (in BDT).
2. Highlight why they are "luxury".
3. If they ask for something we don't have, politely suggest the closest alternative from our inventory.
4. Keep responses concise but elegant.
`

// GeminiGenerator composes replies with the Gemini API, grounding the model in
// the storefront inventory via the system instruction.
type GeminiGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiGenerator dials the Gemini API and prepares the concierge model.
func NewGeminiGenerator(ctx context.Context, cfg config.GeminiConfig, cat *catalog.Catalog) (*GeminiGenerator, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	inventory, err := json.Marshal(cat.Products())
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("encoding inventory: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(fmt.Sprintf(systemInstructionTemplate, inventory))},
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

// Reply sends the prompt with the prior conversation as chat history.
func (g *GeminiGenerator) Reply(ctx context.Context, history []Message, prompt string) (string, error) {
	chat := g.model.StartChat()
	chat.History = toGenaiHistory(history)

	resp, err := chat.SendMessage(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini send message: %w", err)
	}
	return extractText(resp), nil
}

// Close releases the underlying API client.
func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

func toGenaiHistory(history []Message) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := "user"
		if msg.Role == RoleModel {
			role = "model"
		}
		out = append(out, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Text)},
		})
	}
	return out
}

func extractText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String()
}
