package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewClient(apiKey string) (*Client, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.7)

	return &Client{
		client: client,
		model:  model,
	}, nil
}

func (c *Client) Close() {
	c.client.Close()
}

// SuggestListingBios generates three candidate bios for a directory listing.
func (c *Client) SuggestListingBios(ctx context.Context, displayName string, highlights []string, city string) ([]string, error) {
	prompt := fmt.Sprintf(`
		Write 3 short, welcoming bios for a tourism directory listing.
		Name: %s
		Highlights: %v
		City: %s

		Task: Each bio is 2-3 sentences, friendly and concrete, aimed at
		travellers browsing the directory. Avoid superlatives and emoji.
		Output: JSON array of 3 strings.
	`, displayName, highlights, city)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate bios: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no content generated")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	raw := strings.TrimSpace(sb.String())
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var bios []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &bios); err != nil {
		return nil, fmt.Errorf("failed to parse generated bios: %w", err)
	}
	return bios, nil
}
