package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/dkhrunov/newsdigest/pkg/config"
	"github.com/dkhrunov/newsdigest/pkg/domain"
)

// Summarizer generates short article summaries via an OpenAI-compatible API
type Summarizer struct {
	client *openai.Client
	config config.LLMConfig
}

// default system prompt for article summaries
const defaultSystemPrompt = `You summarize tech news articles for an email digest.
Write a 2-3 sentence summary of the article. Start with the actual subject matter,
never with phrases like "The article discusses" or "This piece covers".
Keep the summary factual and under 400 characters.`

// NewSummarizer creates a new LLM summarizer
func NewSummarizer(cfg config.LLMConfig) *Summarizer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	return &Summarizer{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// Summarize generates an AI summary for the article from its title and feed summary
func (s *Summarizer) Summarize(ctx context.Context, article *domain.Article) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	prompt := fmt.Sprintf("Title: %s\n\nContent: %s", article.Title, article.Summary)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.config.Model,
		Temperature: float32(s.config.Temperature),
		MaxTokens:   s.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: defaultSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
