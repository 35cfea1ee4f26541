package analyzer

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/mwenda/pdf-catalog/internal/models"
	"github.com/mwenda/pdf-catalog/internal/utils"
)

// maxPromptChars bounds how much extracted text goes into one request.
const maxPromptChars = 4000

const systemPrompt = "You are a helpful assistant that extracts structured metadata from document text."

type Analyzer interface {
	Analyze(ctx context.Context, text string) (models.AnalysisRecord, error)
}

type openAIAnalyzer struct {
	client *openai.Client
	model  string
	logger *utils.Logger
}

// NewOpenAIAnalyzer builds an analyzer over the OpenAI chat-completions API.
// baseURL may be empty to use the library default; setting it allows pointing
// at any OpenAI-compatible endpoint.
func NewOpenAIAnalyzer(apiKey, model, baseURL string, logger *utils.Logger) Analyzer {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &openAIAnalyzer{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		logger: logger,
	}
}

func (a *openAIAnalyzer) Analyze(ctx context.Context, text string) (models.AnalysisRecord, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(text)},
		},
		MaxTokens: 300,
	})
	if err != nil {
		a.logger.Error("Analysis request failed", "error", err)
		return models.AnalysisRecord{}, fmt.Errorf("failed to request analysis: %w", err)
	}

	if len(resp.Choices) == 0 {
		a.logger.Error("Analysis response contained no choices")
		return models.AnalysisRecord{}, fmt.Errorf("no choices in completion")
	}

	return Normalize(resp.Choices[0].Message.Content), nil
}

// BuildPrompt composes the user message, truncating the document text to the
// first maxPromptChars bytes to bound request size.
func BuildPrompt(text string) string {
	if len(text) > maxPromptChars {
		text = text[:maxPromptChars]
	}

	return fmt.Sprintf(`Analyze the following document text and extract its metadata.

Document text:
%s

Respond with a JSON object containing exactly these seven fields:
{
  "title": "document title",
  "source": "origin of the document (journal, website, organization, etc.)",
  "category": "broad subject category",
  "subtopic": "narrower subtopic within the category",
  "author": "author name",
  "tags": ["up to 5 short tags"],
  "summary": "summary of the document in 100 words or less"
}

Do not use trailing commas anywhere in the JSON.
Wrap the JSON in a fenced code block labeled json.`, text)
}
