package openaiservice

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/openai/openai-go/v3"
)

const (
	summarizeSystemPrompt = "You are a helpful assistant that summarizes meeting transcriptions. Provide a concise summary highlighting key points, decisions made, and action items."

	actionItemsSystemPrompt = "You are a helpful assistant that extracts action items from meeting transcriptions. Return a JSON array of action items as strings."
)

// SummarizeMeeting generates a short free-text summary of a meeting
// transcript.
func (s *OpenAIService) SummarizeMeeting(ctx context.Context, transcriptText string) (string, error) {
	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.chatModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(summarizeSystemPrompt),
			openai.UserMessage("Please summarize this meeting transcription:\n\n" + transcriptText),
		},
		MaxTokens:   openai.Int(500),
		Temperature: openai.Float(0.3),
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "Unable to generate summary", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// ExtractActionItems asks the model for a JSON array of action items
// from a meeting transcript. Output that doesn't parse as a string
// array is degraded by ParseActionItems, not reported as an error.
func (s *OpenAIService) ExtractActionItems(ctx context.Context, transcriptText string) ([]string, error) {
	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.chatModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(actionItemsSystemPrompt),
			openai.UserMessage("Please extract action items from this meeting transcription:\n\n" + transcriptText),
		},
		MaxTokens:   openai.Int(300),
		Temperature: openai.Float(0.2),
	})
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return []string{}, nil
	}
	return ParseActionItems(resp.Choices[0].Message.Content), nil
}

// ParseActionItems decodes the model output as a JSON string array.
// Anything that doesn't parse as one, fenced output included, is
// wrapped verbatim as a single-element list.
func ParseActionItems(content string) []string {
	if content == "" {
		return []string{}
	}

	var items []string
	if err := json.Unmarshal([]byte(content), &items); err != nil {
		return []string{content}
	}
	return items
}
