package agent

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

// maxCalls bounds the function calls answered for a single question.
const maxCalls = 8

// Expert represent a chat with a model that can call back a library of functions.
type Expert struct {
	Name      string                       `json:"name"`
	ModelName string                       `json:"model_name"`
	Config    *genai.GenerateContentConfig `json:"config"`
	Library   Library
	chat      *genai.Chat
}

// Start creates the chat session.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return fmt.Errorf("cannot start %s chat: %w", e.Name, err)
	}
	e.chat = chat
	return nil
}

// Ask sends parts to the chat and answers the function calls of the model
// until it replies with a real content.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	for range maxCalls {
		resp, err := e.chat.Send(ctx, parts...)
		if err != nil {
			return nil, err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return nil, fmt.Errorf("no response from %s", e.Name)
		}
		content := resp.Candidates[0].Content

		var calls []*genai.Part
		for _, part := range content.Parts {
			if part.FunctionCall == nil {
				continue
			}
			if e.Library == nil {
				return nil, fmt.Errorf("%s doesn't know how to make function calls", e.Name)
			}
			slog.Debug("function call", "expert", e.Name, "function", part.FunctionCall.Name, "args", part.FunctionCall.Args)
			calls = append(calls, &genai.Part{FunctionResponse: e.Library(ctx, part.FunctionCall)})
		}
		if len(calls) == 0 {
			return content, nil
		}
		parts = calls
	}
	return nil, fmt.Errorf("%s kept calling functions after %d rounds", e.Name, maxCalls)
}
