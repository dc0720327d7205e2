package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Library answers the function calls of a model.
type Library func(context.Context, *genai.FunctionCall) *genai.FunctionResponse

type Function interface {
	// Declare this function
	Declaration() *genai.FunctionDeclaration
	// Call this function
	Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

// NewLibrary dispatches calls to the function with the same name.
func NewLibrary[T Function](functions []T) Library {
	return func(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
		for _, e := range functions {
			d := e.Declaration()
			if d.Name == call.Name {
				return e.Call(ctx, call.ID, call.Args)
			}
		}
		return failure(call.ID, call.Name, fmt.Errorf("unknown function %s", call.Name))
	}
}

func NewDeclaration[T Function](functions []T) []*genai.FunctionDeclaration {
	result := make([]*genai.FunctionDeclaration, 0, len(functions))
	for _, e := range functions {
		result = append(result, e.Declaration())
	}
	return result
}

// Func implements a simple Function
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, args map[string]any) (string, error)
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }

func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	out, err := f.Func(ctx, args)
	if err != nil {
		return failure(id, f.Decl.Name, err)
	}
	return &genai.FunctionResponse{
		ID:       id,
		Name:     f.Decl.Name,
		Response: map[string]any{"output": out},
	}
}

func failure(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}
