package port

import "context"

// TextGenerator turns a prompt into generated natural-language text.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
