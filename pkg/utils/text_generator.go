package utils

import "context"

// TextGeneratorInterface is a language model that turns a prompt into free
// text. Implementations stream the answer and return it only once the
// provider has signalled completion.
type TextGeneratorInterface interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Provider() string
}
