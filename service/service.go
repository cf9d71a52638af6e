package service

import (
	"context"
	"errors"
	"github.com/codesync/autocomplete-server/llm"
	"github.com/codesync/autocomplete-server/models"
	"strings"
)

// Service holds the process-wide generator. It keeps no per-request state and
// is safe for concurrent use.
type Service struct {
	Generator llm.Generator
}

func New(gen llm.Generator) *Service {
	return &Service{Generator: gen}
}

// Autocomplete builds the prompt, calls the generator exactly once and returns
// the trimmed completion. Any returned error is a *Failure.
func (s *Service) Autocomplete(ctx context.Context, req models.AutocompleteRequest) (string, error) {
	text, err := s.Generator.Generate(ctx, BuildPrompt(req))
	if err != nil {
		if errors.Is(err, llm.ErrNoCompletion) {
			return "", fail(UnexpectedShape, err)
		}
		return "", fail(UpstreamFault, err)
	}
	return strings.TrimSpace(text), nil
}
