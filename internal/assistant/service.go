package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/healthbridge/healthbridge/internal/domain"
	"github.com/healthbridge/healthbridge/internal/port"
)

// promptTemplate asks for home remedies only, with a mandatory disclaimer,
// restricted to evidence-based generally safe suggestions, and forbids
// medications or dangerous treatments.
const promptTemplate = `You are a knowledgeable health assistant. Please suggest safe home remedies for these symptoms: %s.
Format your response in a clear, easy-to-read way. Include a disclaimer about seeking professional medical advice.
Focus on evidence-based, generally safe remedies. Do not suggest medications or dangerous treatments.`

// sanitizer escapes markup-significant characters so symptom text cannot
// be interpreted as markup by a downstream renderer.
var sanitizer = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	"'", "&#39;",
	`"`, "&quot;",
)

// Service is the symptom-advice proxy. Stateless between calls: nothing
// from the request or the reply is retained.
type Service struct {
	gen port.TextGenerator
	log *slog.Logger
}

func NewService(gen port.TextGenerator, log *slog.Logger) *Service {
	return &Service{
		gen: gen,
		log: log,
	}
}

// BuildPrompt sanitizes the symptom text and wraps it in the instructional
// template. Exposed for tests.
func BuildPrompt(symptoms string) string {
	return fmt.Sprintf(promptTemplate, sanitizer.Replace(symptoms))
}

func (s *Service) GetAdvice(ctx context.Context, req domain.AdviceRequest) (domain.AdviceResponse, error) {
	if strings.TrimSpace(req.Symptoms) == "" {
		return domain.AdviceResponse{}, fmt.Errorf("symptoms must not be empty: %w", domain.ErrInvalidRequest)
	}

	text, err := s.gen.GenerateText(ctx, BuildPrompt(req.Symptoms))
	if err != nil {
		return domain.AdviceResponse{}, fmt.Errorf("gen.GenerateText: %w", err)
	}

	if req.ObfuscationKey != "" {
		return domain.AdviceResponse{
			Text:       Obfuscate(text, req.ObfuscationKey),
			Obfuscated: true,
		}, nil
	}

	return domain.AdviceResponse{Text: text}, nil
}
