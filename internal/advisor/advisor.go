// Package advisor turns learner input into generated career guidance,
// concept analogies, knowledge checks and skill audits.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/welltegra/welllab/internal/llm"
	"github.com/welltegra/welllab/internal/quiz"
)

// Purpose labels recorded on every generative call.
const (
	PurposeCareer         = "career-path"
	PurposeBridge         = "concept-bridge"
	PurposeKnowledgeCheck = "knowledge-check"
	PurposeAudit          = "skill-audit"
)

var (
	// ErrMissingInput is returned before any call when a required field is blank.
	ErrMissingInput = errors.New("missing required input")
	// ErrMalformedQuiz is returned when generated questions cannot be answered.
	ErrMalformedQuiz = errors.New("malformed knowledge check")
)

// Service calls the generative provider. It holds no mutable state, so
// callers may share one instance.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an advisor over provider.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// CareerPath maps interests and background onto a well-engineering career.
func (s *Service) CareerPath(ctx context.Context, interests, background string) (*CareerPath, error) {
	if err := requireInputs("interests", interests, "background", background); err != nil {
		return nil, err
	}

	var out CareerPath
	err := s.generate(ctx, PurposeCareer, llm.Request{
		System:      careerSystemPrompt,
		Messages:    userMessage(buildCareerMessage(interests, background)),
		Schema:      CareerPathSchema,
		MaxTokens:   s.cfg.CareerMaxTokens,
		Temperature: s.cfg.Temperature,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// TranslateConcept explains a drilling concept through a hobby.
func (s *Service) TranslateConcept(ctx context.Context, concept, hobby string) (*ConceptTranslation, error) {
	if err := requireInputs("concept", concept, "hobby", hobby); err != nil {
		return nil, err
	}
	if c, ok := LookupConcept(concept); ok {
		concept = c.Label
	}

	var out ConceptTranslation
	err := s.generate(ctx, PurposeBridge, llm.Request{
		System:      bridgeSystemPrompt,
		Messages:    userMessage(buildBridgeMessage(concept, hobby)),
		Schema:      ConceptTranslationSchema,
		MaxTokens:   s.cfg.BridgeMaxTokens,
		Temperature: s.cfg.Temperature,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type knowledgeCheckOutput struct {
	Questions []quiz.Question `json:"questions"`
}

// KnowledgeCheck generates multiple-choice questions for a lesson. Every
// question is validated; one bad question fails the whole check.
func (s *Service) KnowledgeCheck(ctx context.Context, title, content string) ([]quiz.Question, error) {
	if err := requireInputs("lesson title", title, "lesson content", content); err != nil {
		return nil, err
	}

	var out knowledgeCheckOutput
	err := s.generate(ctx, PurposeKnowledgeCheck, llm.Request{
		System:      quizSystemPrompt,
		Messages:    userMessage(buildQuizMessage(title, content, s.cfg.KnowledgeCheckCount)),
		Schema:      KnowledgeCheckSchema,
		MaxTokens:   s.cfg.QuizMaxTokens,
		Temperature: s.cfg.QuizTemperature,
		Tier:        llm.TierFast,
	}, &out)
	if err != nil {
		return nil, err
	}

	if len(out.Questions) == 0 {
		return nil, fmt.Errorf("%w: no questions", ErrMalformedQuiz)
	}
	for i, q := range out.Questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", ErrMalformedQuiz, i+1, err)
		}
	}
	if want := s.cfg.KnowledgeCheckCount; want > 0 && len(out.Questions) != want {
		return nil, fmt.Errorf("%w: got %d questions, want %d", ErrMalformedQuiz, len(out.Questions), want)
	}
	return out.Questions, nil
}

type backgroundOutput struct {
	TransferabilityScore float64  `json:"transferabilityScore"`
	StrengthsDeepDive    string   `json:"strengthsDeepDive"`
	GapAnalysis          string   `json:"gapAnalysis"`
	TransitionStrategy   string   `json:"transitionStrategy"`
	RecommendedFocus     []string `json:"recommendedFocus"`
}

// AnalyzeBackground audits prior experience. Weaknesses are optional.
func (s *Service) AnalyzeBackground(ctx context.Context, employment, strengths, weaknesses string) (*BackgroundAnalysis, error) {
	if err := requireInputs("employment", employment, "strengths", strengths); err != nil {
		return nil, err
	}

	var out backgroundOutput
	err := s.generate(ctx, PurposeAudit, llm.Request{
		System:      auditSystemPrompt,
		Messages:    userMessage(buildAuditMessage(employment, strengths, strings.TrimSpace(weaknesses))),
		Schema:      BackgroundAnalysisSchema,
		MaxTokens:   s.cfg.AuditMaxTokens,
		Temperature: s.cfg.Temperature,
	}, &out)
	if err != nil {
		return nil, err
	}

	return &BackgroundAnalysis{
		TransferabilityScore: clampScore(out.TransferabilityScore),
		StrengthsDeepDive:    out.StrengthsDeepDive,
		GapAnalysis:          out.GapAnalysis,
		TransitionStrategy:   out.TransitionStrategy,
		RecommendedFocus:     out.RecommendedFocus,
	}, nil
}

func (s *Service) generate(ctx context.Context, purpose string, req llm.Request, out any) error {
	ctx = llm.WithPurpose(ctx, purpose)

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("%s generation: %w", purpose, err)
	}
	if err := json.Unmarshal(resp.Content, out); err != nil {
		return fmt.Errorf("parse %s response: %w", purpose, err)
	}
	return nil
}

func userMessage(content string) []llm.Message {
	return []llm.Message{{Role: llm.RoleUser, Content: content}}
}

// requireInputs takes name/value pairs and rejects the first blank value.
func requireInputs(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return fmt.Errorf("%w: %s", ErrMissingInput, pairs[i])
		}
	}
	return nil
}

func clampScore(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(math.Max(0, math.Min(100, v))))
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
