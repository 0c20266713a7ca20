package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kurochkinivan/doc_intelligence/internal/domain"
	"github.com/kurochkinivan/doc_intelligence/internal/retry"
)

// Analyzer asks the model for benefit names, benefit details and test cases.
// Only the model call is retried; a response that cannot be used fails immediately.
type Analyzer struct {
	log    *slog.Logger
	model  Model
	policy retry.Policy
}

func NewAnalyzer(log *slog.Logger, model Model, policy retry.Policy) *Analyzer {
	return &Analyzer{
		log:    log,
		model:  model,
		policy: policy,
	}
}

// DiscoverBenefitNames returns names found in text that are not in known.
// Names are compared case-insensitively and keep the order the model returned them in.
func (a *Analyzer) DiscoverBenefitNames(ctx context.Context, text string, known []string) ([]string, error) {
	raw, err := a.generate(ctx, "discover benefit names", buildBenefitNamesPrompt(text, known))
	if err != nil {
		return nil, err
	}

	var res struct {
		Benefits []struct {
			Name string `json:"name"`
		} `json:"benefits"`
	}
	if err := validate(benefitNamesValidator, raw, &res); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(known)+len(res.Benefits))
	for _, name := range known {
		seen[strings.ToLower(strings.TrimSpace(name))] = struct{}{}
	}

	names := make([]string, 0, len(res.Benefits))
	for _, b := range res.Benefits {
		name := strings.TrimSpace(b.Name)
		if name == "" {
			continue
		}

		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		names = append(names, name)
	}

	return names, nil
}

func (a *Analyzer) ExtractBenefitDetail(ctx context.Context, name, text string) (*domain.Benefit, error) {
	raw, err := a.generate(ctx, "extract benefit detail", buildBenefitDetailPrompt(name, text))
	if err != nil {
		return nil, err
	}

	var benefit domain.Benefit
	if err := validate(benefitValidator, raw, &benefit); err != nil {
		return nil, err
	}

	if err := benefit.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}

	return &benefit, nil
}

func (a *Analyzer) GenerateTestCases(ctx context.Context, benefit *domain.Benefit) ([]*domain.TestCase, error) {
	raw, err := a.generate(ctx, "generate test cases", buildTestCasesPrompt(benefit.Key()))
	if err != nil {
		return nil, err
	}

	var res struct {
		TestCases []*domain.TestCase `json:"testCases"`
	}
	if err := validate(testCasesValidator, raw, &res); err != nil {
		return nil, err
	}

	for i, tc := range res.TestCases {
		if err := tc.Validate(); err != nil {
			return nil, fmt.Errorf("%w: test case %d: %w", ErrInvalidResponse, i, err)
		}
	}

	return res.TestCases, nil
}

func (a *Analyzer) generate(ctx context.Context, op, prompt string) ([]byte, error) {
	text, err := retry.Do(ctx, a.log, a.policy, op, func(ctx context.Context) (string, error) {
		return a.model.Generate(ctx, prompt)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}

	text = stripCodeFence(text)
	if text == "" {
		return nil, fmt.Errorf("failed to %s: %w", op, ErrEmptyResponse)
	}

	return []byte(text), nil
}

// stripCodeFence removes a markdown code block around the answer, if any.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = ""
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return strings.TrimSpace(s)
}
