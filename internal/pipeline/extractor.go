package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kurochkinivan/doc_intelligence/internal/domain"
)

const statusWriteTimeout = 10 * time.Second

// Extractor runs one queued document through OCR and the language model and stores what it found.
type Extractor struct {
	log          *slog.Logger
	transitioner StatusTransitioner
	ocr          TextExtractor
	analyzer     BenefitAnalyzer
	benefits     BenefitsSaver
	testCases    TestCasesSaver
	segmentSize  int
}

// NewExtractor creates an extractor. Benefit names are discovered in segments of at most segmentSize
// characters; zero sends the whole text at once.
func NewExtractor(
	log *slog.Logger,
	transitioner StatusTransitioner,
	ocr TextExtractor,
	analyzer BenefitAnalyzer,
	benefits BenefitsSaver,
	testCases TestCasesSaver,
	segmentSize int,
) *Extractor {
	return &Extractor{
		log:          log,
		transitioner: transitioner,
		ocr:          ocr,
		analyzer:     analyzer,
		benefits:     benefits,
		testCases:    testCases,
		segmentSize:  segmentSize,
	}
}

// Run claims the document and analyzes it. It returns domain.ErrDocumentClaimed without touching the
// document when someone else moved it out of the queued state first, and domain.ErrClaimFailed when the
// claim itself could not be written; the document stays queued in both cases. Any later failure leaves
// the document failed.
func (e *Extractor) Run(ctx context.Context, doc *domain.Document) (*domain.AnalysisResult, error) {
	log := e.log.With(slog.String("document", doc.Name))

	ok, err := e.transitioner.TransitionStatus(ctx, doc.Name, domain.StatusQueued, domain.StatusProcessing)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrClaimFailed, err)
	}
	if !ok {
		return nil, domain.ErrDocumentClaimed
	}

	result, err := e.analyze(ctx, log, doc)
	if err == nil {
		err = e.finish(ctx, doc.Name, domain.StatusSucceeded)
	}

	if err != nil {
		log.ErrorContext(ctx, "document analysis failed", slog.String("err", err.Error()))

		if ferr := e.finish(ctx, doc.Name, domain.StatusFailed); ferr != nil {
			log.ErrorContext(ctx, "failed to mark document failed", slog.String("err", ferr.Error()))
			err = errors.Join(err, ferr)
		}

		return nil, err
	}

	processed := *doc
	processed.Status = domain.StatusSucceeded
	result.Document = &processed
	result.CompletedAt = time.Now()

	log.InfoContext(ctx, "document analysis succeeded")

	return result, nil
}

func (e *Extractor) analyze(ctx context.Context, log *slog.Logger, doc *domain.Document) (*domain.AnalysisResult, error) {
	text, err := e.ocr.ExtractText(ctx, doc.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrNoText
	}

	log.DebugContext(ctx, "text extracted", slog.Int("length", len(text)))

	names, err := e.discover(ctx, text)
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		return nil, domain.ErrNoBenefits
	}

	log.DebugContext(ctx, "benefit names discovered", slog.Int("count", len(names)))

	benefits := make([]*domain.Benefit, 0, len(names))
	for _, name := range names {
		benefit, err := e.analyzer.ExtractBenefitDetail(ctx, name, text)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			log.WarnContext(ctx, "failed to extract benefit, skipping",
				slog.String("benefit", name),
				slog.String("err", err.Error()),
			)
			continue
		}

		if benefit == nil {
			continue
		}

		benefits = append(benefits, benefit)
	}

	if err := e.benefits.ReplaceBenefits(ctx, doc.Name, benefits); err != nil {
		return nil, fmt.Errorf("failed to save benefits: %w", err)
	}

	testCases := make(domain.TestCaseSet, len(benefits))
	for _, benefit := range benefits {
		cases, err := e.analyzer.GenerateTestCases(ctx, benefit)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			log.WarnContext(ctx, "failed to generate test cases, skipping",
				slog.String("benefit", benefit.Benefit),
				slog.String("err", err.Error()),
			)
			continue
		}

		testCases.Add(benefit.Key(), cases...)
	}

	if err := e.testCases.ReplaceTestCases(ctx, doc.Name, testCases); err != nil {
		return nil, fmt.Errorf("failed to save test cases: %w", err)
	}

	return &domain.AnalysisResult{
		Document:  doc,
		Benefits:  benefits,
		TestCases: testCases,
	}, nil
}

// discover collects distinct benefit names segment by segment, telling the model what it already found.
func (e *Extractor) discover(ctx context.Context, text string) ([]string, error) {
	var names []string
	seen := make(map[string]struct{})

	for _, segment := range splitSegments(text, e.segmentSize) {
		found, err := e.analyzer.DiscoverBenefitNames(ctx, segment, names)
		if err != nil {
			return nil, fmt.Errorf("failed to discover benefit names: %w", err)
		}

		for _, name := range found {
			name = strings.TrimSpace(name)
			key := strings.ToLower(name)
			if _, ok := seen[key]; ok || name == "" {
				continue
			}
			seen[key] = struct{}{}
			names = append(names, name)
		}
	}

	return names, nil
}

// finish writes the final status even if ctx is already canceled.
func (e *Extractor) finish(ctx context.Context, name string, status domain.Status) error {
	if !status.IsTerminal() {
		return fmt.Errorf("%w: %s is not a final status", domain.ErrInvalidTransition, status)
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), statusWriteTimeout)
	defer cancel()

	ok, err := e.transitioner.TransitionStatus(ctx, name, domain.StatusProcessing, status)
	if err != nil {
		return fmt.Errorf("failed to set status %s: %w", status, err)
	}
	if !ok {
		return fmt.Errorf("failed to set status %s: document is no longer processing", status)
	}

	return nil
}

// splitSegments cuts text at paragraph boundaries into pieces of at most size runes.
// A paragraph longer than size is cut on its own.
func splitSegments(text string, size int) []string {
	if size <= 0 || len([]rune(text)) <= size {
		return []string{text}
	}

	var (
		segments []string
		current  []rune
	)

	flush := func() {
		if len(current) > 0 {
			segments = append(segments, string(current))
			current = nil
		}
	}

	for _, paragraph := range strings.Split(text, "\n\n") {
		p := []rune(paragraph)

		if len(current) > 0 && len(current)+2+len(p) > size {
			flush()
		}

		for len(p) > size {
			flush()
			segments = append(segments, string(p[:size]))
			p = p[size:]
		}

		if len(current) > 0 {
			current = append(current, '\n', '\n')
		}
		current = append(current, p...)
	}

	flush()

	return segments
}
