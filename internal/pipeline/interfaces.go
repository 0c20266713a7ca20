package pipeline

import (
	"context"

	"github.com/kurochkinivan/doc_intelligence/internal/domain"
	"github.com/kurochkinivan/doc_intelligence/internal/queue"
)

type DocumentFinder interface {
	// OldestDocumentByStatus returns domain.ErrDocumentNotFound when no document has the status.
	OldestDocumentByStatus(ctx context.Context, status domain.Status) (*domain.Document, error)
	DocumentByName(ctx context.Context, name string) (*domain.Document, error)
	DocumentsByStatus(ctx context.Context, status domain.Status) ([]*domain.Document, error)
}

type StatusTransitioner interface {
	TransitionStatus(ctx context.Context, name string, from, to domain.Status) (bool, error)
}

type BenefitsSaver interface {
	ReplaceBenefits(ctx context.Context, documentName string, benefits []*domain.Benefit) error
}

type TestCasesSaver interface {
	ReplaceTestCases(ctx context.Context, documentName string, testCases domain.TestCaseSet) error
}

type TextExtractor interface {
	ExtractText(ctx context.Context, documentName string) (string, error)
}

type BenefitAnalyzer interface {
	DiscoverBenefitNames(ctx context.Context, text string, known []string) ([]string, error)
	ExtractBenefitDetail(ctx context.Context, name, text string) (*domain.Benefit, error)
	GenerateTestCases(ctx context.Context, benefit *domain.Benefit) ([]*domain.TestCase, error)
}

type WorkQueue interface {
	Enqueue(ctx context.Context, item queue.Item) error
}

type WorkSource interface {
	Dequeue(ctx context.Context) (queue.Item, error)
}

type DocumentProcessor interface {
	Run(ctx context.Context, doc *domain.Document) (*domain.AnalysisResult, error)
}

type ReportGenerator interface {
	GenerateReport(outputPath string, result *domain.AnalysisResult) error
}
