package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/kurochkinivan/doc_intelligence/internal/domain"
)

// Reporter writes a PDF summary for every finished analysis.
type Reporter struct {
	log             *slog.Logger
	outputDir       string
	results         <-chan *domain.AnalysisResult
	reportGenerator ReportGenerator
}

func NewReporter(
	log *slog.Logger,
	outputDir string,
	results <-chan *domain.AnalysisResult,
	reportGenerator ReportGenerator,
) *Reporter {
	return &Reporter{
		log:             log,
		outputDir:       outputDir,
		results:         results,
		reportGenerator: reportGenerator,
	}
}

func (r *Reporter) Run(ctx context.Context) error {
	for {
		select {
		case result, ok := <-r.results:
			if !ok {
				return nil
			}

			log := r.log.With(
				slog.String("document", result.Document.Name),
				slog.Int("benefits", len(result.Benefits)),
			)

			path, err := r.processResult(result)
			if err != nil {
				log.ErrorContext(ctx, "failed to generate report", slog.String("err", err.Error()))
				continue
			}

			log.InfoContext(ctx, "report generated", slog.String("path", path))

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *Reporter) processResult(result *domain.AnalysisResult) (string, error) {
	path := filepath.Join(r.outputDir, ReportName(result.Document.Name))

	if err := r.reportGenerator.GenerateReport(path, result); err != nil {
		return "", fmt.Errorf("failed to generate report %q: %w", path, err)
	}

	return path, nil
}

// ReportName is the file name of the report for a document.
func ReportName(documentName string) string {
	base := filepath.Base(documentName)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".report.pdf"
}
