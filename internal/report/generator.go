// Package report renders analysis results as PDF documents.
package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/kurochkinivan/doc_intelligence/internal/domain"
)

var (
	titleStyle   = props.Text{Size: 16, Style: fontstyle.Bold, Align: align.Center}
	headingStyle = props.Text{Size: 12, Style: fontstyle.Bold, Top: 2}
	labelStyle   = props.Text{Size: 9, Style: fontstyle.Bold}
	valueStyle   = props.Text{Size: 9}
	mutedStyle   = props.Text{Size: 8, Style: fontstyle.Italic, Color: &props.Color{Red: 110, Green: 110, Blue: 110}}
)

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// GenerateReport writes the report to outputPath, creating missing directories.
func (g *Generator) GenerateReport(outputPath string, result *domain.AnalysisResult) error {
	data, err := g.Render(result)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// Render returns the report as PDF bytes.
func (g *Generator) Render(result *domain.AnalysisResult) ([]byte, error) {
	if result == nil || result.Document == nil {
		return nil, errors.New("failed to render report: empty result")
	}

	cfg := config.NewBuilder().
		WithLeftMargin(12).
		WithRightMargin(12).
		WithTopMargin(12).
		Build()

	m := maroto.New(cfg)

	m.AddRows(header(result)...)

	for i, benefit := range result.Benefits {
		m.AddRows(benefitRows(i+1, benefit)...)
		m.AddRows(testCaseRows(result.TestCases[benefit.Key()])...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate pdf: %w", err)
	}

	return doc.GetBytes(), nil
}

func header(result *domain.AnalysisResult) []core.Row {
	completed := result.CompletedAt
	if completed.IsZero() {
		completed = time.Now()
	}

	return []core.Row{
		text.NewRow(12, "Benefit analysis report", titleStyle),
		field("Document", result.Document.Name),
		field("Owner", result.Document.Owner),
		field("Uploaded", formatTime(result.Document.UploadedAt)),
		field("Completed", formatTime(completed)),
		field("Benefits", fmt.Sprintf("%d", len(result.Benefits))),
		field("Test cases", fmt.Sprintf("%d", result.TestCases.Len())),
		line.NewRow(4),
	}
}

func benefitRows(n int, b *domain.Benefit) []core.Row {
	return []core.Row{
		text.NewRow(9, fmt.Sprintf("%d. %s", n, b.Benefit), headingStyle),
		field("In-network", orDash(b.InNetworkConditions)),
		field("Out-of-network", orDash(b.OutOfNetworkConditions)),
		field("Limitations", orDash(b.Limitations)),
	}
}

func testCaseRows(cases []*domain.TestCase) []core.Row {
	if len(cases) == 0 {
		return []core.Row{text.NewRow(6, "No test cases generated.", mutedStyle)}
	}

	rows := make([]core.Row, 0, len(cases)*2)
	for _, tc := range cases {
		rows = append(rows,
			row.New().Add(
				col.New(1),
				text.NewCol(11, fmt.Sprintf("%s (%s)", tc.Name, orDash(tc.Type)), labelStyle),
			),
			row.New().Add(
				col.New(1),
				text.NewCol(11, testCaseDetails(tc), valueStyle),
			),
		)
	}

	return rows
}

func testCaseDetails(tc *domain.TestCase) string {
	var sb strings.Builder

	if tc.Description != "" {
		sb.WriteString(tc.Description)
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Expected: %s\n", orDash(tc.ExpectedResult))
	fmt.Fprintf(&sb, "ICD: %s; Procedure: %s; Place of service: %s",
		orDash(strings.Join(tc.ICDCodes, ", ")),
		orDash(strings.Join(tc.ProcedureCodes, ", ")),
		orDash(strings.Join(tc.PlaceOfService, ", ")),
	)

	return sb.String()
}

func field(label, value string) core.Row {
	return row.New().Add(
		text.NewCol(3, label, labelStyle),
		text.NewCol(9, value, valueStyle),
	)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.UTC().Format(time.RFC3339)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}

	return s
}
