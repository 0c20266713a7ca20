package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jszwec/csvutil"
	"github.com/kurochkinivan/doc_intelligence/internal/domain"
	"github.com/kurochkinivan/doc_intelligence/internal/pipeline"
)

type GetBenefitsResponse struct {
	Document *domain.Document  `json:"document"`
	Benefits []*domain.Benefit `json:"benefits"`
}

type GetTestCasesResponse struct {
	Document  *domain.Document   `json:"document"`
	TestCases domain.TestCaseSet `json:"test_cases"`
}

type testCaseRecord struct {
	Benefit        string `csv:"benefit"`
	Name           string `csv:"name"`
	Description    string `csv:"description"`
	Type           string `csv:"type"`
	ExpectedResult string `csv:"expected_result"`
	ICDCodes       string `csv:"icd_codes"`
	ProcedureCodes string `csv:"procedure_codes"`
	PlaceOfService string `csv:"place_of_service"`
}

func (h *DocumentsHandler) GetBenefits(w http.ResponseWriter, r *http.Request) {
	doc, err := h.documentsRepository.DocumentByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	benefits, err := h.benefitsRepository.BenefitsByDocument(r.Context(), doc.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, GetBenefitsResponse{
		Document: doc,
		Benefits: benefits,
	})
}

func (h *DocumentsHandler) GetTestCases(w http.ResponseWriter, r *http.Request) {
	doc, testCases, err := h.testCases(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, GetTestCasesResponse{
		Document:  doc,
		TestCases: testCases,
	})
}

// GetTestCasesCSV exports one row per test case; the benefit column carries the human readable description.
func (h *DocumentsHandler) GetTestCasesCSV(w http.ResponseWriter, r *http.Request) {
	doc, testCases, err := h.testCases(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	records := make([]testCaseRecord, 0, testCases.Len())
	for _, key := range testCases.Keys() {
		description := key
		if benefit, err := domain.BenefitFromKey(key); err == nil {
			description = benefit.Describe()
		}

		for _, tc := range testCases[key] {
			records = append(records, testCaseRecord{
				Benefit:        description,
				Name:           tc.Name,
				Description:    tc.Description,
				Type:           tc.Type,
				ExpectedResult: tc.ExpectedResult,
				ICDCodes:       strings.Join(tc.ICDCodes, ","),
				ProcedureCodes: strings.Join(tc.ProcedureCodes, ","),
				PlaceOfService: strings.Join(tc.PlaceOfService, ","),
			})
		}
	}

	data, err := csvutil.Marshal(records)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("failed to encode test cases: %w", err))
		return
	}

	w.Header().Set("Content-Type", csvContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Name+".test_cases.csv"))
	w.Write(data)
}

// GetReport renders the PDF summary of a succeeded document on demand.
func (h *DocumentsHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	doc, err := h.documentsRepository.DocumentByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if doc.Status != domain.StatusSucceeded {
		http.Error(w, fmt.Sprintf("document is %s, report is available once it succeeds", doc.Status), http.StatusConflict)
		return
	}

	benefits, err := h.benefitsRepository.BenefitsByDocument(r.Context(), doc.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	testCases, err := h.testCasesRepository.TestCasesByDocument(r.Context(), doc.Name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	data, err := h.renderer.Render(&domain.AnalysisResult{
		Document:  doc,
		Benefits:  benefits,
		TestCases: testCases,
	})
	if err != nil {
		h.writeError(w, r, fmt.Errorf("failed to render report: %w", err))
		return
	}

	w.Header().Set("Content-Type", pdfContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pipeline.ReportName(doc.Name)))
	w.Write(data)
}

func (h *DocumentsHandler) testCases(r *http.Request) (*domain.Document, domain.TestCaseSet, error) {
	doc, err := h.documentsRepository.DocumentByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		return nil, nil, err
	}

	testCases, err := h.testCasesRepository.TestCasesByDocument(r.Context(), doc.Name)
	if err != nil {
		return nil, nil, err
	}

	return doc, testCases, nil
}
