package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/doc_intelligence/internal/domain"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

const (
	uploadField     = "file"
	ownerHeader     = "X-User"
	pdfContentType  = "application/pdf"
	csvContentType  = "text/csv; charset=utf-8"
	jsonContentType = "application/json"
)

type DocumentsRepository interface {
	CreateDocument(ctx context.Context, doc *domain.Document) error
	DocumentByName(ctx context.Context, name string) (*domain.Document, error)
	Documents(ctx context.Context, limit, offset uint64) ([]*domain.Document, int, error)
}

type BenefitsRepository interface {
	BenefitsByDocument(ctx context.Context, documentName string) ([]*domain.Benefit, error)
}

type TestCasesRepository interface {
	TestCasesByDocument(ctx context.Context, documentName string) (domain.TestCaseSet, error)
}

type FileStorage interface {
	Upload(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, name string) error
}

type ReportRenderer interface {
	Render(result *domain.AnalysisResult) ([]byte, error)
}

type DocumentsHandler struct {
	log                 *slog.Logger
	maxUploadSize       int64
	documentsRepository DocumentsRepository
	benefitsRepository  BenefitsRepository
	testCasesRepository TestCasesRepository
	files               FileStorage
	renderer            ReportRenderer
}

func NewDocumentsHandler(
	log *slog.Logger,
	maxUploadSize int64,
	documentsRepository DocumentsRepository,
	benefitsRepository BenefitsRepository,
	testCasesRepository TestCasesRepository,
	files FileStorage,
	renderer ReportRenderer,
) *DocumentsHandler {
	return &DocumentsHandler{
		log:                 log,
		maxUploadSize:       maxUploadSize,
		documentsRepository: documentsRepository,
		benefitsRepository:  benefitsRepository,
		testCasesRepository: testCasesRepository,
		files:               files,
		renderer:            renderer,
	}
}

type GetDocumentsResponse struct {
	Documents  []*domain.Document `json:"documents"`
	Pagination Pagination         `json:"pagination"`
}

func (h *DocumentsHandler) GetDocuments(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	offset := (page - 1) * limit

	documents, total, err := h.documentsRepository.Documents(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, GetDocumentsResponse{
		Documents:  documents,
		Pagination: newPagination(page, limit, total),
	})
}

// UploadDocument stores the uploaded PDF and registers it as NotStarted. The stored object is removed
// again when the metadata row cannot be written.
func (h *DocumentsHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to read %q form file: %v", uploadField, err), http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to read upload: %v", err), http.StatusBadRequest)
		return
	}

	pages, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil || pages == 0 {
		http.Error(w, "file is not a valid pdf document", http.StatusBadRequest)
		return
	}

	id := uuid.New()
	doc := &domain.Document{
		ID:         id,
		Name:       objectName(id, header.Filename),
		Status:     domain.StatusNotStarted,
		UploadedAt: time.Now().UTC(),
		Owner:      owner(r),
	}

	log := h.log.With(slog.String("document", doc.Name))

	if err := h.files.Upload(r.Context(), doc.Name, bytes.NewReader(data), int64(len(data)), pdfContentType); err != nil {
		h.writeError(w, r, fmt.Errorf("failed to store document: %w", err))
		return
	}

	if err := h.documentsRepository.CreateDocument(r.Context(), doc); err != nil {
		if derr := h.files.Delete(context.WithoutCancel(r.Context()), doc.Name); derr != nil {
			log.ErrorContext(r.Context(), "failed to delete orphaned object", slog.String("err", derr.Error()))
		}

		h.writeError(w, r, fmt.Errorf("failed to register document: %w", err))
		return
	}

	log.InfoContext(r.Context(), "document uploaded",
		slog.Int("pages", pages),
		slog.String("owner", doc.Owner),
	)

	writeJSON(w, http.StatusCreated, doc)
}

func (h *DocumentsHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrDocumentNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrDocumentExists):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		h.log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(status)
	w.Write(data)
}

func objectName(id uuid.UUID, filename string) string {
	base := strings.ReplaceAll(filepath.Base(filename), " ", "_")
	if base == "." || base == string(filepath.Separator) {
		base = "document.pdf"
	}

	return id.String() + "_" + base
}

func owner(r *http.Request) string {
	if user := strings.TrimSpace(r.Header.Get(ownerHeader)); user != "" {
		return user
	}

	return domain.AnonymousOwner
}
