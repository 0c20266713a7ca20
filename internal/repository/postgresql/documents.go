package postgresql

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/doc_intelligence/internal/domain"
)

const TableDocuments = "documents"

var documentColumns = []string{
	"id",
	"name",
	"status",
	"uploaded_at",
	"owner",
}

type DocumentsRepository struct {
	pool *pgxpool.Pool
	qb   sq.StatementBuilderType
}

func NewDocumentsRepository(pool *pgxpool.Pool) *DocumentsRepository {
	return &DocumentsRepository{
		pool: pool,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *DocumentsRepository) CreateDocument(ctx context.Context, doc *domain.Document) error {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Insert(TableDocuments).
		Columns(documentColumns...).
		Values(
			doc.ID,
			doc.Name,
			doc.Status,
			doc.UploadedAt,
			doc.Owner,
		).
		ToSql()
	if err != nil {
		return createQueryError(err)
	}

	if _, err := db.Exec(ctx, sql, args...); err != nil {
		return executeQueryError(err)
	}

	return nil
}

// OldestDocumentByStatus returns domain.ErrDocumentNotFound when no document has the status.
func (r *DocumentsRepository) OldestDocumentByStatus(ctx context.Context, status domain.Status) (*domain.Document, error) {
	return r.document(ctx, r.qb.
		Select(documentColumns...).
		From(TableDocuments).
		Where(sq.Eq{"status": status}).
		OrderBy("uploaded_at ASC", "name ASC").
		Limit(1),
	)
}

func (r *DocumentsRepository) DocumentByName(ctx context.Context, name string) (*domain.Document, error) {
	return r.document(ctx, r.qb.
		Select(documentColumns...).
		From(TableDocuments).
		Where(sq.Eq{"name": name}),
	)
}

func (r *DocumentsRepository) DocumentsByStatus(ctx context.Context, status domain.Status) ([]*domain.Document, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(documentColumns...).
		From(TableDocuments).
		Where(sq.Eq{"status": status}).
		OrderBy("uploaded_at ASC", "name ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	docs, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Document])
	if err != nil {
		return nil, collectRowsError(err)
	}

	if err := checkStatus(docs...); err != nil {
		return nil, err
	}

	return docs, nil
}

// Documents returns a page of documents, newest first, and the total number of documents.
func (r *DocumentsRepository) Documents(ctx context.Context, limit, offset uint64) ([]*domain.Document, int, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select("COUNT(*)").
		From(TableDocuments).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	var total int
	if err := db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, -1, scanRowError(err)
	}

	sql, args, err = r.qb.
		Select(documentColumns...).
		From(TableDocuments).
		OrderBy("uploaded_at DESC", "name ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, -1, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, -1, executeQueryError(err)
	}

	docs, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Document])
	if err != nil {
		return nil, -1, collectRowsError(err)
	}

	if err := checkStatus(docs...); err != nil {
		return nil, -1, err
	}

	return docs, total, nil
}

// TransitionStatus moves the document from one status to another only if it still has the expected
// status. It reports false when the row was changed by someone else in the meantime.
func (r *DocumentsRepository) TransitionStatus(ctx context.Context, name string, from, to domain.Status) (bool, error) {
	if !from.CanTransitionTo(to) {
		return false, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, from, to)
	}

	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableDocuments).
		Set("status", to).
		Where(sq.Eq{
			"name":   name,
			"status": from,
		}).
		ToSql()
	if err != nil {
		return false, createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return false, executeQueryError(err)
	}

	return tag.RowsAffected() == 1, nil
}

// FailAbandoned marks documents left in processing by a previous run as failed.
func (r *DocumentsRepository) FailAbandoned(ctx context.Context) (int64, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Update(TableDocuments).
		Set("status", domain.StatusFailed).
		Where(sq.Eq{"status": domain.StatusProcessing}).
		ToSql()
	if err != nil {
		return 0, createQueryError(err)
	}

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, executeQueryError(err)
	}

	return tag.RowsAffected(), nil
}

func (r *DocumentsRepository) document(ctx context.Context, query sq.SelectBuilder) (*domain.Document, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	doc, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByNameLax[domain.Document])
	if err != nil {
		return nil, collectRowsError(err)
	}

	if err := checkStatus(doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func checkStatus(docs ...*domain.Document) error {
	for _, doc := range docs {
		if !doc.Status.Valid() {
			return fmt.Errorf("document %q has unknown status %q", doc.Name, doc.Status)
		}
	}

	return nil
}
