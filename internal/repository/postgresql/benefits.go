package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/doc_intelligence/internal/domain"
)

const TableBenefits = "benefits"

type BenefitsRepository struct {
	pool *pgxpool.Pool
	tx   *TxManager
	qb   sq.StatementBuilderType
}

func NewBenefitsRepository(pool *pgxpool.Pool, tx *TxManager) *BenefitsRepository {
	return &BenefitsRepository{
		pool: pool,
		tx:   tx,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *BenefitsRepository) BenefitsByDocument(ctx context.Context, documentName string) ([]*domain.Benefit, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(
			"benefit",
			"in_network",
			"out_of_network",
			"limitations",
		).
		From(TableBenefits).
		Where(sq.Eq{"document_name": documentName}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	benefits, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[domain.Benefit])
	if err != nil {
		return nil, collectRowsError(err)
	}

	return benefits, nil
}

// ReplaceBenefits drops whatever was stored for the document and writes benefits in their given order.
func (r *BenefitsRepository) ReplaceBenefits(ctx context.Context, documentName string, benefits []*domain.Benefit) error {
	return r.tx.WithTransaction(ctx, func(ctx context.Context) error {
		db := extractDB(ctx, r.pool)

		sql, args, err := r.qb.
			Delete(TableBenefits).
			Where(sq.Eq{"document_name": documentName}).
			ToSql()
		if err != nil {
			return createQueryError(err)
		}

		if _, err := db.Exec(ctx, sql, args...); err != nil {
			return executeQueryError(err)
		}

		if len(benefits) == 0 {
			return nil
		}

		copied, err := db.CopyFrom(ctx, pgx.Identifier{TableBenefits}, []string{
			"document_name",
			"position",
			"benefit",
			"in_network",
			"out_of_network",
			"limitations",
		}, pgx.CopyFromSlice(len(benefits), func(i int) ([]any, error) {
			return []any{
				documentName,
				i,
				benefits[i].Benefit,
				benefits[i].InNetworkConditions,
				benefits[i].OutOfNetworkConditions,
				benefits[i].Limitations,
			}, nil
		}))
		return copyRowsError(TableBenefits, int(copied), len(benefits), err)
	})
}
