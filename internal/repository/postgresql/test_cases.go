package postgresql

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kurochkinivan/doc_intelligence/internal/domain"
)

const TableTestCases = "test_cases"

var testCaseColumns = []string{
	"name",
	"description",
	"type",
	"expected_result",
	"icd_codes",
	"procedure_codes",
	"place_of_service",
}

type TestCasesRepository struct {
	pool *pgxpool.Pool
	tx   *TxManager
	qb   sq.StatementBuilderType
}

func NewTestCasesRepository(pool *pgxpool.Pool, tx *TxManager) *TestCasesRepository {
	return &TestCasesRepository{
		pool: pool,
		tx:   tx,
		qb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

type testCaseRow struct {
	BenefitKey string `db:"benefit_key"`
	domain.TestCase
}

func (r *TestCasesRepository) TestCasesByDocument(ctx context.Context, documentName string) (domain.TestCaseSet, error) {
	db := extractDB(ctx, r.pool)

	sql, args, err := r.qb.
		Select(append([]string{"benefit_key"}, testCaseColumns...)...).
		From(TableTestCases).
		Where(sq.Eq{"document_name": documentName}).
		OrderBy("benefit_key ASC", "position ASC").
		ToSql()
	if err != nil {
		return nil, createQueryError(err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, executeQueryError(err)
	}

	collected, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[testCaseRow])
	if err != nil {
		return nil, collectRowsError(err)
	}

	set := make(domain.TestCaseSet)
	for _, row := range collected {
		tc := row.TestCase
		set.Add(row.BenefitKey, &tc)
	}

	return set, nil
}

// ReplaceTestCases drops the stored mapping for the document and writes the given one.
func (r *TestCasesRepository) ReplaceTestCases(ctx context.Context, documentName string, set domain.TestCaseSet) error {
	type item struct {
		key      string
		position int
		tc       *domain.TestCase
	}

	items := make([]item, 0, set.Len())
	for _, key := range set.Keys() {
		for i, tc := range set[key] {
			items = append(items, item{key: key, position: i, tc: tc})
		}
	}

	return r.tx.WithTransaction(ctx, func(ctx context.Context) error {
		db := extractDB(ctx, r.pool)

		sql, args, err := r.qb.
			Delete(TableTestCases).
			Where(sq.Eq{"document_name": documentName}).
			ToSql()
		if err != nil {
			return createQueryError(err)
		}

		if _, err := db.Exec(ctx, sql, args...); err != nil {
			return executeQueryError(err)
		}

		if len(items) == 0 {
			return nil
		}

		columns := append([]string{"document_name", "benefit_key", "position"}, testCaseColumns...)

		copied, err := db.CopyFrom(ctx, pgx.Identifier{TableTestCases}, columns,
			pgx.CopyFromSlice(len(items), func(i int) ([]any, error) {
				tc := items[i].tc
				return []any{
					documentName,
					items[i].key,
					items[i].position,
					tc.Name,
					tc.Description,
					tc.Type,
					tc.ExpectedResult,
					nonNil(tc.ICDCodes),
					nonNil(tc.ProcedureCodes),
					nonNil(tc.PlaceOfService),
				}, nil
			}))
		return copyRowsError(TableTestCases, int(copied), len(items), err)
	})
}

func nonNil(codes []string) []string {
	if codes == nil {
		return []string{}
	}

	return codes
}
