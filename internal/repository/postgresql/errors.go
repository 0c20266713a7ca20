package postgresql

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kurochkinivan/doc_intelligence/internal/domain"
)

const uniqueViolation = "23505"

func createQueryError(err error) error {
	return fmt.Errorf("failed to create query: %w", err)
}

func executeQueryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.TableName == TableDocuments {
		return fmt.Errorf("%w: %s", domain.ErrDocumentExists, pgErr.Detail)
	}

	return fmt.Errorf("failed to execute query: %w", err)
}

func scanRowError(err error) error {
	return fmt.Errorf("failed to scan row: %w", err)
}

// collectRowsError maps an empty single-row result to domain.ErrDocumentNotFound.
func collectRowsError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrDocumentNotFound
	}

	return fmt.Errorf("failed to collect rows: %w", err)
}

func copyRowsError(table string, copied, expected int, err error) error {
	if err != nil {
		return fmt.Errorf("failed to copy rows into %s: %w", table, err)
	}

	if copied != expected {
		return fmt.Errorf("failed to copy rows into %s: copied %d, expected %d", table, copied, expected)
	}

	return nil
}
