package services

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/askdb-io/askdb/pkg/apperrors"
	"github.com/askdb-io/askdb/pkg/logging"
)

// QueryExecutor runs an approved SQL statement against the embedded store.
type QueryExecutor interface {
	Execute(ctx context.Context, sqlQuery string) ([]map[string]any, error)
}

type sqlExecutor struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewQueryExecutor creates an executor bound to the given database handle.
// The handle is owned by the caller and shared across requests.
func NewQueryExecutor(db *sql.DB, logger *zap.Logger) QueryExecutor {
	return &sqlExecutor{
		db:     db,
		logger: logger.Named("executor"),
	}
}

// Execute runs the statement and returns one map per row, keyed by column
// name. Execution errors are wrapped in ErrExecutionFailed so handlers can
// surface a generic server error without leaking storage internals.
func (e *sqlExecutor) Execute(ctx context.Context, sqlQuery string) ([]map[string]any, error) {
	rows, err := e.db.QueryContext(ctx, sqlQuery)
	if err != nil {
		e.logger.Error("Query execution failed",
			zap.String("sql", logging.SanitizeQuery(sqlQuery)),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrExecutionFailed, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrExecutionFailed, err)
	}

	results := make([]map[string]any, 0)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrExecutionFailed, err)
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			// Drivers may hand back raw bytes for text columns.
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrExecutionFailed, err)
	}

	return results, nil
}
