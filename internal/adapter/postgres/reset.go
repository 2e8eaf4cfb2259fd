package postgres

import (
	"context"
	"fmt"
)

const truncateBoard = "TRUNCATE audit_logs, comments, tasks, board_columns, refresh_tokens, users CASCADE"

// BoardResetter empties every application table. It is meant for demo and
// test databases only.
type BoardResetter struct {
	db Querier
}

// NewBoardResetter creates a BoardResetter.
func NewBoardResetter(db Querier) *BoardResetter {
	return &BoardResetter{db: db}
}

// Reset truncates all tables, joining the transaction in ctx if there is one.
func (r *BoardResetter) Reset(ctx context.Context) error {
	if _, err := QuerierFromCtx(ctx, r.db).Exec(ctx, truncateBoard); err != nil {
		return fmt.Errorf("truncate board tables: %w", err)
	}
	return nil
}
