package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sandevgo/skipper/pkg/log"
)

type UsageCount struct {
	Command string
	Count   int64
}

// UsageRepo records one row per successful command dispatch.
type UsageRepo struct {
	db *sql.DB
}

func NewUsageRepo(db *sql.DB) *UsageRepo {
	return &UsageRepo{db: db}
}

func (r *UsageRepo) Record(ctx context.Context, command, chatID, author string) error {
	query := `INSERT INTO usage (command, chat_id, author) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, command, chatID, author); err != nil {
		return fmt.Errorf("failed to record usage: %w", err)
	}
	return nil
}

// TopCommands returns the most invoked commands, busiest first.
func (r *UsageRepo) TopCommands(ctx context.Context, limit int) ([]UsageCount, error) {
	query := `SELECT command, COUNT(*) AS cnt FROM usage GROUP BY command ORDER BY cnt DESC, command ASC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query usage: %w", err)
	}
	defer rows.Close()

	var counts []UsageCount
	for rows.Next() {
		var c UsageCount
		if err := rows.Scan(&c.Command, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan usage row: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.FromCtx(ctx).Debug().Int("count", len(counts)).Msg("loaded usage counts")
	return counts, nil
}
