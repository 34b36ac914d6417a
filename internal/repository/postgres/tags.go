package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Dependent tag tables of a seeker. Names are fixed here and never come from input.
const (
	workTypesTable = "seeker_work_types"
	workTypeColumn = "work_type"
	daysTable      = "seeker_available_days"
	dayColumn      = "day"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// buildTagInsert returns a multi-row insert for one seeker's tags:
// INSERT INTO t (seeker_id, c) VALUES ($1, $2), ($1, $3) ...
func buildTagInsert(table, column string, seekerID int64, values []string) (string, []any) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "INSERT INTO %s (seeker_id, %s) VALUES ", table, column)

	args := make([]any, 0, len(values)+1)
	args = append(args, seekerID)
	for i, v := range values {
		if i > 0 {
			sb.WriteString(", ")
		}
		args = append(args, v)
		fmt.Fprintf(&sb, "($1, $%d)", len(args))
	}
	return sb.String(), args
}

// loadTags fetches tag values for a batch of seekers in insertion order.
// Every requested id is present in the result, with an empty slice if it has no tags.
func loadTags(ctx context.Context, q querier, table, column string, seekerIDs []int64) (map[int64][]string, error) {
	out := make(map[int64][]string, len(seekerIDs))
	for _, id := range seekerIDs {
		out[id] = []string{}
	}
	if len(seekerIDs) == 0 {
		return out, nil
	}

	query := fmt.Sprintf(`SELECT seeker_id, %s FROM %s WHERE seeker_id = ANY($1) ORDER BY id`, column, table)
	rows, err := q.Query(ctx, query, seekerIDs)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			seekerID int64
			value    string
		)
		if err := rows.Scan(&seekerID, &value); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		out[seekerID] = append(out[seekerID], value)
	}
	return out, rows.Err()
}
