package postgres

import (
	"fmt"
	"strings"
)

// listingQuery accumulates AND-ed filter clauses with positional arguments.
// Each clause carries a single %s that receives the next placeholder.
type listingQuery struct {
	conditions []string
	args       []any
}

func (q *listingQuery) and(clause string, arg any) {
	q.args = append(q.args, arg)
	q.conditions = append(q.conditions, fmt.Sprintf(clause, fmt.Sprintf("$%d", len(q.args))))
}

// build appends the WHERE clause, ordering and limit to base.
func (q *listingQuery) build(base, orderBy string, limit int) (string, []any) {
	var sb strings.Builder
	sb.WriteString(base)
	if len(q.conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(q.conditions, " AND "))
	}

	args := append([]any(nil), q.args...)
	args = append(args, limit)
	fmt.Fprintf(&sb, " ORDER BY %s LIMIT $%d", orderBy, len(args))
	return sb.String(), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns user text into an ILIKE pattern that matches it as a
// literal substring.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
