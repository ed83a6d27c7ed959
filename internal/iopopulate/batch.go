package iopopulate

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// maxParams is the PostgreSQL limit of bind parameters per statement.
const maxParams = 65535

// table describes an insert target.
type table struct {
	name     string
	columns  []string
	conflict string
}

// insertSQL builds a multi-row INSERT for n rows that skips rows
// conflicting on the table's natural key.
func (t table) insertSQL(n int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s (%s) VALUES ",
		pgx.Identifier{t.name}.Sanitize(),
		strings.Join(t.columns, ", "),
	)
	b.WriteString(valuesClause(n, len(t.columns)))
	fmt.Fprintf(&b, " ON CONFLICT (%s) DO NOTHING", t.conflict)
	return b.String()
}

// valuesClause returns "($1, $2), ($3, $4)" style placeholders.
func valuesClause(rows, cols int) string {
	var b strings.Builder
	arg := 1
	for i := range rows {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for j := range cols {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "$%d", arg)
			arg++
		}
		b.WriteByte(')')
	}
	return b.String()
}

// batchSize caps the configured batch size so that one statement never
// exceeds the bind parameter limit.
func batchSize(configured, cols int) int {
	limit := maxParams / cols
	if configured <= 0 || configured > limit {
		return limit
	}
	return configured
}

// writeTable inserts all rows into t inside one transaction. Either every
// batch is committed or none is. It returns the number of rows actually
// inserted, which excludes rows skipped on conflict.
func (p *populator) writeTable(
	ctx context.Context,
	t table,
	rows [][]any,
) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := p.operator.Pool().Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("cannot begin transaction: %w", err)
	}
	// no-op after a successful commit
	defer tx.Rollback(ctx)

	size := batchSize(p.cfg.Database.BatchSize, len(t.columns))
	bar := newProgressBar(len(rows), t.name+": ")
	defer bar.Finish()

	var inserted int64
	for i := 0; i < len(rows); i += size {
		if err = ctx.Err(); err != nil {
			return 0, err
		}

		end := min(i+size, len(rows))
		batch := rows[i:end]

		args := make([]any, 0, len(batch)*len(t.columns))
		for _, r := range batch {
			args = append(args, r...)
		}

		tag, err := tx.Exec(ctx, t.insertSQL(len(batch)), args...)
		if err != nil {
			return 0, fmt.Errorf("failed to insert %s batch: %w", t.name, err)
		}
		inserted += tag.RowsAffected()
		bar.Add(len(batch))
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("cannot commit %s: %w", t.name, err)
	}
	return int(inserted), nil
}
