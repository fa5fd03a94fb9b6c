package querybuilder

import (
	"fmt"
	"strconv"
	"strings"
)

// writer accumulates SQL text and positional args with $N placeholders.
type writer struct {
	buf  strings.Builder
	args []any
	next int
}

func newWriter() *writer {
	return &writer{next: 1}
}

func (w *writer) text(s string) {
	w.buf.WriteString(s)
}

func (w *writer) arg(v any) {
	w.buf.WriteString("$" + strconv.Itoa(w.next))
	w.args = append(w.args, v)
	w.next++
}

// expr rewrites '?' markers in raw SQL into $N placeholders.
func (w *writer) expr(raw string, args []any) {
	if len(args) == 0 {
		w.buf.WriteString(raw)
		return
	}
	used := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] == '?' && used < len(args) {
			w.arg(args[used])
			used++
			continue
		}
		w.buf.WriteByte(raw[i])
	}
}

// Condition renders one WHERE predicate.
type Condition func(w *writer)

func Eq(column string, value any) Condition {
	return func(w *writer) {
		w.text(column)
		w.text(" = ")
		w.arg(value)
	}
}

func In(column string, values []any) Condition {
	return func(w *writer) {
		if len(values) == 0 {
			w.text("1=0")
			return
		}
		w.text(column)
		w.text(" IN (")
		for i, v := range values {
			if i > 0 {
				w.text(", ")
			}
			w.arg(v)
		}
		w.text(")")
	}
}

func NotIn(column string, values []any) Condition {
	return func(w *writer) {
		if len(values) == 0 {
			w.text("1=1")
			return
		}
		w.text(column)
		w.text(" NOT IN (")
		for i, v := range values {
			if i > 0 {
				w.text(", ")
			}
			w.arg(v)
		}
		w.text(")")
	}
}

func IsNull(column string) Condition {
	return func(w *writer) {
		w.text(column)
		w.text(" IS NULL")
	}
}

func Expr(raw string, args ...any) Condition {
	return func(w *writer) {
		w.expr(raw, args)
	}
}

func writeWhere(w *writer, conditions []Condition) {
	if len(conditions) == 0 {
		return
	}
	w.text(" WHERE ")
	for i, c := range conditions {
		if i > 0 {
			w.text(" AND ")
		}
		c(w)
	}
}

type SelectBuilder struct {
	columns []string
	table   string
	where   []Condition
	orderBy []string
	limit   int
}

func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: append([]string(nil), columns...)}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

func (b *SelectBuilder) Where(conditions ...Condition) *SelectBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *SelectBuilder) OrderBy(parts ...string) *SelectBuilder {
	b.orderBy = append(b.orderBy, parts...)
	return b
}

func (b *SelectBuilder) Limit(limit int) *SelectBuilder {
	b.limit = limit
	return b
}

func (b *SelectBuilder) ToSQL() (string, []any, error) {
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("select columns are required")
	}
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("select table is required")
	}

	w := newWriter()
	w.text("SELECT ")
	w.text(strings.Join(b.columns, ", "))
	w.text(" FROM ")
	w.text(b.table)
	writeWhere(w, b.where)
	if len(b.orderBy) > 0 {
		w.text(" ORDER BY ")
		w.text(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		w.text(" LIMIT ")
		w.text(strconv.Itoa(b.limit))
	}

	return w.buf.String(), w.args, nil
}

type InsertBuilder struct {
	table   string
	columns []string
	rows    [][]any
	suffix  string
}

func InsertInto(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.columns = append([]string(nil), columns...)
	return b
}

func (b *InsertBuilder) Values(values ...any) *InsertBuilder {
	b.rows = append(b.rows, append([]any(nil), values...))
	return b
}

// Suffix appends raw SQL after VALUES, typically an ON CONFLICT clause.
func (b *InsertBuilder) Suffix(sql string) *InsertBuilder {
	b.suffix = strings.TrimSpace(sql)
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("insert table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("insert columns are required")
	}
	if len(b.rows) == 0 {
		return "", nil, fmt.Errorf("insert values are required")
	}

	w := newWriter()
	w.text("INSERT INTO ")
	w.text(b.table)
	w.text(" (")
	w.text(strings.Join(b.columns, ", "))
	w.text(") VALUES ")

	for rowIdx, row := range b.rows {
		if len(row) != len(b.columns) {
			return "", nil, fmt.Errorf("insert row %d has %d values, expected %d", rowIdx, len(row), len(b.columns))
		}
		if rowIdx > 0 {
			w.text(", ")
		}
		w.text("(")
		for colIdx, value := range row {
			if colIdx > 0 {
				w.text(", ")
			}
			w.arg(value)
		}
		w.text(")")
	}

	if b.suffix != "" {
		w.text(" ")
		w.text(b.suffix)
	}

	return w.buf.String(), w.args, nil
}

type UpdateBuilder struct {
	table   string
	columns []string
	values  []any
	where   []Condition
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.columns = append(b.columns, column)
	b.values = append(b.values, value)
	return b
}

func (b *UpdateBuilder) Where(conditions ...Condition) *UpdateBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("update table is required")
	}
	if len(b.columns) == 0 {
		return "", nil, fmt.Errorf("update sets are required")
	}

	w := newWriter()
	w.text("UPDATE ")
	w.text(b.table)
	w.text(" SET ")
	for i, column := range b.columns {
		if i > 0 {
			w.text(", ")
		}
		w.text(column)
		w.text(" = ")
		w.arg(b.values[i])
	}
	writeWhere(w, b.where)

	return w.buf.String(), w.args, nil
}

type DeleteBuilder struct {
	table string
	where []Condition
}

func DeleteFrom(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(conditions ...Condition) *DeleteBuilder {
	b.where = append(b.where, conditions...)
	return b
}

func (b *DeleteBuilder) ToSQL() (string, []any, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", nil, fmt.Errorf("delete table is required")
	}

	w := newWriter()
	w.text("DELETE FROM ")
	w.text(b.table)
	writeWhere(w, b.where)

	return w.buf.String(), w.args, nil
}
