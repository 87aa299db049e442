package builder

import (
	"fmt"
	"strings"
)

// SQLBuilder assembles parameterized SELECT and INSERT statements.
// Conditions are written with "?" markers and renumbered to "$1", "$2",
// ... on Build, a placeholder form both the sqlite and postgres drivers
// accept. The dashboard has no update or delete path.
type SQLBuilder struct {
	table    string
	columns  []string
	joins    []string
	orderBy  []string
	limit    int
	offset   int
	isInsert bool

	where  []string
	groups []*SQLBuilder
	args   []interface{}
}

// NewSQLBuilder creates a new instance of SQLBuilder.
func NewSQLBuilder() *SQLBuilder {
	return &SQLBuilder{}
}

// Select specifies the columns to retrieve.
func (b *SQLBuilder) Select(cols ...string) *SQLBuilder {
	b.columns = cols
	return b
}

// From specifies the table to select from.
func (b *SQLBuilder) From(table string) *SQLBuilder {
	b.table = table
	return b
}

// Insert specifies the table and columns for insertion.
func (b *SQLBuilder) Insert(table string, cols ...string) *SQLBuilder {
	b.isInsert = true
	b.table = table
	b.columns = cols
	return b
}

// Values specifies the values for insertion.
func (b *SQLBuilder) Values(vals ...interface{}) *SQLBuilder {
	b.args = append(b.args, vals...)
	return b
}

// Join adds a JOIN clause.
func (b *SQLBuilder) Join(joinType, table, on string) *SQLBuilder {
	b.joins = append(b.joins, fmt.Sprintf("%s JOIN %s ON %s", joinType, table, on))
	return b
}

// LeftJoin adds a LEFT JOIN clause.
func (b *SQLBuilder) LeftJoin(table, on string) *SQLBuilder {
	return b.Join("LEFT", table, on)
}

// Where adds a condition. Top-level conditions are combined with AND.
func (b *SQLBuilder) Where(condition string, args ...interface{}) *SQLBuilder {
	b.where = append(b.where, condition)
	b.args = append(b.args, args...)
	return b
}

// WhereGroup adds a parenthesized group of conditions combined with OR,
// AND-ed with the other top-level conditions. The provided function
// receives a fresh builder for the group's conditions.
func (b *SQLBuilder) WhereGroup(fn func(*SQLBuilder) *SQLBuilder) *SQLBuilder {
	group := fn(NewSQLBuilder())
	b.groups = append(b.groups, group)
	return b
}

// OrderBy adds an ORDER BY term.
func (b *SQLBuilder) OrderBy(order string) *SQLBuilder {
	b.orderBy = append(b.orderBy, order)
	return b
}

// Limit adds a LIMIT clause.
func (b *SQLBuilder) Limit(limit int) *SQLBuilder {
	b.limit = limit
	return b
}

// Offset adds an OFFSET clause.
func (b *SQLBuilder) Offset(offset int) *SQLBuilder {
	b.offset = offset
	return b
}

// Build constructs the final SQL string and its argument list.
func (b *SQLBuilder) Build() (string, []interface{}) {
	var sb strings.Builder

	if b.isInsert {
		sb.WriteString("INSERT INTO ")
		sb.WriteString(b.table)
		sb.WriteString(" (")
		sb.WriteString(strings.Join(b.columns, ", "))
		sb.WriteString(") VALUES (")
		markers := make([]string, len(b.args))
		for i := range markers {
			markers[i] = "?"
		}
		sb.WriteString(strings.Join(markers, ", "))
		sb.WriteString(")")
		return numberPlaceholders(sb.String()), b.args
	}

	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(b.columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(b.table)
	for _, join := range b.joins {
		sb.WriteString(" ")
		sb.WriteString(join)
	}

	conditions := b.where
	args := b.args
	for _, group := range b.groups {
		if len(group.where) == 0 {
			continue
		}
		conditions = append(conditions, "("+strings.Join(group.where, " OR ")+")")
		args = append(args, group.args...)
	}
	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}

	if len(b.orderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(b.orderBy, ", "))
	}
	if b.limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT %d", b.limit))
	}
	if b.offset > 0 {
		sb.WriteString(fmt.Sprintf(" OFFSET %d", b.offset))
	}

	return numberPlaceholders(sb.String()), args
}

// numberPlaceholders rewrites each "?" marker as "$1", "$2", ... in order.
func numberPlaceholders(sql string) string {
	parts := strings.Split(sql, "?")
	if len(parts) == 1 {
		return sql
	}
	var sb strings.Builder
	for i, part := range parts {
		sb.WriteString(part)
		if i < len(parts)-1 {
			sb.WriteString(fmt.Sprintf("$%d", i+1))
		}
	}
	return sb.String()
}
