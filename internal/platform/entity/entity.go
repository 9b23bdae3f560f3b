// Package entity implements the generic record store shared by every
// entity screen: list/search display rows, parameterized insert, update,
// and delete, all driven by a declarative Descriptor instead of per-screen
// SQL.
package entity

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/hms/hms/internal/platform/db"
)

// Descriptor declares how one entity maps onto its table: which columns
// mutations write, how display rows are selected and joined, and which
// text columns a search term matches.
type Descriptor struct {
	Table         string   // mutation target
	IDColumn      string   // surrogate key column
	InsertColumns []string // columns written by Insert/Update, in order
	ListColumns   []string // select expressions for display rows
	ListFrom      string   // FROM clause for display rows; "" means Table
	ListIDColumn  string   // qualified id for searches; "" means Table.IDColumn
	SearchColumns []string // qualified text columns, OR-combined
	OrderBy       string   // natural display order
	Placeholder   string   // synthetic row text when no records exist
}

func (d Descriptor) from() string {
	if d.ListFrom != "" {
		return d.ListFrom
	}
	return d.Table
}

func (d Descriptor) listIDColumn() string {
	if d.ListIDColumn != "" {
		return d.ListIDColumn
	}
	return d.Table + "." + d.IDColumn
}

func (d Descriptor) listSQL() string {
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		strings.Join(d.ListColumns, ", "), d.from(), d.OrderBy)
}

// PlaceholderRow is the single synthetic row shown when a listing is
// empty. The message sits in a middle cell so it reads centered in the
// listing.
func (d Descriptor) PlaceholderRow() []string {
	row := make([]string, len(d.ListColumns))
	row[len(row)/2] = d.Placeholder
	return row
}

// IsPlaceholder reports whether rows is just the synthetic empty-listing
// marker.
func (d Descriptor) IsPlaceholder(rows [][]string) bool {
	if len(rows) != 1 {
		return false
	}
	for i, cell := range rows[0] {
		if i == len(rows[0])/2 {
			if cell != d.Placeholder {
				return false
			}
		} else if cell != "" {
			return false
		}
	}
	return true
}

// Rows returns the full display listing in natural order, or the
// placeholder row when the table is empty.
func Rows(ctx context.Context, q db.Querier, d Descriptor) ([][]string, error) {
	rows, err := q.QueryContext(ctx, d.listSQL())
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", d.Table, err)
	}
	defer rows.Close()

	out, err := scanDisplayRows(rows, len(d.ListColumns))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", d.Table, err)
	}
	if len(out) == 0 {
		out = [][]string{d.PlaceholderRow()}
	}
	return out, nil
}

// SearchRows returns display rows whose search columns contain term
// (case-insensitive substring). An all-digit term also matches the id
// exactly. A blank term is equivalent to Rows. No matches returns an
// empty slice, not the placeholder.
func SearchRows(ctx context.Context, q db.Querier, d Descriptor, term string) ([][]string, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return Rows(ctx, q, d)
	}

	var (
		preds []string
		args  []any
	)
	for _, col := range d.SearchColumns {
		preds = append(preds, col+" LIKE ?")
		args = append(args, "%"+term+"%")
	}
	if id, err := strconv.ParseInt(term, 10, 64); err == nil {
		preds = append(preds, d.listIDColumn()+" = ?")
		args = append(args, id)
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s",
		strings.Join(d.ListColumns, ", "), d.from(),
		strings.Join(preds, " OR "), d.OrderBy)

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", d.Table, err)
	}
	defer rows.Close()

	out, err := scanDisplayRows(rows, len(d.ListColumns))
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", d.Table, err)
	}
	return out, nil
}

// Insert writes one row and returns its new id. Unique violations come
// back as *db.ConstraintError.
func Insert(ctx context.Context, q db.Querier, d Descriptor, values ...any) (int64, error) {
	if len(values) != len(d.InsertColumns) {
		return 0, fmt.Errorf("insert %s: got %d values for %d columns",
			d.Table, len(values), len(d.InsertColumns))
	}

	marks := strings.TrimSuffix(strings.Repeat("?,", len(values)), ",")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		d.Table, strings.Join(d.InsertColumns, ", "), marks)

	res, err := q.ExecContext(ctx, query, values...)
	if err != nil {
		return 0, db.MapConstraint(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", d.Table, err)
	}
	return id, nil
}

// Update rewrites every insert column of the row with the given id and
// returns the affected count. Zero means the row no longer exists; that
// is the caller's warning, not an error.
func Update(ctx context.Context, q db.Querier, d Descriptor, id int64, values ...any) (int64, error) {
	if len(values) != len(d.InsertColumns) {
		return 0, fmt.Errorf("update %s: got %d values for %d columns",
			d.Table, len(values), len(d.InsertColumns))
	}

	sets := make([]string, len(d.InsertColumns))
	for i, col := range d.InsertColumns {
		sets[i] = col + " = ?"
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
		d.Table, strings.Join(sets, ", "), d.IDColumn)

	res, err := q.ExecContext(ctx, query, append(values, id)...)
	if err != nil {
		return 0, db.MapConstraint(err)
	}
	return res.RowsAffected()
}

// Delete removes the row with the given id; dependent rows go with it via
// the schema's ON DELETE clauses. Returns the affected count.
func Delete(ctx context.Context, q db.Querier, d Descriptor, id int64) (int64, error) {
	res, err := q.ExecContext(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE %s = ?", d.Table, d.IDColumn), id)
	if err != nil {
		return 0, fmt.Errorf("delete %s %d: %w", d.Table, id, err)
	}
	return res.RowsAffected()
}

// QueryDisplayRows runs an arbitrary query and renders each cell as
// display text the same way entity listings do. Reports build on this.
func QueryDisplayRows(ctx context.Context, q db.Querier, width int, query string, args ...any) ([][]string, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDisplayRows(rows, width)
}

func scanDisplayRows(rows *sql.Rows, width int) ([][]string, error) {
	var out [][]string
	for rows.Next() {
		raw := make([]any, width)
		dest := make([]any, width)
		for i := range raw {
			dest[i] = &raw[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		row := make([]string, width)
		for i, v := range raw {
			row[i] = formatCell(v)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(x)
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}
