package postgres

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/storekit/storefront-api/internal/core/ports"
)

// identPattern is the only shape an identifier may take before it is spliced
// into SQL text. Filter *values* always travel as bound parameters; this
// check guards the identifiers themselves against future misuse.
var identPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Table is the static query configuration for one entity: the projection
// (never SELECT *), the columns free-text search runs over, and the
// allow-list of sort targets. Both repositories consult these specs instead
// of carrying their own column lists.
type Table struct {
	Name        string
	Columns     []string
	SearchCols  []string
	Sortable    []string
	DefaultSort string
}

var productsTable = Table{
	Name:        "products",
	Columns:     []string{"id", "title", "description", "price", "category", "created_at"},
	SearchCols:  []string{"title", "description"},
	Sortable:    []string{"title", "price", "created_at", "category"},
	DefaultSort: "created_at",
}

var usersTable = Table{
	Name:        "users",
	Columns:     []string{"id", "name", "email", "phone", "city", "created_at"},
	SearchCols:  []string{"name", "email"},
	Sortable:    []string{"name", "email", "created_at"},
	DefaultSort: "created_at",
}

// ListOptions are the caller-controlled knobs of a list query. All of them
// may hold arbitrary user input; SelectSQL sanitises them.
type ListOptions struct {
	Search    string
	FilterCol string // optional equality filter; must be a projected column
	FilterVal string
	Sort      string
	Dir       string
	Page      int
	Limit     int
}

// SelectSQL builds the paginated list query for t.
//   - sort columns outside the allow-list silently fall back to DefaultSort
//   - any direction other than "asc" (case-insensitive) becomes DESC
//   - limit is capped at 100; missing or non-positive limits become 10
//   - offset is (max(page,1)-1)*limit
//
// Every value is a bound parameter; the search term is bound once and shared
// across all search columns.
func (t Table) SelectSQL(o ListOptions) (string, []any, error) {
	if err := t.validate(); err != nil {
		return "", nil, err
	}

	where, args, err := t.whereClause(o)
	if err != nil {
		return "", nil, err
	}

	sort := t.DefaultSort
	if slices.Contains(t.Sortable, o.Sort) {
		sort = o.Sort
	}
	dir := "DESC"
	if strings.EqualFold(o.Dir, "asc") {
		dir = "ASC"
	}

	limit := ports.ClampLimit(o.Limit)
	offset := (ports.ClampPage(o.Page) - 1) * limit

	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(t.Columns, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(t.Name)
	sb.WriteString(where)
	fmt.Fprintf(&sb, " ORDER BY %s %s LIMIT $%d OFFSET $%d", sort, dir, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	return sb.String(), args, nil
}

// CountSQL builds the companion count query: same filters, no ordering or
// pagination. The total drives the pagination metadata of list responses.
func (t Table) CountSQL(o ListOptions) (string, []any, error) {
	if err := t.validate(); err != nil {
		return "", nil, err
	}

	where, args, err := t.whereClause(o)
	if err != nil {
		return "", nil, err
	}
	return "SELECT COUNT(*) FROM " + t.Name + where, args, nil
}

func (t Table) whereClause(o ListOptions) (string, []any, error) {
	var conds []string
	var args []any

	if o.Search != "" {
		args = append(args, "%"+o.Search+"%")
		n := len(args)
		parts := make([]string, 0, len(t.SearchCols))
		for _, col := range t.SearchCols {
			parts = append(parts, fmt.Sprintf("%s ILIKE $%d", col, n))
		}
		conds = append(conds, "("+strings.Join(parts, " OR ")+")")
	}

	if o.FilterCol != "" && o.FilterVal != "" {
		if !identPattern.MatchString(o.FilterCol) || !slices.Contains(t.Columns, o.FilterCol) {
			return "", nil, fmt.Errorf("postgres: filter column %q not allowed on %s", o.FilterCol, t.Name)
		}
		args = append(args, o.FilterVal)
		conds = append(conds, fmt.Sprintf("%s = $%d", o.FilterCol, len(args)))
	}

	if len(conds) == 0 {
		return "", args, nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args, nil
}

// validate rejects a misconfigured Table spec. This is a configuration
// error, independent of request input.
func (t Table) validate() error {
	for _, ident := range append([]string{t.Name, t.DefaultSort}, t.Columns...) {
		if !identPattern.MatchString(ident) {
			return fmt.Errorf("postgres: invalid identifier %q in table spec %s", ident, t.Name)
		}
	}
	for _, ident := range append(append([]string{}, t.SearchCols...), t.Sortable...) {
		if !identPattern.MatchString(ident) {
			return fmt.Errorf("postgres: invalid identifier %q in table spec %s", ident, t.Name)
		}
	}
	return nil
}
