package query

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const DefaultLimit = 50

// reserved keys are consumed by the builder itself; everything else is
// treated as an entity-field filter.
var reserved = map[string]bool{
	"page":    true,
	"limit":   true,
	"fields":  true,
	"keyword": true,
	"sort":    true,
}

type CompareOp string

const (
	OpEq  CompareOp = "eq"
	OpGte CompareOp = "gte"
	OpGt  CompareOp = "gt"
	OpLte CompareOp = "lte"
	OpLt  CompareOp = "lt"
)

func (op CompareOp) SQL() string {
	switch op {
	case OpGte:
		return ">="
	case OpGt:
		return ">"
	case OpLte:
		return "<="
	case OpLt:
		return "<"
	default:
		return "="
	}
}

type Condition struct {
	Field string
	Op    CompareOp
	Value string
}

type SortKey struct {
	Field string
	Desc  bool
}

// Options is the parsed shape of a list request: filtering, sorting, field
// projection, free-text search, and pagination, applied in that order.
type Options struct {
	Conditions []Condition
	Sort       []SortKey
	Fields     []string
	Keyword    string
	Page       int
	Limit      int
}

// Parse builds Options from raw query parameters. Malformed numeric inputs
// never fail; they coerce to the defaults (page 1, limit 50).
func Parse(values url.Values) *Options {
	opts := &Options{
		Page:    parsePositiveInt(values.Get("page"), 1),
		Limit:   parsePositiveInt(values.Get("limit"), DefaultLimit),
		Keyword: values.Get("keyword"),
	}

	if sort := values.Get("sort"); sort != "" {
		for _, field := range strings.Split(sort, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			if strings.HasPrefix(field, "-") {
				opts.Sort = append(opts.Sort, SortKey{Field: field[1:], Desc: true})
			} else {
				opts.Sort = append(opts.Sort, SortKey{Field: field})
			}
		}
	}

	if fields := values.Get("fields"); fields != "" {
		for _, field := range strings.Split(fields, ",") {
			if field = strings.TrimSpace(field); field != "" {
				opts.Fields = append(opts.Fields, field)
			}
		}
	}

	for key, vals := range values {
		if reserved[key] || len(vals) == 0 {
			continue
		}
		field, op := splitOperator(key)
		opts.Conditions = append(opts.Conditions, Condition{
			Field: field,
			Op:    op,
			Value: vals[0],
		})
	}

	return opts
}

// splitOperator handles the field[gte] / field[gt] / field[lte] / field[lt]
// filter syntax; a bare key is an equality condition.
func splitOperator(key string) (string, CompareOp) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return key, OpEq
	}

	field := key[:open]
	switch CompareOp(key[open+1 : len(key)-1]) {
	case OpGte:
		return field, OpGte
	case OpGt:
		return field, OpGt
	case OpLte:
		return field, OpLte
	case OpLt:
		return field, OpLt
	default:
		return key, OpEq
	}
}

func parsePositiveInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return defaultValue
	}
	return n
}

// Where compiles the filter conditions and keyword search into a SQL WHERE
// clause. cols whitelists the filterable fields (external name -> column);
// unknown fields are dropped rather than interpolated. searchCols are the
// columns the keyword is matched against, OR-combined, case-insensitive,
// in addition to (not instead of) the filter.
func (o *Options) Where(cols map[string]string, searchCols []string) (string, []any) {
	var clauses []string
	var args []any

	for _, c := range o.Conditions {
		col, ok := cols[c.Field]
		if !ok {
			continue
		}
		args = append(args, c.Value)
		clauses = append(clauses, fmt.Sprintf("%s %s $%d", col, c.Op.SQL(), len(args)))
	}

	if o.Keyword != "" && len(searchCols) > 0 {
		args = append(args, "%"+o.Keyword+"%")
		n := len(args)
		ors := make([]string, 0, len(searchCols))
		for _, col := range searchCols {
			ors = append(ors, fmt.Sprintf("%s ILIKE $%d", col, n))
		}
		clauses = append(clauses, "("+strings.Join(ors, " OR ")+")")
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// OrderBy compiles the sort keys; unknown fields are dropped. Without sort
// keys the collection's natural order stands.
func (o *Options) OrderBy(cols map[string]string) string {
	var keys []string
	for _, s := range o.Sort {
		col, ok := cols[s.Field]
		if !ok {
			continue
		}
		if s.Desc {
			keys = append(keys, col+" DESC")
		} else {
			keys = append(keys, col+" ASC")
		}
	}
	if len(keys) == 0 {
		return ""
	}
	return " ORDER BY " + strings.Join(keys, ", ")
}

func (o *Options) LimitOffset() string {
	limit := o.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	page := o.Page
	if page < 1 {
		page = 1
	}
	return fmt.Sprintf(" LIMIT %d OFFSET %d", limit, (page-1)*limit)
}
