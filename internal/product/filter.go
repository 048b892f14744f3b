package product

import (
	"math"
	"strconv"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Filter holds raw listing parameters. Price bounds that do not parse as
// finite numbers are ignored.
type Filter struct {
	Query        string
	MinPrice     string
	MaxPrice     string
	RequireImage bool
}

func (f Filter) Options() []ListOption {
	opts := []ListOption{ByName(f.Query)}

	if lower, ok := parsePrice(f.MinPrice); ok {
		opts = append(opts, ByMinPrice(lower))
	}
	if upper, ok := parsePrice(f.MaxPrice); ok {
		opts = append(opts, ByMaxPrice(upper))
	}
	if f.RequireImage {
		opts = append(opts, WithImage())
	}

	return append(opts, WithDefaultSort())
}

func parsePrice(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

type ListOption func(sq.SelectBuilder) sq.SelectBuilder

// ByName matches a substring of the name using the store's LIKE semantics.
func ByName(query string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if query == "" {
			return b
		}
		return b.Where(sq.Like{"name": "%" + query + "%"})
	}
}

func ByMinPrice(lower float64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.GtOrEq{"price": lower})
	}
}

func ByMaxPrice(upper float64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.LtOrEq{"price": upper})
	}
}

func WithImage() ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where("image IS NOT NULL AND image <> ''")
	}
}

func WithDefaultSort() ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.OrderBy("id")
	}
}
