package blogs

import (
	"fmt"
	"strings"
	"time"
)

// Pagination defaults. A zero or absent value falls back to these; the window
// is never allowed to be empty.
const (
	DefaultPage = 1
	DefaultSize = 10
)

// Filter describes one scoped query over the blog collection. UserID and
// CategoryID are mandatory equality constraints; BlogID narrows the query to a
// single record; the remaining fields are optional modifiers.
//
// Every value is bound as a statement parameter, never spliced into the SQL
// text, and search input additionally has LIKE wildcards escaped.
type Filter struct {
	UserID     string
	CategoryID string
	BlogID     string
	Search     string
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Size       int
}

func (f Filter) page() int {
	if f.Page < 1 {
		return DefaultPage
	}
	return f.Page
}

func (f Filter) size() int {
	if f.Size < 1 {
		return DefaultSize
	}
	return f.Size
}

// window returns the LIMIT/OFFSET pair for the requested page.
func (f Filter) window() (limit, offset int) {
	size := f.size()
	return size, (f.page() - 1) * size
}

// predicate renders the WHERE clause and its ordered arguments. The scope
// constraints always come first; search expands to a case-insensitive
// substring disjunction over title and description; date bounds are inclusive
// and applied independently, so a single bound gives an open range.
func (f Filter) predicate() (string, []any) {
	conds := make([]string, 0, 6)
	args := make([]any, 0, 7)

	bind := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	conds = append(conds, "user_id = "+bind(f.UserID))
	conds = append(conds, "category_id = "+bind(f.CategoryID))
	if f.BlogID != "" {
		conds = append(conds, "id = "+bind(f.BlogID))
	}
	if f.Search != "" {
		pattern := "%" + escapeLike(f.Search) + "%"
		conds = append(conds, fmt.Sprintf(`(title ILIKE %s ESCAPE '\' OR description ILIKE %s ESCAPE '\')`,
			bind(pattern), bind(pattern)))
	}
	if f.StartDate != nil {
		conds = append(conds, "created_at >= "+bind(*f.StartDate))
	}
	if f.EndDate != nil {
		conds = append(conds, "created_at <= "+bind(*f.EndDate))
	}

	return strings.Join(conds, " AND "), args
}

// escapeLike neutralizes LIKE metacharacters so search terms only ever match
// literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
