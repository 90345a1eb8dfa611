package httpapi

import (
	"net/url"
	"strconv"
	"time"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
)

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDateParam reads an optional date bound. An unparseable value is a
// caller error, never silently ignored.
func parseDateParam(values url.Values, name string) (*time.Time, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, common.NewValidationError("Invalid " + name)
}

// parseWindowParam reads an optional page/size value. Absent and zero both
// map to 0, which the filter later replaces with the default; negative or
// non-numeric input is a caller error.
func parseWindowParam(values url.Values, name string) (int, error) {
	raw := values.Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, common.NewValidationError("Invalid " + name)
	}
	return n, nil
}
