package common

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"charity-app-go/internal/domain/common"
	"github.com/go-chi/chi/v5"
)

// ParseID reads a numeric path parameter. Absent, malformed and zero values
// all come back as 0, which never matches a stored row. Values beyond a
// signed BIGINT are treated the same way.
func ParseID(r *http.Request, name string) uint {
	return ParseUint(chi.URLParam(r, name))
}

func ParseUint(value string) uint {
	id, err := strconv.ParseUint(strings.TrimSpace(value), 10, 63)
	if err != nil {
		return 0
	}
	return uint(id)
}

// ParseDate parses an optional YYYY-MM-DD value.
func ParseDate(field string, value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	parsed, err := common.ParseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(common.DateLayout)
	return &formatted
}
