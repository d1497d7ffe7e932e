package report

import (
	"time"

	"charity-app-go/internal/domain/common"
)

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(common.DateLayout)
}
