package common

import (
	"fmt"
	"strings"
	"time"
)

// UpdateOutcome distinguishes a partial update that changed the row from one
// whose supplied values already matched. A missing row is reported as an error.
type UpdateOutcome int

const (
	OutcomeUpdated UpdateOutcome = iota + 1
	OutcomeUnchanged
)

func (o UpdateOutcome) String() string {
	switch o {
	case OutcomeUpdated:
		return "updated"
	case OutcomeUnchanged:
		return "unchanged"
	default:
		return "unknown"
	}
}

// Changes collects column assignments for a partial update.
type Changes map[string]any

func (c Changes) Empty() bool {
	return len(c) == 0
}

// Set assigns next to current and records the column when next is supplied
// and differs from the stored value.
func Set[T comparable](changes Changes, column string, current *T, next *T) {
	if next == nil || *current == *next {
		return
	}
	*current = *next
	changes[column] = *next
}

func SetTrimmed(changes Changes, column string, current *string, next *string) {
	if next == nil {
		return
	}
	trimmed := strings.TrimSpace(*next)
	Set(changes, column, current, &trimmed)
}

func SetDate(changes Changes, column string, current *time.Time, next *time.Time) {
	if next == nil || SameDay(*current, *next) {
		return
	}
	*current = *next
	changes[column] = *next
}

func SetOptionalDate(changes Changes, column string, current **time.Time, next *time.Time) {
	if next == nil {
		return
	}
	if *current != nil && SameDay(**current, *next) {
		return
	}
	value := *next
	*current = &value
	changes[column] = value
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

const DateLayout = "2006-01-02"

func ParseDate(field, value string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be formatted YYYY-MM-DD", ErrInvalidInput, field)
	}
	return parsed, nil
}
