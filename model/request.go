// file: model/request.go

package model

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidMonth = errors.New("month must be 1-12 or an English month name")

// TransactionQuery holds the coerced query parameters of the listing and
// dashboard endpoints. Month 0 means no month filter.
type TransactionQuery struct {
	Page    int    `validate:"gte=1,lte=1000000"`
	PerPage int    `validate:"gte=1,lte=100"`
	Search  string `validate:"max=200"`
	Month   int    `validate:"gte=0,lte=12"`
}

// TransactionFilter is what the repository needs to select a page of records.
type TransactionFilter struct {
	Month  int
	Search string
	Limit  int
	Offset int
}

// ParseMonth accepts "3", "03", "march" or "Mar" and returns the month number.
// An empty value returns 0.
func ParseMonth(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	if n, err := strconv.Atoi(value); err == nil {
		if n < 1 || n > 12 {
			return 0, ErrInvalidMonth
		}
		return n, nil
	}

	lower := strings.ToLower(value)
	for m := time.January; m <= time.December; m++ {
		name := strings.ToLower(m.String())
		if lower == name || lower == name[:3] {
			return int(m), nil
		}
	}
	return 0, ErrInvalidMonth
}
