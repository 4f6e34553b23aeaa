package domain

import (
	"fmt"
	"math"
	"strconv"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
)

// Month is a calendar month 1..12; the zero value means no month was given.
type Month int

// UnmarshalParam lets gin bind ?month=. An empty value is the same as an
// absent one; anything else must be a number in 1..12 ("3" and "03" both work).
func (m *Month) UnmarshalParam(param string) error {
	if param == "" {
		*m = 0
		return nil
	}
	n, err := strconv.Atoi(param)
	if err != nil {
		return fmt.Errorf("month %q is not a number", param)
	}
	if n < 1 || n > 12 {
		return fmt.Errorf("month %d is outside 1..12", n)
	}
	*m = Month(n)
	return nil
}

// MonthQuery is the month filter shared by every read endpoint.
// An unset Month matches no rows.
type MonthQuery struct {
	Month Month `form:"month"`
}

// MonthKey is the two-digit month compared against dateOfSale, or "" when unset.
func (q MonthQuery) MonthKey() string {
	if q.Month == 0 {
		return ""
	}
	return fmt.Sprintf("%02d", int(q.Month))
}

type ListQuery struct {
	MonthQuery
	Search  string `form:"search"`
	Page    int    `form:"page,default=1" binding:"min=1"`
	PerPage int    `form:"per_page,default=10" binding:"min=1"`
}

// Offset is the number of matching rows to skip. ok is false when
// (Page-1)*PerPage does not fit in an int, i.e. the page lies past any result.
func (q ListQuery) Offset() (offset int, ok bool) {
	if q.Page < 1 || q.PerPage < 1 {
		return 0, true
	}
	skipPages := q.Page - 1
	if skipPages > math.MaxInt/q.PerPage {
		return 0, false
	}
	return skipPages * q.PerPage, true
}

// TransactionPage is one page of the listing plus the total number of matches.
type TransactionPage struct {
	Items []Product
	Total int64
}
