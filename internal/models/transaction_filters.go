package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// dateOnlyFormat is accepted alongside RFC 3339 for filter bounds.
const dateOnlyFormat = "2006-01-02"

// TransactionFilters is a validated filter over one owner's ledger: an
// inclusive date range compared against Transaction.Date, an optional type
// and category restriction, and pagination. Construct it with
// ParseTransactionFilters; a zero value means "no filtering" and must still
// carry Page/Limit.
type TransactionFilters struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Type       string
	CategoryID *uuid.UUID
	Page       int
	Limit      int
}

// Offset returns the number of rows to skip for the requested page.
func (f TransactionFilters) Offset() int {
	return (f.Page - 1) * f.Limit
}

// FilterInput carries raw, possibly-absent filter fields as they arrive at
// the boundary. Empty strings and zero ints mean "absent".
type FilterInput struct {
	StartDate  string
	EndDate    string
	Type       string
	CategoryID string
	Page       int
	Limit      int
}

// ParseTransactionFilters normalizes and validates raw filter input.
//
// Dates accept RFC 3339 or plain YYYY-MM-DD; a date-only end bound is
// widened to the end of that day so the range stays inclusive. A start bound
// after the end bound is rejected rather than treated as an empty range.
// Page and limit default to 1 and 20 and must be positive when supplied.
// The category ID is checked for well-formedness only; whether it exists and
// belongs to the caller is decided later, at the point of use.
func ParseTransactionFilters(in FilterInput) (TransactionFilters, error) {
	filters := TransactionFilters{
		Page:  DefaultPage,
		Limit: DefaultLimit,
	}

	if in.StartDate != "" {
		start, _, err := parseFilterDate(in.StartDate)
		if err != nil {
			return TransactionFilters{}, fmt.Errorf("%w: invalid start date %q", ErrValidation, in.StartDate)
		}
		filters.StartDate = &start
	}

	if in.EndDate != "" {
		end, dateOnly, err := parseFilterDate(in.EndDate)
		if err != nil {
			return TransactionFilters{}, fmt.Errorf("%w: invalid end date %q", ErrValidation, in.EndDate)
		}
		if dateOnly {
			end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		filters.EndDate = &end
	}

	if filters.StartDate != nil && filters.EndDate != nil && filters.StartDate.After(*filters.EndDate) {
		return TransactionFilters{}, fmt.Errorf("%w: start date must not be after end date", ErrValidation)
	}

	if in.Type != "" {
		if !IsValidTransactionType(in.Type) {
			return TransactionFilters{}, fmt.Errorf("%w: type must be either income or expense", ErrValidation)
		}
		filters.Type = in.Type
	}

	if in.CategoryID != "" {
		categoryID, err := uuid.Parse(in.CategoryID)
		if err != nil {
			return TransactionFilters{}, fmt.Errorf("%w: invalid category ID", ErrValidation)
		}
		filters.CategoryID = &categoryID
	}

	if in.Page != 0 {
		if in.Page < 0 {
			return TransactionFilters{}, fmt.Errorf("%w: page must be a positive integer", ErrValidation)
		}
		filters.Page = in.Page
	}

	if in.Limit != 0 {
		if in.Limit < 0 {
			return TransactionFilters{}, fmt.Errorf("%w: limit must be a positive integer", ErrValidation)
		}
		filters.Limit = in.Limit
	}

	return filters, nil
}

// ParseTransactionDate parses a transaction date supplied at the boundary,
// accepting RFC 3339 or plain YYYY-MM-DD. Date-only values resolve to
// midnight UTC.
func ParseTransactionDate(value string) (time.Time, error) {
	parsed, _, err := parseFilterDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrValidation, value)
	}
	return parsed, nil
}

func parseFilterDate(value string) (parsed time.Time, dateOnly bool, err error) {
	if t, err := time.Parse(dateOnlyFormat, value); err == nil {
		return t.UTC(), true, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false, err
	}
	return t.UTC(), false, nil
}
