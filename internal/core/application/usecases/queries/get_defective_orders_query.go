// Package queries contains read-only operations for the packaging module.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly and return plain response structs, bypassing the
// aggregates.
package queries

import (
	"errors"
	"strings"
	"time"

	"packaging/internal/pkg/guard"
)

// DefaultReportDays is the trailing window used when no date range is given.
const DefaultReportDays = 30

var (
	ErrGetDefectiveOrdersQueryIsNotConstructed = errors.New(
		"GetDefectiveOrdersQuery must be created via NewGetDefectiveOrdersQuery constructor",
	)
	ErrDateRangeIsInvalid = errors.New("date from must not be after date to")
)

// GetDefectiveOrdersQuery retrieves the orders that became defective within
// a date range, together with their defective items. Feeds the defective
// orders report.
type GetDefectiveOrdersQuery struct { //nolint:recvcheck //using for validation
	dateFrom    time.Time
	dateTo      time.Time
	responsible string
	showDetails bool

	guard guard.ConstructorGuard
}

// NewGetDefectiveOrdersQuery creates a query for the given range. A zero
// dateTo defaults to now, a zero dateFrom to DefaultReportDays before
// dateTo. The range covers whole days: dateFrom's day start through
// dateTo's day end. An empty responsible matches all operators; with
// showDetails false the report rows carry counters only, no item lines.
func NewGetDefectiveOrdersQuery(
	dateFrom, dateTo time.Time,
	responsible string,
	showDetails bool,
) (GetDefectiveOrdersQuery, error) {
	if dateTo.IsZero() {
		dateTo = time.Now()
	}
	if dateFrom.IsZero() {
		dateFrom = dateTo.AddDate(0, 0, -DefaultReportDays)
	}
	if dateFrom.After(dateTo) {
		return GetDefectiveOrdersQuery{}, ErrDateRangeIsInvalid
	}

	return GetDefectiveOrdersQuery{
		dateFrom:    startOfDay(dateFrom),
		dateTo:      startOfDay(dateTo).AddDate(0, 0, 1),
		responsible: strings.TrimSpace(responsible),
		showDetails: showDetails,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDefectiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetDefectiveOrdersQueryIsNotConstructed)
}

// DateFrom returns the inclusive lower bound of the range.
func (q GetDefectiveOrdersQuery) DateFrom() time.Time {
	return q.dateFrom
}

// DateTo returns the exclusive upper bound of the range.
func (q GetDefectiveOrdersQuery) DateTo() time.Time {
	return q.dateTo
}

// Responsible returns the operator filter, empty for all operators.
func (q GetDefectiveOrdersQuery) Responsible() string {
	return q.responsible
}

// ShowDetails reports whether defective item lines should be included.
func (q GetDefectiveOrdersQuery) ShowDetails() bool {
	return q.showDetails
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
