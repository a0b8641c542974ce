package aggregate

import (
	"fmt"
	"strings"
	"time"

	"courtside/app/models"
)

type RangeMode string

const (
	RangeAll       RangeMode = "all"
	RangeThisMonth RangeMode = "thisMonth"
	RangeLastMonth RangeMode = "lastMonth"
	RangeCustom    RangeMode = "custom"
)

// Query is a set of independent AND predicates over a payment list.
// Zero values ("" / RangeAll) disable the corresponding predicate, so
// application order never changes the result set.
type Query struct {
	Range     RangeMode
	StartDate string // YYYY-MM-DD, custom range only
	EndDate   string // YYYY-MM-DD, custom range only
	Type      string
	Category  string
	Status    string
	Search    string
}

// ParseQuery builds a Query from raw request parameters. Unknown range
// modes and malformed custom dates are errors, never a silently widened
// window.
func ParseQuery(rangeMode, startDate, endDate, typ, category, status, search string) (Query, error) {
	q := Query{
		Range:     RangeMode(rangeMode),
		StartDate: startDate,
		EndDate:   endDate,
		Type:      typ,
		Category:  category,
		Status:    status,
		Search:    search,
	}
	if rangeMode == "" {
		q.Range = RangeAll
	}

	switch q.Range {
	case RangeAll, RangeThisMonth, RangeLastMonth:
	case RangeCustom:
		if startDate == "" && endDate == "" {
			return Query{}, fmt.Errorf("custom range needs a start or end date")
		}
		if startDate != "" {
			if _, err := time.Parse("2006-01-02", startDate); err != nil {
				return Query{}, fmt.Errorf("invalid start date %q", startDate)
			}
		}
		if endDate != "" {
			if _, err := time.Parse("2006-01-02", endDate); err != nil {
				return Query{}, fmt.Errorf("invalid end date %q", endDate)
			}
		}
	default:
		return Query{}, fmt.Errorf("unknown range %q", rangeMode)
	}
	return q, nil
}

// Filter applies q to payments relative to now. Range comparisons use
// createdAt (the record-creation instant), never dueDate. The custom
// range is inclusive by calendar day: EndDate is extended to the last
// millisecond of that day.
func Filter(payments []models.Payment, q Query, now time.Time) []models.Payment {
	loc := now.Location()
	filtered := []models.Payment{}

	var rangeStart, rangeEnd time.Time
	var hasStart, hasEnd bool

	switch q.Range {
	case RangeThisMonth:
		rangeStart = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		hasStart = true
	case RangeLastMonth:
		rangeStart = time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, loc)
		rangeEnd = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		hasStart, hasEnd = true, true
	case RangeCustom:
		if start, err := time.ParseInLocation("2006-01-02", q.StartDate, loc); err == nil {
			rangeStart = start
			hasStart = true
		}
		if end, err := time.ParseInLocation("2006-01-02", q.EndDate, loc); err == nil {
			rangeEnd = end.AddDate(0, 0, 1)
			hasEnd = true
		}
	}

	term := strings.ToLower(q.Search)

	for _, p := range payments {
		created := time.UnixMilli(p.CreatedAt).In(loc)
		if hasStart && created.Before(rangeStart) {
			continue
		}
		if hasEnd && !created.Before(rangeEnd) {
			continue
		}
		if q.Type != "" && string(p.Type) != q.Type {
			continue
		}
		if q.Category != "" && string(p.Category) != q.Category {
			continue
		}
		if q.Status != "" && string(p.Status) != q.Status {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Description), term) &&
			!strings.Contains(strings.ToLower(string(p.Category)), term) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
