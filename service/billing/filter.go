package billing

import (
	"strconv"
	"strings"
	"time"

	"attirerental/model"
)

type DueBucket string

const (
	BucketUpcoming DueBucket = "upcoming"
	BucketDueToday DueBucket = "due-today"
	BucketOverdue  DueBucket = "overdue"
)

// Query is one filter selection. Zero values mean "no constraint";
// active constraints combine with AND.
type Query struct {
	Status string    // status tab, matched case-insensitively
	Search string    // free text over customer/attire identifiers
	Year   int       // rental-date year, 0 = all
	Month  int       // rental-date month 1..12, 0 = all
	Due    DueBucket // due-date bucket, applied on the active tab only
}

// DueDays returns how many whole days remain until the expected return
// date (negative once past it). ok is false when the date is absent.
func DueDays(rec model.Rental, today time.Time) (int, bool) {
	if rec.ExpectedReturnDate.IsZero() {
		return 0, false
	}
	return daysBetween(today, rec.ExpectedReturnDate), true
}

// Bucket classifies an active record by proximity to its due date.
func Bucket(rec model.Rental, today time.Time) (DueBucket, bool) {
	diff, ok := DueDays(rec, today)
	if !ok {
		return "", false
	}
	switch {
	case diff == 1:
		return BucketUpcoming, true
	case diff == 0:
		return BucketDueToday, true
	case diff < 0:
		return BucketOverdue, true
	}
	return "", false
}

// Filter projects the record set through a query. It never mutates the
// input and preserves its order.
func Filter(records []model.Rental, q Query, today time.Time) []model.Rental {
	out := make([]model.Rental, 0, len(records))
	for _, rec := range records {
		if q.Status != "" && !strings.EqualFold(string(rec.RentalStatus), q.Status) {
			continue
		}
		if q.Search != "" && !matchesSearch(rec, q.Search) {
			continue
		}
		if q.Year != 0 && (rec.RentalDate.IsZero() || rec.RentalDate.Year() != q.Year) {
			continue
		}
		if q.Month != 0 && (rec.RentalDate.IsZero() || int(rec.RentalDate.Month()) != q.Month) {
			continue
		}
		if q.Due != "" && strings.EqualFold(q.Status, string(model.RentalActive)) {
			b, ok := Bucket(rec, today)
			if !ok || b != q.Due {
				continue
			}
		}
		out = append(out, rec)
	}
	return out
}

// matchesSearch is a case-insensitive substring match; a record matches
// when any identifier field matches.
func matchesSearch(rec model.Rental, text string) bool {
	needle := strings.ToLower(text)
	return strings.Contains(strings.ToLower(rec.CustomerName), needle) ||
		strings.Contains(strings.ToLower(rec.AttireName), needle) ||
		strings.Contains(strconv.FormatInt(rec.AttireID, 10), needle) ||
		strings.Contains(strconv.FormatInt(rec.ID, 10), needle)
}

type Stats struct {
	TotalActive  int `json:"total_active"`
	TotalOverdue int `json:"total_overdue"`
}

// Summarize counts active records and how many of those are overdue.
func Summarize(records []model.Rental, today time.Time) Stats {
	var s Stats
	for _, rec := range records {
		if !rec.IsActive() {
			continue
		}
		s.TotalActive++
		if IsOverdue(rec, today) {
			s.TotalOverdue++
		}
	}
	return s
}
