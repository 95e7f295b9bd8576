// Package period resolves named reporting periods into concrete date ranges
// and provides the ISO-week arithmetic the weekly completeness check relies
// on. Dates are calendar days rendered as YYYY-MM-DD; weeks start on Monday.
package period

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for all calendar dates.
const DateLayout = "2006-01-02"

var (
	ErrMissingParams     = errors.New("missing range or from/to parameters")
	ErrConflictingParams = errors.New("range and from/to are mutually exclusive")
)

// AllowedRanges enumerates the accepted range keywords.
var AllowedRanges = []string{"daily", "weekly", "monthly"}

// InvalidRangeError reports a range keyword outside AllowedRanges.
type InvalidRangeError struct {
	Value string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range value %q, allowed: %s", e.Value, strings.Join(AllowedRanges, ", "))
}

// Query is the caller's raw period selection: either a keyword or an
// explicit pair, never both.
type Query struct {
	Range string
	From  string
	To    string
}

// Range is a resolved [From, To] date interval, inclusive on both ends.
type Range struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Resolve turns a query into a concrete date range ending today. Keyword
// ranges anchor on now: daily is today only, weekly starts on the Monday of
// the current ISO week, monthly on the first of the current month. Explicit
// from/to pairs are passed through verbatim. Supplying a keyword together
// with an explicit pair is rejected rather than silently ignored.
func Resolve(q Query, now time.Time) (Range, error) {
	if q.Range != "" && (q.From != "" || q.To != "") {
		return Range{}, ErrConflictingParams
	}
	if q.Range == "" {
		if q.From == "" || q.To == "" {
			return Range{}, ErrMissingParams
		}
		return Range{From: q.From, To: q.To}, nil
	}

	today := now.Format(DateLayout)
	switch q.Range {
	case "daily":
		return Range{From: today, To: today}, nil
	case "weekly":
		return Range{From: WeekStart(now).Format(DateLayout), To: today}, nil
	case "monthly":
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Range{From: first.Format(DateLayout), To: today}, nil
	default:
		return Range{}, &InvalidRangeError{Value: q.Range}
	}
}

// WeekStart returns the most recent Monday at or before t, truncated to
// midnight in t's location.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -offset)
}

// WeekBounds returns the Monday and Sunday of the ISO week containing t.
func WeekBounds(t time.Time) (time.Time, time.Time) {
	start := WeekStart(t)
	return start, start.AddDate(0, 0, 6)
}

// WeekKey identifies the ISO week containing t by its Monday's date string.
func WeekKey(t time.Time) string {
	return WeekStart(t).Format(DateLayout)
}

// WeekDates lists the seven date strings of the ISO week containing t.
func WeekDates(t time.Time) []string {
	start := WeekStart(t)
	out := make([]string, 7)
	for i := range out {
		out[i] = start.AddDate(0, 0, i).Format(DateLayout)
	}
	return out
}
