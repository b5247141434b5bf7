package shared

import (
	"fmt"
	"time"
)

// DateLayout is the ISO date layout used for chart lookups and API parameters.
const DateLayout = "2006-01-02"

// FormatDate renders a time as an ISO date string (2006-01-02).
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses an ISO date string into a UTC time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a valid date", ErrInvalidInput, s)
	}
	return t, nil
}

// Anniversaries yields one chart date per elapsed year, starting the day
// after the birth date and ending with the last date on or before today.
//
// The sequence is lazy and one-shot: call [Anniversaries.Next] until it
// reports false. Each date is recomputed from the original anchor rather
// than from the previously yielded date, so a Feb 29 anchor clamps to
// Feb 28 only in non-leap years and returns to Feb 29 when the year allows.
type Anniversaries struct {
	anchor time.Time
	today  time.Time
	years  int
}

// NewAnniversaries creates the anniversary sequence for a birth date with a
// fixed today snapshot.
func NewAnniversaries(birth, today time.Time) *Anniversaries {
	return &Anniversaries{anchor: birth.AddDate(0, 0, 1), today: today}
}

// Next returns the next anniversary date. The second return value is false
// once the sequence has stepped past today.
func (a *Anniversaries) Next() (time.Time, bool) {
	d := AddYearsClamped(a.anchor, a.years)
	if d.After(a.today) {
		return time.Time{}, false
	}
	a.years++
	return d, true
}

// AddYearsClamped advances a date by whole years, clamping to the last day
// of the intended month when the naive addition overflows into the next one.
// Only a Feb 29 date can overflow this way.
func AddYearsClamped(t time.Time, years int) time.Time {
	d := t.AddDate(years, 0, 0)
	if d.Month() != t.Month() {
		d = d.AddDate(0, 0, -d.Day())
	}
	return d
}
