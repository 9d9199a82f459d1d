// Package dates handles the date encodings used by callers and the
// canonical key stored on disk.
package dates

import (
	"fmt"
	"time"
)

const (
	layoutISO   = "2006-01-02"
	layoutLong  = "20060102"
	layoutShort = "060102"
)

// Date is a canonical calendar date, formatted as 2006-01-02. The zero
// value is invalid; construct one with Parse, Today, or FromTime.
type Date string

// Parse accepts the canonical form plus the two caller encodings: the
// 8-digit form 20251125 and the 6-digit form 251125. All map onto the
// same canonical key.
func Parse(raw string) (Date, error) {
	for _, layout := range []string{layoutISO, layoutLong, layoutShort} {
		if len(raw) != len(layout) {
			continue
		}
		t, err := time.Parse(layout, raw)
		if err == nil {
			return FromTime(t), nil
		}
	}
	return "", fmt.Errorf("dates: cannot parse %q as a date", raw)
}

// FromTime truncates a time to its calendar date.
func FromTime(t time.Time) Date {
	return Date(t.Format(layoutISO))
}

// Today returns the current local date.
func Today() Date {
	return FromTime(time.Now())
}

func (d Date) String() string {
	return string(d)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == ""
}

// Time returns the date at midnight local time.
func (d Date) Time() (time.Time, error) {
	return time.ParseInLocation(layoutISO, string(d), time.Local)
}

// Long formats the date in the 8-digit caller encoding.
func (d Date) Long() string {
	return reformat(d, layoutLong)
}

// Short formats the date in the 6-digit caller encoding.
func (d Date) Short() string {
	return reformat(d, layoutShort)
}

func reformat(d Date, layout string) string {
	t, err := d.Time()
	if err != nil {
		return string(d)
	}
	return t.Format(layout)
}
