package rfz

import (
	"strconv"
	"time"
)

// Date is a publication date with optional precision. RFC headers usually
// carry only a month and year, so Day and Month may be zero. The zero Date
// means no date was found.
type Date struct {
	Year  int        `json:"year,omitempty"`
	Month time.Month `json:"month,omitempty"`
	Day   int        `json:"day,omitempty"`
}

// NewDate returns a date from time.Time at day precision.
func NewDate(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// IsZero reports whether the date is absent.
func (d Date) IsZero() bool {
	return d.Year == 0
}

// String renders the date the way RFC headers write it: "1997", "March 1997"
// or "1 March 1997". The zero Date renders as an empty string.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	year := strconv.Itoa(d.Year)
	if d.Month < time.January || d.Month > time.December {
		return year
	}
	if d.Day == 0 {
		return d.Month.String() + " " + year
	}
	return strconv.Itoa(d.Day) + " " + d.Month.String() + " " + year
}
