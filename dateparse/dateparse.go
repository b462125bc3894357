// Package dateparse recognizes the publication dates found in IETF document
// headers. Header layouts use a handful of fixed shapes ("March 1997",
// "3 March 2024", "March 3, 2024"); anything else is handed to
// github.com/araddon/dateparse.
package dateparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
	"github.com/fwojciec/rfz"
)

const monthPattern = `(January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sept|Sep|Oct|Nov|Dec)\.?`

var (
	dayMonthYearRe = regexp.MustCompile(`(?i)\b(\d{1,2})\s+` + monthPattern + `,?\s+(\d{4})\b`)
	monthDayYearRe = regexp.MustCompile(`(?i)\b` + monthPattern + `\s+(\d{1,2}),?\s+(\d{4})\b`)
	monthYearRe    = regexp.MustCompile(`(?i)\b` + monthPattern + `,?\s+(\d{4})\b`)
	isoRe          = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
)

// Earliest and latest years accepted as document dates. RFC 1 is from 1969.
const (
	minYear = 1960
	maxYear = 2200
)

// Parse interprets s as a whole as a date. It reports false when s is not a
// date, including bare numbers, which headers use for RFC references.
func Parse(s string) (rfz.Date, bool) {
	s = strings.Trim(strings.TrimSpace(s), ".,;")
	if s == "" {
		return rfz.Date{}, false
	}
	if d, ok := match(s, true); ok {
		return d, true
	}
	if !plausible(s) {
		return rfz.Date{}, false
	}
	t, err := dateparse.ParseStrict(s)
	if err != nil {
		return rfz.Date{}, false
	}
	d := rfz.NewDate(t)
	if !validYear(d.Year) {
		return rfz.Date{}, false
	}
	return d, true
}

// Find returns the first date that appears anywhere in text.
func Find(text string) (rfz.Date, bool) {
	return match(text, false)
}

// match tries the fixed header shapes. With whole set, the match must span s.
func match(s string, whole bool) (rfz.Date, bool) {
	type candidate struct {
		start int
		date  rfz.Date
	}
	var best *candidate
	consider := func(loc []int, d rfz.Date) {
		if loc == nil || d.IsZero() || !validYear(d.Year) {
			return
		}
		if whole && (loc[0] != 0 || loc[1] != len(s)) {
			return
		}
		if best == nil || loc[0] < best.start {
			best = &candidate{start: loc[0], date: d}
		}
	}

	if m := dayMonthYearRe.FindStringSubmatchIndex(s); m != nil {
		consider(m[:2], build(s[m[6]:m[7]], s[m[4]:m[5]], s[m[2]:m[3]]))
	}
	if m := monthDayYearRe.FindStringSubmatchIndex(s); m != nil {
		consider(m[:2], build(s[m[6]:m[7]], s[m[2]:m[3]], s[m[4]:m[5]]))
	}
	if m := monthYearRe.FindStringSubmatchIndex(s); m != nil {
		consider(m[:2], build(s[m[4]:m[5]], s[m[2]:m[3]], ""))
	}
	if m := isoRe.FindStringSubmatchIndex(s); m != nil {
		year, _ := strconv.Atoi(s[m[2]:m[3]])
		month, _ := strconv.Atoi(s[m[4]:m[5]])
		day, _ := strconv.Atoi(s[m[6]:m[7]])
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			consider(m[:2], rfz.Date{Year: year, Month: time.Month(month), Day: day})
		}
	}

	if best == nil {
		return rfz.Date{}, false
	}
	return best.date, true
}

func build(year, month, day string) rfz.Date {
	y, err := strconv.Atoi(year)
	if err != nil {
		return rfz.Date{}
	}
	m := monthByName(month)
	if m == 0 {
		return rfz.Date{}
	}
	d := 0
	if day != "" {
		d, err = strconv.Atoi(day)
		if err != nil || d < 1 || d > 31 {
			return rfz.Date{}
		}
	}
	return rfz.Date{Year: y, Month: m, Day: d}
}

func monthByName(name string) time.Month {
	name = strings.ToLower(strings.TrimSuffix(name, "."))
	if len(name) < 3 {
		return 0
	}
	for m := time.January; m <= time.December; m++ {
		if strings.HasPrefix(strings.ToLower(m.String()), name[:3]) {
			return m
		}
	}
	return 0
}

func validYear(y int) bool {
	return y >= minYear && y <= maxYear
}

// plausible filters out strings dateparse would accept but headers never use
// as dates, such as "2119" or "14".
func plausible(s string) bool {
	if len(s) < 6 {
		return false
	}
	var digits, separators int
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '-' || r == '/' || unicode.IsLetter(r):
			separators++
		}
	}
	return digits >= 4 && separators > 0
}
