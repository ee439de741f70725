package domain

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// CurrentTimeProvider supplies the reference time for session ids, retention cutoffs and date phrases.
type CurrentTimeProvider interface {
	Now() time.Time
}

var travelDateRe = regexp.MustCompile(
	`(?i)\b(` +
		`\d{4}-\d{2}-\d{2}` +
		`|` +
		`(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\s+\d{1,2},?\s+\d{4}` +
		`|` +
		`day\s+after\s+tomorrow|today|tonight|tomorrow` +
		`|` +
		`(?:this|next)\s+weekend` +
		`|` +
		`in\s+\d{1,2}\s+days?` +
		`|` +
		`(?:this|next|on)\s+(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)` +
		`)\b`,
)

// ResolveTravelDate finds the first date phrase in text and resolves it against ref.
// The returned time is midnight in ref's location.
func ResolveTravelDate(text string, ref time.Time) (time.Time, bool) {
	m := travelDateRe.FindStringSubmatch(text)
	if len(m) < 2 {
		return time.Time{}, false
	}

	token := strings.Join(strings.Fields(strings.ToLower(m[1])), " ")
	day := dateOnly(ref)

	if resolved, ok := resolveRelativeDate(token, day); ok {
		return resolved, true
	}

	t, err := dateparse.ParseIn(token, ref.Location())
	if err != nil {
		return time.Time{}, false
	}
	return dateOnly(t), true
}

func resolveRelativeDate(token string, day time.Time) (time.Time, bool) {
	switch token {
	case "today", "tonight":
		return day, true
	case "tomorrow":
		return day.AddDate(0, 0, 1), true
	case "day after tomorrow":
		return day.AddDate(0, 0, 2), true
	case "this weekend":
		if isWeekend(day) {
			return day, true
		}
		return nextWeekday(day, time.Saturday), true
	case "next weekend":
		saturday := nextWeekday(day, time.Saturday)
		if !isWeekend(day) {
			saturday = saturday.AddDate(0, 0, 7)
		}
		return saturday, true
	}

	if rest, ok := strings.CutPrefix(token, "in "); ok {
		n, err := strconv.Atoi(strings.Fields(rest)[0])
		if err != nil {
			return time.Time{}, false
		}
		return day.AddDate(0, 0, n), true
	}

	qualifier, name, ok := strings.Cut(token, " ")
	if !ok {
		return time.Time{}, false
	}
	wd, ok := parseWeekday(name)
	if !ok {
		return time.Time{}, false
	}
	switch qualifier {
	case "next":
		return nextWeekday(day, wd), true
	case "this", "on":
		if day.Weekday() == wd {
			return day, true
		}
		return nextWeekday(day, wd), true
	}
	return time.Time{}, false
}

func parseWeekday(s string) (time.Weekday, bool) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.EqualFold(wd.String(), s) {
			return wd, true
		}
	}
	return 0, false
}

// nextWeekday returns the first target weekday strictly after ref.
func nextWeekday(ref time.Time, target time.Weekday) time.Time {
	delta := (int(target) - int(ref.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	return ref.AddDate(0, 0, delta)
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
