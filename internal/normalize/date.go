package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// serialEpoch is the spreadsheet serial-date epoch (the Lotus 1-2-3 day-zero
// carried forward by Excel).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var (
	dmyPattern     = regexp.MustCompile(`^(\d{1,2})[/\-](\d{1,2})[/\-](\d{2,4})$`)
	ymdPattern     = regexp.MustCompile(`^(\d{4})[/\-](\d{1,2})[/\-](\d{1,2})$`)
	dmyTextPattern = regexp.MustCompile(`^(\d{1,2})[\s\-]([A-Za-z]+)[\s\-](\d{2,4})$`)
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// isoLayouts are the fallback layouts tried after the explicit patterns.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a transaction date cell. It tries, in order: spreadsheet
// serial number, D/M/Y, Y/M/D, "D Mon Y" with an English month name, and an
// ISO fallback. Returns false when nothing matches; callers skip the row.
//
// All results are anchored at 12:00 UTC so converting to a local calendar
// date can never drift across a day boundary.
func ParseDate(s string) (time.Time, bool) {
	str := strings.TrimSpace(s)
	if str == "" {
		return time.Time{}, false
	}

	if serial, err := strconv.ParseFloat(str, 64); err == nil {
		return fromSerial(serial)
	}

	if m := dmyPattern.FindStringSubmatch(str); m != nil {
		return atNoon(expandYear(m[3]), monthNum(m[2]), atoi(m[1])), true
	}

	if m := ymdPattern.FindStringSubmatch(str); m != nil {
		return atNoon(atoi(m[1]), monthNum(m[2]), atoi(m[3])), true
	}

	if m := dmyTextPattern.FindStringSubmatch(str); m != nil {
		if month, ok := monthsByPrefix[monthKey(m[2])]; ok {
			return atNoon(expandYear(m[3]), month, atoi(m[1])), true
		}
	}

	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			return atNoon(t.Year(), t.Month(), t.Day()), true
		}
	}

	return time.Time{}, false
}

// fromSerial converts a serial day count to a calendar date. Serials below 60
// are shifted by one day to compensate for the phantom 1900-02-29 the epoch
// choice bakes in, so serial 1 maps to 1900-01-01.
func fromSerial(serial float64) (time.Time, bool) {
	if serial <= 0 {
		return time.Time{}, false
	}

	days := int(serial)
	if days < 60 {
		days++
	}

	t := serialEpoch.AddDate(0, 0, days)

	return atNoon(t.Year(), t.Month(), t.Day()), true
}

func atNoon(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

// expandYear maps 2-digit years into 20xx.
func expandYear(s string) int {
	y := atoi(s)
	if len(s) == 2 {
		y += 2000
	}

	return y
}

func monthKey(s string) string {
	s = strings.ToLower(s)
	if len(s) > 3 {
		s = s[:3]
	}

	return s
}

func monthNum(s string) time.Month {
	return time.Month(atoi(s))
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
