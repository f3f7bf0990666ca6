// Package dates works over the human-entered date tokens stored on
// experience and education records: "Abril 2021", "April 2021", "2021-04",
// or the "Presente"/"Present" sentinel meaning ongoing.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PresentLabel is the canonical display form of the ongoing sentinel.
const PresentLabel = "Presente"

var monthNames = map[string]time.Month{
	// Spanish
	"enero": time.January, "febrero": time.February, "marzo": time.March,
	"abril": time.April, "mayo": time.May, "junio": time.June,
	"julio": time.July, "agosto": time.August,
	"septiembre": time.September, "setiembre": time.September,
	"octubre": time.October, "noviembre": time.November, "diciembre": time.December,
	// English
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June,
	"july": time.July, "august": time.August, "september": time.September,
	"october": time.October, "november": time.November, "december": time.December,
}

var shortMonthsES = [...]string{
	"Ene", "Feb", "Mar", "Abr", "May", "Jun",
	"Jul", "Ago", "Sep", "Oct", "Nov", "Dic",
}

// IsPresent reports whether token is the ongoing sentinel, in either
// language, case-insensitively.
func IsPresent(token string) bool {
	t := strings.ToLower(strings.TrimSpace(token))
	return t == "presente" || t == "present"
}

// parseCalendar resolves a token to a (year, month) pair. The sentinel
// resolves to the current month.
func parseCalendar(token string, now time.Time) (int, time.Month, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, 0, false
	}
	if IsPresent(token) {
		return now.Year(), now.Month(), true
	}

	// "YYYY-MM"
	if y, m, ok := splitNumeric(token); ok {
		return y, m, true
	}

	// "<MonthName> <Year>"
	parts := strings.Fields(token)
	if len(parts) != 2 {
		return 0, 0, false
	}
	month, ok := monthNames[strings.ToLower(parts[0])]
	if !ok {
		return 0, 0, false
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return year, month, true
}

func splitNumeric(token string) (int, time.Month, bool) {
	i := strings.IndexByte(token, '-')
	if i <= 0 || i == len(token)-1 {
		return 0, 0, false
	}
	year, err := strconv.Atoi(token[:i])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(token[i+1:])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, false
	}
	return year, time.Month(m), true
}

// ParseToSortKey converts a token to a millisecond timestamp usable as a
// sort key. The sentinel maps to now; unparseable tokens map to 0 so they
// sort as earliest.
func ParseToSortKey(token string) int64 {
	now := time.Now()
	if IsPresent(token) {
		return now.UnixMilli()
	}
	y, m, ok := parseCalendar(token, now)
	if !ok {
		return 0
	}
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
}

// FormatForDisplay renders a token for the UI: the sentinel becomes
// PresentLabel, "YYYY-MM" becomes an abbreviated Spanish month plus year
// ("Abr 2021"), anything already textual passes through unchanged.
func FormatForDisplay(token string) string {
	if IsPresent(token) {
		return PresentLabel
	}
	if y, m, ok := splitNumeric(strings.TrimSpace(token)); ok {
		return fmt.Sprintf("%s %d", shortMonthsES[int(m)-1], y)
	}
	return token
}

// DurationLabel renders the elapsed time between two tokens as a Spanish
// label ("1 año 2 meses"). Unparseable input yields "". Spans of zero or
// negative length floor to "1 mes"; a reversed range is bad data, not an
// error here.
func DurationLabel(start, end string) string {
	now := time.Now()
	sy, sm, ok := parseCalendar(start, now)
	if !ok {
		return ""
	}
	ey, em, ok := parseCalendar(end, now)
	if !ok {
		return ""
	}

	months := (ey-sy)*12 + int(em) - int(sm)
	if months <= 0 {
		return "1 mes"
	}

	years := months / 12
	rem := months % 12

	switch {
	case years > 0 && rem > 0:
		return fmt.Sprintf("%s %s", plural(years, "año", "años"), plural(rem, "mes", "meses"))
	case years > 0:
		return plural(years, "año", "años")
	default:
		return plural(months, "mes", "meses")
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
