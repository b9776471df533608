package parser

import (
	"regexp"
	"strings"
	"time"
)

// monthToken matches abbreviated month names regardless of the case the
// bank prints them in ("JAN", "jan", "Jan").
var monthToken = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)`)

// ParseDate parses text against a bank's candidate layouts, in order. The
// second return is false for anything unparseable — a bad date is a skip,
// never an error. Quirks handled here once for every bank:
//
//   - two-digit years always resolve to the 2000s (Go's own cutover would
//     put "99" in 1999, which no Nigerian e-statement predates);
//   - month-name case is normalized, since several banks shout "15-JAN-2024";
//   - runs of whitespace collapse to one space before matching.
//
// Twelve-hour clock markers (AM/PM) are handled by the layouts themselves;
// time.Parse already applies the 12 AM → 00:00 and 12 PM → 12:00 rules.
func ParseDate(s string, layouts ...string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	s = strings.Join(strings.Fields(s), " ")
	s = monthToken.ReplaceAllStringFunc(s, func(m string) string {
		return strings.ToUpper(m[:1]) + strings.ToLower(m[1:])
	})

	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if y := t.Year(); y >= 1969 && y < 2000 {
			t = t.AddDate(100, 0, 0)
		}
		return t, true
	}
	return time.Time{}, false
}
