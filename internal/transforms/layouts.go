package transforms

import (
	"strings"
	"time"
)

// timestampLayouts carry a time component and are tried first.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006/01/02 15:04:05",
	"1/2/2006 15:04:05", // MDY
	"2/1/2006 15:04:05", // DMY
	"2006-01-02 15:04:05 -0700",
	"2006-01-02T15:04:05Z0700",
}

// dateLayouts are tried in order. Month-first wins over day-first for ambiguous slash and dot dates.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"1/2/2006",
	"2/1/2006",
	"1.2.2006",
	"2.1.2006",
	"2 Jan 2006",
	"02-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"20060102",
	// month granularity, as in loan issue and payment dates ("Jan-2021")
	"Jan-2006",
	"January-2006",
	"Jan 2006",
	"January 2006",
	"2006-01",
}

// ParseTimestamp parses s against the known layouts, first match wins. Surrounding space is ignored.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
