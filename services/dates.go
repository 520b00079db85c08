package services

import (
	"strings"
	"time"
)

// releaseDateLayouts are tried in order when parsing release_date.
var releaseDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"01/02/2006",
	"2006-01",
	"2006",
}

// parseReleaseDate returns the parsed date, or ok=false if no layout matches.
func parseReleaseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
