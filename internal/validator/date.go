package validator

import "time"

// dateLayouts are the accepted request date formats, most specific first.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseDate parses a calendar date string and rejects impossible dates
// such as "2024-02-30". Returns nil when the string matches no layout.
func ParseDate(s string) *time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
