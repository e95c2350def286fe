package models

import "time"

// DisplayLayout is fixed English regardless of MAIL_LOCALE; only the zone is configurable.
const DisplayLayout = "January 2, 2006 at 3:04:05 PM"

// FormatDisplayTime renders the localized display string for a canonical instant.
// It is a pure function of t and loc so it can be recomputed on every read.
func FormatDisplayTime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DisplayLayout)
}
