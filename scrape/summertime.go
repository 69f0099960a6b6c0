package scrape

import "time"

// summerTime reports whether British Summer Time is in effect at the given
// instant. BST runs from 01:00 UTC on the last Sunday of March to 01:00
// UTC on the last Sunday of October, start inclusive, end exclusive.
func summerTime(now time.Time) bool {
	now = now.UTC()
	start := lastSunday(now.Year(), time.March)
	end := lastSunday(now.Year(), time.October)
	return !now.Before(start) && now.Before(end)
}

// lastSunday returns 01:00 UTC on the last Sunday of the month: the last
// day of the month, stepped back to the most recent Sunday on or before
// it.
func lastSunday(year int, month time.Month) time.Time {
	endOfMonth := time.Date(year, month+1, 1, 1, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	return endOfMonth.AddDate(0, 0, -int(endOfMonth.Weekday()))
}
