package datemath

import "time"

// Window is a half-open [From, To) time range.
type Window struct {
	From time.Time
	To   time.Time
}

// Today returns the local calendar day containing now.
func Today(now time.Time, loc *time.Location) Window {
	from := StartOfDay(now, loc)
	return Window{From: from, To: from.AddDate(0, 0, 1)}
}

// ThisWeek returns the Monday-based local calendar week containing now.
func ThisWeek(now time.Time, loc *time.Location) Window {
	from := StartOfWeek(now, loc)
	return Window{From: from, To: from.AddDate(0, 0, 7)}
}
