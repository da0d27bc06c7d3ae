package scoring

import "time"

// Priority is the follow-up urgency derived from how long ago an
// evaluation was created.
type Priority string

const (
	PriorityHigh    Priority = "High"
	PriorityMedium  Priority = "Medium"
	PriorityLow     Priority = "Low"
	PriorityUpdate  Priority = "Update"
	PriorityUnknown Priority = "Unknown"
)

// PriorityFor buckets the whole calendar months elapsed from createdAt to
// now: 12 or more is High, 6 or more is Medium, 3 or more is Low, and
// anything less is Update. A zero createdAt yields Unknown.
func PriorityFor(createdAt, now time.Time) Priority {
	if createdAt.IsZero() || now.IsZero() {
		return PriorityUnknown
	}

	switch months := MonthsBetween(createdAt, now); {
	case months >= 12:
		return PriorityHigh
	case months >= 6:
		return PriorityMedium
	case months >= 3:
		return PriorityLow
	default:
		return PriorityUpdate
	}
}

// ParsePriority parses an RFC 3339 createdAt and computes its priority.
// Unparseable input yields Unknown.
func ParsePriority(createdAt string, now time.Time) Priority {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return PriorityUnknown
	}
	return PriorityFor(t, now)
}

// MonthsBetween returns the whole calendar months from start to end,
// negative when end precedes start. Both instants are compared in UTC.
// A month is complete once end reaches start's day of month and time of
// day, with the day clamped to the end of shorter months: January 31
// reaches one month on the last day of February.
func MonthsBetween(start, end time.Time) int {
	if end.Before(start) {
		return -MonthsBetween(end, start)
	}

	start, end = start.UTC(), end.UTC()
	months := (end.Year()-start.Year())*12 + int(end.Month()-start.Month())

	if end.Before(addMonthsClamped(start, months)) {
		months--
	}
	return months
}

func addMonthsClamped(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	day := min(t.Day(), daysIn(first.Year(), first.Month()))
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
