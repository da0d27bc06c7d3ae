package scoring

import "time"

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always returns T.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// DateLayout formats the lastEvaluation stamp.
const DateLayout = time.DateOnly

// DateStamp formats t as a UTC calendar date, e.g. 2026-10-18.
func DateStamp(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
