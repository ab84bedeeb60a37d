package anpp

import "time"

// Deadline bounds the cumulative wait of a packet read loop. The zero
// value means "no deadline" and never expires; an expired deadline and
// a missing one are therefore distinct states, not an overloaded zero
// duration.
type Deadline struct {
	at time.Time
}

// NoDeadline returns the Deadline that never expires.
func NoDeadline() Deadline {
	return Deadline{}
}

// DeadlineAt returns a Deadline expiring at t.
func DeadlineAt(t time.Time) Deadline {
	return Deadline{at: t}
}

// DeadlineAfter returns a Deadline expiring d from now.
func DeadlineAfter(d time.Duration) Deadline {
	return Deadline{at: time.Now().Add(d)}
}

// IsNone reports whether d represents "no deadline".
func (d Deadline) IsNone() bool {
	return d.at.IsZero()
}

// Expired reports whether d has passed.
func (d Deadline) Expired() bool {
	return !d.at.IsZero() && !time.Now().Before(d.at)
}

// Time returns the absolute deadline. ok is false when no deadline is
// set.
func (d Deadline) Time() (t time.Time, ok bool) {
	return d.at, !d.at.IsZero()
}

// Remaining returns the time left before d expires, which may be
// negative. ok is false when no deadline is set and the caller should
// block indefinitely.
func (d Deadline) Remaining() (left time.Duration, ok bool) {
	if d.at.IsZero() {
		return 0, false
	}
	return time.Until(d.at), true
}
