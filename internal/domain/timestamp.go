package domain

import (
	"fmt"
	"time"
)

// TimestampLayout is the persisted timestamp format: local time, second
// precision, no zone offset.
const TimestampLayout = "2006-01-02T15:04:05"

// Accepted input layouts. A space may replace the 'T' (YAML timestamp form)
// and a fractional part is dropped.
var (
	localLayouts = []string{"2006-01-02T15:04:05.999999999", "2006-01-02 15:04:05.999999999"}
	zonedLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999Z07:00"}
)

// Timestamp is a second-precision local time.
// It marshals through encoding.TextMarshaler so JSON, YAML and TOML encoders
// all use TimestampLayout.
type Timestamp struct {
	t time.Time
}

// NewTimestamp converts t to local time truncated to the second.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t: t.Local().Truncate(time.Second)}
}

// ParseTimestamp parses a persisted timestamp.
// Values carrying a zone offset (RFC 3339) are accepted and converted to local time.
func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return NewTimestamp(t), nil
		}
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimestamp(t), nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q: want %s", s, TimestampLayout)
}

// Time returns the underlying time value.
func (ts Timestamp) Time() time.Time {
	return ts.t
}

// IsZero reports whether the timestamp is unset.
func (ts Timestamp) IsZero() bool {
	return ts.t.IsZero()
}

// Equal reports whether both timestamps denote the same second.
func (ts Timestamp) Equal(other Timestamp) bool {
	return ts.t.Equal(other.t)
}

// After reports whether ts is later than other.
func (ts Timestamp) After(other Timestamp) bool {
	return ts.t.After(other.t)
}

// String formats the timestamp using TimestampLayout.
func (ts Timestamp) String() string {
	return ts.t.Format(TimestampLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (ts Timestamp) MarshalText() ([]byte, error) {
	return []byte(ts.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ts *Timestamp) UnmarshalText(text []byte) error {
	parsed, err := ParseTimestamp(string(text))
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
