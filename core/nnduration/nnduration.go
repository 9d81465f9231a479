// Package nnduration provides a non-negative millisecond duration type for JSON requests.
package nnduration

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Milliseconds is a non-negative duration in milliseconds.
// In JSON, it is either a non-negative integer or a string recognized by time.ParseDuration.
type Milliseconds uint64

// Duration converts to time.Duration.
func (d Milliseconds) Duration() time.Duration {
	return time.Duration(d) * time.Millisecond
}

// DurationOr converts to time.Duration, or returns dflt milliseconds if zero.
func (d Milliseconds) DurationOr(dflt Milliseconds) time.Duration {
	if d == 0 {
		return dflt.Duration()
	}
	return d.Duration()
}

// MarshalJSON implements json.Marshaler interface.
func (d Milliseconds) MarshalJSON() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(d), 10), nil
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (d *Milliseconds) UnmarshalJSON(p []byte) error {
	input := strings.Trim(string(p), `"`)
	if dur, e := time.ParseDuration(input); e == nil {
		if dur < 0 {
			return fmt.Errorf("negative duration %s", input)
		}
		*d = Milliseconds(dur / time.Millisecond)
		return nil
	}

	v, e := strconv.ParseUint(input, 10, 64)
	if e != nil {
		return fmt.Errorf("bad duration %q: %w", input, e)
	}
	*d = Milliseconds(v)
	return nil
}
