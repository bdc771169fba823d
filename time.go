package vesting

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/iov-one/vesting/errors"
)

// UnixTime represents a point in time as POSIX time.
// Instead of using Go's time.Time that includes nanoseconds this is a
// primitive int64 type with seconds precision. Some languages do not support
// nanoseconds precision anyway.
type UnixTime int64

// Time returns a time.Time structure that represents the same moment in time.
func (t UnixTime) Time() time.Time {
	return time.Unix(int64(t), 0)
}

// IsZero returns true if this time represents a zero value.
func (t UnixTime) IsZero() bool {
	return t == 0
}

// Add modifies this UNIX time by given duration. This is compatible with
// time.Time.Add method.
func (t UnixTime) Add(d time.Duration) UnixTime {
	return t + UnixTime(d/time.Second)
}

// AsUnixTime converts given Time structure into its UNIX time representation.
func AsUnixTime(t time.Time) UnixTime {
	return UnixTime(t.Unix())
}

// UnmarshalJSON supports unmarshaling both as time.Time and from a number.
// Usually a number is used as a representation of this time in JSON but it is
// convenient to use a string format in configurations (ie genesis file).
func (t *UnixTime) UnmarshalJSON(raw []byte) error {
	var unix int64
	if err := json.Unmarshal(raw, &unix); err == nil {
		if unix < 0 {
			return errors.Wrap(errors.ErrInput, "time before epoch")
		}
		*t = UnixTime(unix)
		return nil
	}

	var stdtime time.Time
	if err := json.Unmarshal(raw, &stdtime); err == nil {
		unix := UnixTime(stdtime.Unix())
		if unix < 0 {
			return errors.Wrap(errors.ErrInput, "time before epoch")
		}
		*t = unix
		return nil
	}

	return errors.Wrap(errors.ErrInput, "invalid time format")
}

// Validate returns an error if this time value is invalid.
func (t UnixTime) Validate() error {
	if t < 0 {
		return errors.Wrap(errors.ErrState, "negative value")
	}
	return nil
}

// String returns the usual string representation of this time as the
// time.Time structure would.
func (t UnixTime) String() string {
	return t.Time().String()
}

// Clock provides the current time to the ledger. It abstracts away the
// standard time package so that the environment controls time, allowing
// for testing.
type Clock interface {
	// Now returns the current time.
	Now() UnixTime
}

// WallClock is a Clock implementation backed by the system time.
type WallClock struct{}

var _ Clock = WallClock{}

func (WallClock) Now() UnixTime {
	return AsUnixTime(time.Now())
}

// BlockClock is a Clock implementation advanced manually by the
// environment. It never moves on its own. The zero value starts at the
// epoch.
type BlockClock struct {
	mu  sync.Mutex
	now UnixTime
}

var _ Clock = (*BlockClock)(nil)

// NewBlockClock returns a manual clock set to the given moment.
func NewBlockClock(now UnixTime) *BlockClock {
	return &BlockClock{now: now}
}

func (c *BlockClock) Now() UnixTime {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to the given moment. Time never runs backwards.
func (c *BlockClock) Set(now UnixTime) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if now < c.now {
		return errors.Wrap(errors.ErrState, "time cannot run backwards")
	}
	c.now = now
	return nil
}

// Advance moves the clock forward by the given duration.
func (c *BlockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
