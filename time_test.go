package vesting

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/iov-one/vesting/errors"
	"github.com/stretchr/testify/assert"
)

func TestUnixTimeUnmarshal(t *testing.T) {
	cases := map[string]struct {
		json     string
		wantErr  *errors.Error
		wantTime UnixTime
	}{
		"zero time": {
			json:     "0",
			wantTime: 0,
		},
		"number": {
			json:     "1234567890",
			wantTime: 1234567890,
		},
		"negative number": {
			json:    "-1",
			wantErr: errors.ErrInput,
		},
		"string time": {
			json:     `"2009-02-13T23:31:30Z"`,
			wantTime: 1234567890,
		},
		"string time before epoch": {
			json:    `"1969-12-30T00:00:00Z"`,
			wantErr: errors.ErrInput,
		},
		"invalid format": {
			json:    `"not a time"`,
			wantErr: errors.ErrInput,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var got UnixTime
			err := json.Unmarshal([]byte(tc.json), &got)
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.wantTime, got)
		})
	}
}

func TestUnixTimeAdd(t *testing.T) {
	now := UnixTime(1000)
	assert.Equal(t, UnixTime(1030), now.Add(30*time.Second))
	assert.Equal(t, UnixTime(940), now.Add(-time.Minute))
	// Truncated to seconds precision.
	assert.Equal(t, now, now.Add(999*time.Millisecond))
}

func TestBlockClock(t *testing.T) {
	c := NewBlockClock(100)
	assert.Equal(t, UnixTime(100), c.Now())

	c.Advance(31 * time.Second)
	assert.Equal(t, UnixTime(131), c.Now())

	assert.NoError(t, c.Set(200))
	assert.Equal(t, UnixTime(200), c.Now())

	// Time never runs backwards.
	assert.True(t, errors.ErrState.Is(c.Set(150)))
	assert.Equal(t, UnixTime(200), c.Now())
}

func TestWallClock(t *testing.T) {
	before := AsUnixTime(time.Now())
	now := WallClock{}.Now()
	after := AsUnixTime(time.Now())
	assert.True(t, before <= now && now <= after)
}
