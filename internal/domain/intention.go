package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Intention is a committed action the agent is about to perform.
//
// Deadline is nil, a number of Unix seconds, or a string holding such a
// number. It is kept as received from the reasoning service and only coerced
// when the executor checks for expiry.
type Intention struct {
	Action     string         `json:"action"`
	Parameters map[string]any `json:"parameters"`
	Deadline   any            `json:"deadline"`
}

// NewIntention builds an Intention that owns a fresh copy of parameters.
func NewIntention(action string, parameters map[string]any, deadline any) *Intention {
	return &Intention{
		Action:     action,
		Parameters: cloneMap(parameters),
		Deadline:   deadline,
	}
}

// DeadlineUnix coerces Deadline to Unix seconds. ok is false when there is no
// usable deadline: nil, a numeric zero, an empty string, or anything that is
// not a number or a numeric string.
func (i *Intention) DeadlineUnix() (float64, bool) {
	switch v := i.Deadline.(type) {
	case nil:
		return 0, false
	case float64:
		return v, v != 0
	case float32:
		return float64(v), v != 0
	case int:
		return float64(v), v != 0
	case int32:
		return float64(v), v != 0
	case int64:
		return float64(v), v != 0
	case uint:
		return float64(v), v != 0
	case uint32:
		return float64(v), v != 0
	case uint64:
		return float64(v), v != 0
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return f, f != 0
	case string:
		if v == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case time.Time:
		if v.IsZero() {
			return 0, false
		}
		return float64(v.UnixNano()) / float64(time.Second), true
	default:
		return 0, false
	}
}

// ExpiredAt reports whether the intention carries a deadline strictly before now.
func (i *Intention) ExpiredAt(now time.Time) bool {
	deadline, ok := i.DeadlineUnix()
	if !ok {
		return false
	}
	return float64(now.UnixNano())/float64(time.Second) > deadline
}
