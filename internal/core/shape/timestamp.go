package shape

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"time"
)

// Timestamp is a wire timestamp: epoch seconds as a JSON number with millisecond precision
type Timestamp time.Time

// At converts t to a Timestamp truncated to milliseconds
func At(t time.Time) Timestamp { return Timestamp(time.UnixMilli(t.UnixMilli()).UTC()) }

// TimePtr is At for optional members
func TimePtr(t time.Time) *Timestamp {
	ts := At(t)
	return &ts
}

// Time returns the timestamp as a time.Time in UTC
func (t Timestamp) Time() time.Time { return time.Time(t).UTC() }

// Equal compares two timestamps at wire precision
func (t Timestamp) Equal(o Timestamp) bool { return t.Time().UnixMilli() == o.Time().UnixMilli() }

// String renders RFC 3339 with milliseconds
func (t Timestamp) String() string { return t.Time().Format("2006-01-02T15:04:05.000Z07:00") }

// MarshalJSON emits seconds with up to three decimals
func (t Timestamp) MarshalJSON() ([]byte, error) {
	ms := t.Time().UnixMilli()
	return []byte(strconv.FormatFloat(float64(ms)/1000, 'f', -1, 64)), nil
}

const maxMillis = float64(1 << 63)

// UnmarshalJSON accepts JSON numbers only
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		return nil
	}
	if len(b) == 0 || b[0] == '"' || b[0] == '{' || b[0] == '[' || b[0] == 't' || b[0] == 'f' {
		return &json.UnmarshalTypeError{Value: describe(b), Type: reflect.TypeFor[Timestamp]()}
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	f, err := n.Float64()
	ms := math.Round(f * 1000)
	// out of int64 milliseconds is rejected, never clamped
	if err != nil || math.IsInf(ms, 0) || ms >= maxMillis || ms < -maxMillis {
		return &json.UnmarshalTypeError{Value: "number " + string(b), Type: reflect.TypeFor[Timestamp]()}
	}
	*t = Timestamp(time.UnixMilli(int64(ms)).UTC())
	return nil
}

func describe(b []byte) string {
	switch {
	case len(b) == 0:
		return "empty"
	case b[0] == '"':
		return "string"
	case b[0] == '{':
		return "object"
	case b[0] == '[':
		return "array"
	default:
		return "bool"
	}
}
