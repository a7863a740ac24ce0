package domain

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"go.yaml.in/yaml/v3"
)

// Timestamp is a next-review instant in seconds since the epoch.
// It keeps the value as it was decoded so that a non-numeric entry can be
// reported when it is interpreted rather than when the deck is read.
type Timestamp struct {
	raw     string
	numeric bool
	seconds float64
}

// Seconds returns a numeric timestamp.
func Seconds(s float64) *Timestamp {
	return &Timestamp{
		raw:     strconv.FormatFloat(s, 'f', -1, 64),
		numeric: !math.IsNaN(s) && !math.IsInf(s, 0),
		seconds: s,
	}
}

// Raw returns a timestamp that holds a value which is not a number.
func Raw(s string) *Timestamp {
	return &Timestamp{raw: s}
}

// FromSQL converts a column value scanned from a database driver.
// A NULL column yields nil.
func FromSQL(v any) *Timestamp {
	switch v := v.(type) {
	case nil:
		return nil
	case int64:
		return Seconds(float64(v))
	case float64:
		return Seconds(v)
	case []byte:
		return Raw(string(v))
	case string:
		return Raw(v)
	default:
		return Raw(fmt.Sprint(v))
	}
}

// Epoch reports the timestamp in seconds and whether it is a finite number.
func (t *Timestamp) Epoch() (float64, bool) {
	return t.seconds, t.numeric
}

// String returns the value as it appeared in the source.
func (t *Timestamp) String() string {
	return t.raw
}

// UnmarshalJSON accepts any JSON value. Only numbers are usable as instants.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	raw := string(bytes.TrimSpace(b))
	*t = Timestamp{raw: raw}
	if raw == "" {
		return nil
	}
	if c := raw[0]; c == '-' || (c >= '0' && c <= '9') {
		f, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			t.numeric = true
			t.seconds = f
		}
	}
	return nil
}

// UnmarshalYAML accepts any YAML node. Only !!int and !!float scalars are
// usable as instants.
func (t *Timestamp) UnmarshalYAML(node *yaml.Node) error {
	*t = Timestamp{raw: node.Value}
	if node.Kind != yaml.ScalarNode {
		t.raw = node.Tag
		return nil
	}
	switch node.ShortTag() {
	case "!!int", "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return nil
		}
		if !math.IsNaN(f) && !math.IsInf(f, 0) {
			t.numeric = true
			t.seconds = f
		}
	}
	return nil
}
