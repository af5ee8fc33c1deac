package shape_test

import (
	"math"
	"testing"
	"time"

	"comprehend/internal/core/shape"
	"comprehend/internal/platform/ptr"
)

func TestEqualImpliesSameHash(t *testing.T) {
	mk := func() result {
		return result{
			Required:  ptr.To("r"),
			Index:     ptr.To[int32](3),
			Items:     []item{{Score: ptr.To[float32](0.5), Type: ptr.To(kindPerson)}},
			Labels:    map[string]string{"b": "2", "a": "1"},
			Submitted: shape.TimePtr(time.Unix(1700000000, 0)),
		}
	}
	a, b := mk(), mk()
	if !shape.Equal(a, b) {
		t.Fatalf("identical values must be equal")
	}
	if shape.Hash(a) != shape.Hash(b) {
		t.Fatalf("equal values must hash equally")
	}

	b.Items[0].Type = ptr.To(kindPlace)
	if shape.Equal(a, b) {
		t.Fatalf("differing nested enum must be unequal")
	}

	c := mk()
	c.Index = nil
	if shape.Equal(a, c) || shape.Hash(a) == shape.Hash(c) {
		t.Fatalf("absent vs present must differ")
	}
}

func TestEqualRejectsNaN(t *testing.T) {
	nan := float32(math.NaN())
	a := item{Score: &nan}
	if shape.Equal(a, a) {
		t.Fatalf("NaN scores are not encodable and never equal")
	}
}

func TestTimestampWire(t *testing.T) {
	ts := shape.At(time.Date(2023, 11, 14, 22, 13, 20, 123456789, time.UTC))
	b, _ := ts.MarshalJSON()
	if string(b) != "1700000000.123" {
		t.Fatalf("MarshalJSON = %s", b)
	}
	var back shape.Timestamp
	if err := back.UnmarshalJSON([]byte("1700000000.123")); err != nil {
		t.Fatalf("UnmarshalJSON err = %v", err)
	}
	if !back.Equal(ts) {
		t.Fatalf("timestamp round trip = %s, want %s", back, ts)
	}
	whole := shape.At(time.Unix(1700000000, 0))
	b, _ = whole.MarshalJSON()
	if string(b) != "1700000000" {
		t.Fatalf("whole seconds = %s", b)
	}
}
