package ptr

import (
	"testing"
	"time"
)

func TestToAndDeref(t *testing.T) {
	p := To[int32](0)
	if p == nil || *p != 0 {
		t.Fatalf("To(0) = %v", p)
	}
	if Deref[int32](nil) != 0 || Deref(p) != 0 {
		t.Fatalf("Deref mismatch")
	}
	if Or(nil, "def") != "def" || Or(To("x"), "def") != "x" {
		t.Fatalf("Or mismatch")
	}
}

func TestNonEmptyAndTime(t *testing.T) {
	if NonEmpty("") != nil || *NonEmpty("a") != "a" {
		t.Fatalf("NonEmpty mismatch")
	}
	if Time(time.Time{}) != nil || Time(time.Unix(1, 0)) == nil {
		t.Fatalf("Time mismatch")
	}
}
