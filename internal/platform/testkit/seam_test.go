package testkit

import (
	"sync"
	"testing"
	"time"
)

var (
	greet   = func(name string) string { return "hello " + name }
	retries = 3
)

func TestSwapRestores(t *testing.T) {
	t.Run("func", func(t *testing.T) {
		Swap(t, &greet, func(string) string { return "stubbed" })
		if got := greet("ada"); got != "stubbed" {
			t.Fatalf("greet = %q", got)
		}
	})
	t.Run("int", func(t *testing.T) {
		Swap(t, &retries, 0)
		if retries != 0 {
			t.Fatalf("retries = %d", retries)
		}
	})
	if greet("ada") != "hello ada" || retries != 3 {
		t.Fatalf("originals not restored: %q %d", greet("ada"), retries)
	}
}

var wallClock = time.Now

func TestClock(t *testing.T) {
	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	t.Run("manual", func(t *testing.T) {
		c := NewClock(t, &wallClock, start)
		if !wallClock().Equal(start) {
			t.Fatalf("now = %v", wallClock())
		}
		c.Advance(90 * time.Second)
		if got := wallClock().Sub(start); got != 90*time.Second {
			t.Fatalf("advanced %v", got)
		}
	})
	if wallClock().Equal(start) {
		t.Fatalf("clock seam not restored")
	}
}

func TestSerialDoesNotInterleave(t *testing.T) {
	var (
		mu  sync.Mutex
		log []string
	)
	note := func(s string) {
		mu.Lock()
		log = append(log, s)
		mu.Unlock()
	}
	t.Run("group", func(t *testing.T) {
		for _, name := range []string{"a", "b"} {
			t.Run(name, func(t *testing.T) {
				t.Parallel()
				Serial(t)
				note(name + "+")
				time.Sleep(20 * time.Millisecond)
				note(name + "-")
			})
		}
	})
	if len(log) != 4 {
		t.Fatalf("log = %v", log)
	}
	for i := 0; i < 4; i += 2 {
		if log[i][:1] != log[i+1][:1] || log[i][1] != '+' || log[i+1][1] != '-' {
			t.Fatalf("interleaved: %v", log)
		}
	}
}
