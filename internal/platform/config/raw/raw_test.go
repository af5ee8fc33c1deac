package raw

import "testing"

func TestGet(t *testing.T) {
	t.Setenv("LOG_SERVICE", " comprehend-stub ")
	t.Setenv("LOG_LEVEL", "")

	c := New().Prefix("LOG_")
	if got := c.Get("SERVICE", "x"); got != "comprehend-stub" {
		t.Fatalf("Get = %q", got)
	}
	if got := c.Get("LEVEL", "debug"); got != "debug" {
		t.Fatalf("Get empty = %q, want default", got)
	}
	if got := New().Prefix("LOG_").Prefix("X_").Get("SERVICE", "d"); got != "d" {
		t.Fatalf("nested prefix leaked: %q", got)
	}
}

func TestGetBool(t *testing.T) {
	cases := []struct {
		val  string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"1", false, true},
		{" YES ", false, true},
		{"no", true, false},
		{"0", true, false},
		{"", true, true},
	}
	for _, tc := range cases {
		t.Setenv("RAW_FLAG", tc.val)
		if got := New().Prefix("RAW_").GetBool("FLAG", tc.def); got != tc.want {
			t.Fatalf("GetBool(%q, %v) = %v", tc.val, tc.def, got)
		}
	}
}

func TestGetInt(t *testing.T) {
	cases := []struct {
		val  string
		want int
	}{
		{"42", 42},
		{" 7 ", 7},
		{"12x", 9},
		{"-5", 9},
		{"", 9},
	}
	for _, tc := range cases {
		t.Setenv("RAW_N", tc.val)
		if got := New().Prefix("RAW_").GetInt("N", 9); got != tc.want {
			t.Fatalf("GetInt(%q) = %d, want %d", tc.val, got, tc.want)
		}
	}
}
