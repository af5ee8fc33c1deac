package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	b := Info("comprehend-stub")
	if b.Service != "comprehend-stub" || b.Version != "dev" || b.Go != runtime.Version() {
		t.Fatalf("Info = %+v", b)
	}
	if s := b.String(); !strings.HasPrefix(s, "comprehend-stub dev (none, unknown, ") {
		t.Fatalf("String = %q", s)
	}
}
