package module

import (
	"context"
	"testing"

	phttp "comprehend/internal/platform/net/http"
	kit "comprehend/internal/platform/testkit"
)

type pinger interface{ Ping(context.Context) error }

type fakePing struct{}

func (fakePing) Ping(context.Context) error { return nil }

type fakeModule struct {
	name  string
	ports any
}

func (f fakeModule) MountRoutes(phttp.Router) {}
func (f fakeModule) Ports() any               { return f.ports }
func (f fakeModule) Name() string             { return f.name }

type portSet struct {
	hidden pinger
	Health pinger
	Label  string
}

func TestPortsOf(t *testing.T) {
	cases := map[string]struct {
		ports any
		ok    bool
	}{
		"direct":        {ports: fakePing{}, ok: true},
		"struct field":  {ports: portSet{Health: fakePing{}}, ok: true},
		"pointer field": {ports: &portSet{Health: fakePing{}}, ok: true},
		"nil ports":     {ports: nil},
		"nil pointer":   {ports: (*portSet)(nil)},
		"unexported":    {ports: portSet{hidden: fakePing{}}},
		"scalar":        {ports: 3},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, ok := PortsOf[pinger](fakeModule{name: name, ports: tc.ports})
			if ok != tc.ok {
				t.Fatalf("PortsOf ok = %v, want %v", ok, tc.ok)
			}
		})
	}
}

func TestMustPortsOfPanics(t *testing.T) {
	kit.MustPanic(t, func() { _ = MustPortsOf[pinger](fakeModule{name: "empty"}) })
	kit.MustNotPanic(t, func() { _ = MustPortsOf[pinger](fakeModule{name: "ok", ports: fakePing{}}) })
}

func TestRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	Register(fakeModule{name: "stub", ports: portSet{Label: "records"}})
	got, ok := PortsAs[portSet]("stub")
	if !ok || got.Label != "records" {
		t.Fatalf("PortsAs = %+v, %v", got, ok)
	}
	if _, ok := PortsAs[int]("stub"); ok {
		t.Fatalf("wrong type should not assert")
	}
	if _, ok := PortsAs[portSet]("missing"); ok {
		t.Fatalf("missing name should not resolve")
	}

	Register(fakeModule{name: "health", ports: portSet{Health: fakePing{}}})
	if _, ok := PortsAs[pinger]("health"); !ok {
		t.Fatalf("PortsAs should match an exported field")
	}
	if m, ok := Lookup("health"); !ok || m.Name() != "health" {
		t.Fatalf("Lookup = %v, %v", m, ok)
	}
}
