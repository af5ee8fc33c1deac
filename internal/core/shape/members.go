package shape

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

var (
	unmarshalerType = reflect.TypeFor[json.Unmarshaler]()
	memberCache     sync.Map // reflect.Type -> map[string]reflect.Type
)

// wire walks a payload against the destination type and returns it with every
// member that is not an exact wire name removed. Scalars are test-decoded on the
// way so a mismatch reports its full path, sequence indexes included
func wire(raw json.RawMessage, t reflect.Type, path string) (json.RawMessage, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return raw, nil
	}
	if t.Implements(unmarshalerType) || reflect.PointerTo(t).Implements(unmarshalerType) {
		return raw, leaf(raw, t, path)
	}

	switch t.Kind() {
	case reflect.Struct:
		if raw[0] != '{' {
			return nil, leaf(raw, t, path)
		}
		var in map[string]json.RawMessage
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, decodeError(err, path)
		}
		members := wireMembers(t)
		out := make(map[string]json.RawMessage, len(in))
		for name, v := range in {
			ft, ok := members[name]
			if !ok {
				continue
			}
			w, err := wire(v, ft, memberPath(path, name))
			if err != nil {
				return nil, err
			}
			out[name] = w
		}
		return json.Marshal(out)

	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 || raw[0] != '[' {
			return raw, leaf(raw, t, path)
		}
		var in []json.RawMessage
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, decodeError(err, path)
		}
		for i, v := range in {
			w, err := wire(v, t.Elem(), path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			in[i] = w
		}
		return json.Marshal(in)

	case reflect.Map:
		if raw[0] != '{' {
			return raw, leaf(raw, t, path)
		}
		var in map[string]json.RawMessage
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, decodeError(err, path)
		}
		for k, v := range in {
			w, err := wire(v, t.Elem(), path+"["+k+"]")
			if err != nil {
				return nil, err
			}
			in[k] = w
		}
		return json.Marshal(in)
	}
	return raw, leaf(raw, t, path)
}

func leaf(raw json.RawMessage, t reflect.Type, path string) error {
	if err := json.Unmarshal(raw, reflect.New(t).Interface()); err != nil {
		return decodeError(err, path)
	}
	return nil
}

// wireMembers maps exact wire names to member types. Promoted members of
// untagged embedded structs count; a direct member shadows a promoted one
func wireMembers(t reflect.Type) map[string]reflect.Type {
	if m, ok := memberCache.Load(t); ok {
		return m.(map[string]reflect.Type)
	}
	m := map[string]reflect.Type{}
	var promoted []map[string]reflect.Type
	for i := range t.NumField() {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				promoted = append(promoted, wireMembers(ft))
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		m[name] = f.Type
	}
	for _, p := range promoted {
		for name, ft := range p {
			if _, ok := m[name]; !ok {
				m[name] = ft
			}
		}
	}
	actual, _ := memberCache.LoadOrStore(t, m)
	return actual.(map[string]reflect.Type)
}

func memberPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
