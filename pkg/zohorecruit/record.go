package zohorecruit

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Record is a raw Zoho record. Field shapes vary between modules and even between
// records of one module, so reads go through Value rather than type assertions.
type Record map[string]any

// ValueKind tags the shape of a Value
type ValueKind int

const (
	KindAbsent ValueKind = iota
	KindNull
	KindString
	KindNumber
	KindBool
	KindObject
	KindArray
)

// Value is one field of a Record tagged with its JSON shape
type Value struct {
	kind ValueKind
	str  string
	b    bool
	obj  Record
	arr  []any
}

// Field returns the named field of r
func (r Record) Field(name string) Value {
	if r == nil {
		return Value{}
	}
	raw, ok := r[name]
	if !ok {
		return Value{}
	}
	return valueOf(raw)
}

func valueOf(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Value{kind: KindNull}
	case string:
		return Value{kind: KindString, str: v}
	case json.Number:
		return Value{kind: KindNumber, str: v.String()}
	case float64:
		return Value{kind: KindNumber, str: strconv.FormatFloat(v, 'f', -1, 64)}
	case int:
		return Value{kind: KindNumber, str: strconv.Itoa(v)}
	case bool:
		return Value{kind: KindBool, b: v}
	case map[string]any:
		return Value{kind: KindObject, obj: Record(v)}
	case Record:
		return Value{kind: KindObject, obj: v}
	case []any:
		return Value{kind: KindArray, arr: v}
	default:
		return Value{}
	}
}

func (v Value) Kind() ValueKind {
	return v.kind
}

// Text returns the value as a non-empty trimmed string. Only strings and numbers
// qualify.
func (v Value) Text() (string, bool) {
	switch v.kind {
	case KindString, KindNumber:
		s := strings.TrimSpace(v.str)
		return s, s != ""
	default:
		return "", false
	}
}

// Bool reports the value as a boolean; "true" strings count
func (v Value) Bool() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindString:
		b, err := strconv.ParseBool(strings.TrimSpace(v.str))
		return err == nil && b
	default:
		return false
	}
}

// Field returns a sub-field when v is an object
func (v Value) Field(name string) Value {
	if v.kind != KindObject {
		return Value{}
	}
	return v.obj.Field(name)
}

// Ref resolves a lookup field: a scalar is the reference itself, an object
// contributes its key sub-field
func (v Value) Ref(key string) (string, bool) {
	if v.kind == KindObject {
		return v.obj.Field(key).Text()
	}
	return v.Text()
}

// textResolver is one step in a fallback chain
type textResolver func(Record) (string, bool)

// resolveText runs steps in order and returns the first hit, or fallback
func resolveText(r Record, fallback string, steps ...textResolver) string {
	for _, step := range steps {
		if s, ok := step(r); ok {
			return s
		}
	}
	return fallback
}

func fieldText(name string) textResolver {
	return func(r Record) (string, bool) {
		return r.Field(name).Text()
	}
}

func fieldRef(name, key string) textResolver {
	return func(r Record) (string, bool) {
		return r.Field(name).Ref(key)
	}
}
