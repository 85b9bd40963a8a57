// Package value implements the tagged-union Value type exchanged between a
// host program and the shell: scalars, collections, and opaque instance
// handles referencing host-owned objects.
package value

import "fmt"

// Kind discriminates the variant a Value currently holds.
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindBoolean
	KindString
	KindList
	KindMap
	KindInstance
)

// Instance is satisfied by the class package's instance handle. Value only
// needs identity and a type-tag pair from it, so the interface is kept small
// to avoid an import cycle between value and class.
type Instance interface {
	// ClassTag returns (short name, fully-qualified name) of the instance's class.
	ClassTag() (string, string)
	// Identity returns a comparable key unique to the underlying host object,
	// used for Instance equality (which is by identity, not structure).
	Identity() any
}

// Value is a tagged union of the scalar, collection, and instance variants
// the shell understands. The zero Value is the integer 0; callers should
// always construct Values through the New* constructors.
type Value struct {
	kind Kind

	i   int64
	f   float64
	b   bool
	s   string
	lst []Value
	m   map[string]Value
	// mkeys preserves map insertion order for deterministic serialization,
	// even though spec semantics treat map key order as irrelevant.
	mkeys []string
	inst  Instance
}

func NewInteger(i int64) Value  { return Value{kind: KindInteger, i: i} }
func NewFloat(f float64) Value  { return Value{kind: KindFloat, f: f} }
func NewBoolean(b bool) Value   { return Value{kind: KindBoolean, b: b} }
func NewString(s string) Value  { return Value{kind: KindString, s: s} }
func NewList(items []Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindList, lst: cp}
}
func NewInstance(inst Instance) Value { return Value{kind: KindInstance, inst: inst} }

// NewMap builds a Map value from keys in the given order. Duplicate keys
// overwrite earlier ones but the first occurrence's position is kept, which
// matches ordinary Go map literal semantics applied in order.
func NewMap(keys []string, vals []Value) Value {
	m := make(map[string]Value, len(keys))
	order := make([]string, 0, len(keys))
	for i, k := range keys {
		if _, exists := m[k]; !exists {
			order = append(order, k)
		}
		m[k] = vals[i]
	}
	return Value{kind: KindMap, m: m, mkeys: order}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) Integer() (int64, bool)    { return v.i, v.kind == KindInteger }
func (v Value) Float() (float64, bool)    { return v.f, v.kind == KindFloat }
func (v Value) Boolean() (bool, bool)     { return v.b, v.kind == KindBoolean }
func (v Value) String() (string, bool)    { return v.s, v.kind == KindString }
func (v Value) Instance() (Instance, bool) { return v.inst, v.kind == KindInstance }

// List returns the element slice and whether v is a List. The returned slice
// must be treated as read-only by callers.
func (v Value) List() ([]Value, bool) { return v.lst, v.kind == KindList }

// Map returns the key order and backing map and whether v is a Map.
func (v Value) Map() ([]string, map[string]Value, bool) {
	return v.mkeys, v.m, v.kind == KindMap
}

// TypeTag returns the (short_tag, fq_tag) pair for v, per the shell's type
// system: scalar/collection kinds have fixed tags, instances report their
// class's own name pair.
func (v Value) TypeTag() (short, fq string) {
	switch v.kind {
	case KindBoolean:
		return "bool", "boolean"
	case KindInteger:
		return "int", "integer"
	case KindFloat:
		return "float", "float"
	case KindString:
		return "string", "string"
	case KindList:
		return "list", "vec"
	case KindMap:
		return "map", "dict"
	case KindInstance:
		return v.inst.ClassTag()
	default:
		return "", ""
	}
}

// Equal reports structural equality for every variant except Instance, which
// compares by the underlying object's identity.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindInteger:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindBoolean:
		return v.b == other.b
	case KindString:
		return v.s == other.s
	case KindList:
		if len(v.lst) != len(other.lst) {
			return false
		}
		for i := range v.lst {
			if !v.lst[i].Equal(other.lst[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.m) != len(other.m) {
			return false
		}
		for k, val := range v.m {
			ov, ok := other.m[k]
			if !ok || !val.Equal(ov) {
				return false
			}
		}
		return true
	case KindInstance:
		return v.inst != nil && other.inst != nil && v.inst.Identity() == other.inst.Identity()
	default:
		return false
	}
}

// GoString renders v for debugging; it is unrelated to shell serialization
// (see the shell package's FormatValue, which implements the doubled-brace
// wire format required by the execute command).
func (v Value) GoString() string {
	switch v.kind {
	case KindInteger:
		return fmt.Sprintf("Integer(%d)", v.i)
	case KindFloat:
		return fmt.Sprintf("Float(%g)", v.f)
	case KindBoolean:
		return fmt.Sprintf("Boolean(%t)", v.b)
	case KindString:
		return fmt.Sprintf("String(%q)", v.s)
	case KindList:
		return fmt.Sprintf("List(%d items)", len(v.lst))
	case KindMap:
		return fmt.Sprintf("Map(%d keys)", len(v.m))
	case KindInstance:
		short, _ := v.inst.ClassTag()
		return fmt.Sprintf("Instance(%s)", short)
	default:
		return "Value(?)"
	}
}
