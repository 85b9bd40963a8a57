package class

import (
	"sort"

	"github.com/joshuapare/shellkit/value"
)

// Instance is a type-erased, cloneable handle pairing a live host-owned
// object with the identity of its class. Downcasting to a concrete host
// type succeeds only when the requested type_id matches the one the
// instance was constructed with.
type Instance struct {
	desc *Descriptor
	raw  any
}

// NewInstance wraps a host value with the descriptor of the class that owns
// it. Host constructors call this to produce the Instance they return.
func NewInstance(desc *Descriptor, raw any) *Instance {
	return &Instance{desc: desc, raw: raw}
}

// Descriptor returns the class descriptor this instance was created from.
func (i *Instance) Descriptor() *Descriptor { return i.desc }

// ClassTag implements value.Instance.
func (i *Instance) ClassTag() (string, string) { return i.desc.Name, i.desc.FQName }

// Identity implements value.Instance: two Instance handles wrapping the same
// raw pointer/value compare equal, matching spec.md's identity-based
// equality for the Instance variant.
func (i *Instance) Identity() any { return i.raw }

// Downcast returns the wrapped host value as T, succeeding only if wantTypeID
// matches the type_id the instance was registered under.
func Downcast[T any](i *Instance, wantTypeID any) (T, bool) {
	var zero T
	if i == nil || i.desc == nil || i.desc.TypeID != wantTypeID {
		return zero, false
	}
	t, ok := i.raw.(T)
	return t, ok
}

// AttributeNames returns this instance's class's attribute names in sorted
// order, for callers (like the shell's value serializer) that need a
// deterministic iteration order over an otherwise unordered map.
func (i *Instance) AttributeNames() []string {
	names := make([]string, 0, len(i.desc.Attributes))
	for name := range i.desc.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAttr looks up and invokes the named attribute getter on this instance's
// class.
func (i *Instance) GetAttr(name string) (value.Value, error) {
	attr, ok := i.desc.Attributes[name]
	if !ok {
		return value.Value{}, &Error{Kind: ErrKindUnknownClass, Msg: "unknown attribute " + name}
	}
	return attr.Get(i)
}

// Call looks up and invokes the named method on this instance's class.
func (i *Instance) Call(name string, args []value.Value) (value.Value, error) {
	m, ok := i.desc.Methods[name]
	if !ok {
		return value.Value{}, &Error{Kind: ErrKindUnknownClass, Msg: "unknown method " + name}
	}
	return m.Invoke(i, args)
}
