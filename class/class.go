// Package class implements the host-side class descriptor, the opaque
// instance handle, and the host catalog that maps names to descriptors.
package class

import "github.com/joshuapare/shellkit/value"

// Constructor builds a new Instance from coerced arguments. ParamTypes gives
// the expected type tag ("int", "float", "bool", "string", or a class
// name/fq_name) for each positional argument, in order.
type Constructor struct {
	ParamTypes []string
	Invoke     func(args []value.Value) (*Instance, error)
}

// Attribute is a read-only getter exposed as a registry child node.
type Attribute struct {
	Get func(inst *Instance) (value.Value, error)
}

// Method is an invokable exposed as a registry child node. AliasPath, if
// non-empty, is the child name the registry materializes instead of the
// method's own name.
type Method struct {
	ParamTypes []string
	AliasPath  string
	Invoke     func(inst *Instance, args []value.Value) (value.Value, error)
}

// Descriptor is an immutable record of a host class: its name pair, an
// opaque runtime type identity used to validate downcasts, an optional
// constructor, and its named attributes and methods.
type Descriptor struct {
	Name       string
	FQName     string
	TypeID     any
	Constructor *Constructor
	Attributes map[string]Attribute
	Methods    map[string]Method
}

// ChildName returns the registry child name a method is materialized under:
// its alias path if one is set, otherwise the method's own name.
func (m Method) ChildName(name string) string {
	if m.AliasPath != "" {
		return m.AliasPath
	}
	return name
}

// validate checks the attribute/method-name disjointness invariant spec.md
// §3 requires of every class descriptor.
func (d *Descriptor) validate() *Error {
	seen := make(map[string]struct{}, len(d.Attributes)+len(d.Methods))
	for name := range d.Attributes {
		seen[name] = struct{}{}
	}
	for name, m := range d.Methods {
		child := m.ChildName(name)
		if _, ok := seen[child]; ok {
			return &Error{
				Kind:  ErrKindChildNameConflict,
				Msg:   "class " + d.FQName + ": child name conflict on " + child,
				Class: d.FQName,
				Child: child,
			}
		}
		seen[child] = struct{}{}
	}
	return nil
}
