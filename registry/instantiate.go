package registry

import (
	"github.com/joshuapare/shellkit/class"
	"github.com/joshuapare/shellkit/value"
)

// CreateParsed resolves className, requires it to have a constructor,
// coerces each string argument according to the constructor's declared
// parameter type tags, invokes it, and installs the resulting instance at
// DIR (materializing its attribute/method children).
func (r *Registry) CreateParsed(pwd, cd, className string, args []string) error {
	desc, cerr := r.host.Lookup(className)
	if cerr != nil {
		return asClassErr(cerr)
	}
	if desc.Constructor == nil {
		return errNoConstructor(className)
	}
	vals, err := r.coerceArgs(pwd, className, "<constructor>", desc.Constructor.ParamTypes, args)
	if err != nil {
		return err
	}
	return r.installConstructed(pwd, cd, desc, vals)
}

// CreateTyped is the already-typed counterpart to CreateParsed: args are
// validated by tag equality against the constructor's declared types rather
// than coerced from strings.
func (r *Registry) CreateTyped(pwd, cd, className string, args []value.Value) error {
	desc, cerr := r.host.Lookup(className)
	if cerr != nil {
		return asClassErr(cerr)
	}
	if desc.Constructor == nil {
		return errNoConstructor(className)
	}
	if err := r.validateArgs(className, "<constructor>", desc.Constructor.ParamTypes, args); err != nil {
		return err
	}
	return r.installConstructed(pwd, cd, desc, args)
}

func (r *Registry) installConstructed(pwd, cd string, desc *class.Descriptor, args []value.Value) error {
	inst, err := desc.Constructor.Invoke(args)
	if err != nil {
		return errInvalidMethodParameter(desc.FQName, "<constructor>", -1, "", err.Error())
	}
	_, cerr := r.createPath(pwd, cd, false, installParams{instance: inst})
	return asErr(cerr)
}

// Attr resolves DIR to an attribute-kind node and invokes its getter on the
// owning instance.
func (r *Registry) Attr(pwd, cd string) (value.Value, error) {
	n, err := r.navigate(pwd, cd)
	if err != nil {
		return value.Value{}, err
	}
	if !n.hasAttr {
		return value.Value{}, errMissingAtPath(n.fullPath, "attribute")
	}
	owner := r.nodes[n.owner]
	v, gerr := owner.instance.GetAttr(n.attr)
	if gerr != nil {
		return value.Value{}, errInternal("attribute getter failed", gerr)
	}
	return v, nil
}

// InvokeParsed resolves DIR to a method-kind node, coerces string args
// against the method's declared parameter types, and invokes it.
func (r *Registry) InvokeParsed(pwd, cd string, args []string) (value.Value, error) {
	n, owner, merr := r.resolveMethod(pwd, cd)
	if merr != nil {
		return value.Value{}, merr
	}
	m := owner.instance.Descriptor().Methods[n.method]
	vals, err := r.coerceArgs(pwd, owner.instance.Descriptor().FQName, n.method, m.ParamTypes, args)
	if err != nil {
		return value.Value{}, err
	}
	return r.invoke(owner, n.method, vals)
}

// InvokeTyped is the already-typed counterpart to InvokeParsed.
func (r *Registry) InvokeTyped(pwd, cd string, args []value.Value) (value.Value, error) {
	n, owner, merr := r.resolveMethod(pwd, cd)
	if merr != nil {
		return value.Value{}, merr
	}
	m := owner.instance.Descriptor().Methods[n.method]
	if err := r.validateArgs(owner.instance.Descriptor().FQName, n.method, m.ParamTypes, args); err != nil {
		return value.Value{}, err
	}
	return r.invoke(owner, n.method, args)
}

func (r *Registry) resolveMethod(pwd, cd string) (*node, *node, error) {
	n, err := r.navigate(pwd, cd)
	if err != nil {
		return nil, nil, err
	}
	if !n.hasMethod {
		return nil, nil, errMissingAtPath(n.fullPath, "method")
	}
	return n, r.nodes[n.owner], nil
}

func (r *Registry) invoke(owner *node, method string, args []value.Value) (value.Value, error) {
	v, err := owner.instance.Call(method, args)
	if err != nil {
		return value.Value{}, errInternal("method invocation failed", err)
	}
	return v, nil
}
