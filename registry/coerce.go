package registry

import (
	"github.com/joshuapare/shellkit/class"
	"github.com/joshuapare/shellkit/value"
)

func asClassErr(err error) *Error {
	cerr, ok := err.(*class.Error)
	if !ok {
		return errInternal("class lookup failed", err)
	}
	switch cerr.Kind {
	case class.ErrKindUnknownClass:
		return &Error{Kind: ErrKindUnknownClass, Msg: cerr.Msg, Class: cerr.Class}
	case class.ErrKindDuplicateClass:
		return &Error{Kind: ErrKindDuplicateClass, Msg: cerr.Msg, Class: cerr.Class}
	default:
		return errInternal(cerr.Msg, cerr)
	}
}

// coerceArgs implements spec.md §4.F's constructor/method parameter
// coercion rules: bool/int(32-bit)/float(64-bit)/string are parsed from the
// raw string; any other tag is treated as a class name and resolved as a
// path (relative to root) whose terminal node must carry an instance of
// that class.
func (r *Registry) coerceArgs(pwd, className, methodName string, paramTypes []string, args []string) ([]value.Value, *Error) {
	if len(paramTypes) != len(args) {
		return nil, errInvalidNumberOfMethodParameters(className, methodName, len(paramTypes), len(args))
	}
	out := make([]value.Value, len(args))
	for i, tag := range paramTypes {
		v, err := r.coerceOne(pwd, className, methodName, i, tag, args[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (r *Registry) coerceOne(pwd, className, methodName string, idx int, tag, raw string) (value.Value, *Error) {
	switch tag {
	case "bool":
		v, err := value.ParseBool(raw)
		if err != nil {
			return value.Value{}, errInvalidMethodParameter(className, methodName, idx, tag, err.Error())
		}
		return v, nil
	case "int":
		v, err := value.ParseInt32(raw)
		if err != nil {
			return value.Value{}, errInvalidMethodParameter(className, methodName, idx, tag, err.Error())
		}
		return v, nil
	case "float":
		v, err := value.ParseFloat64(raw)
		if err != nil {
			return value.Value{}, errInvalidMethodParameter(className, methodName, idx, tag, err.Error())
		}
		return v, nil
	case "string":
		return value.NewString(raw), nil
	default:
		n, err := r.navigate("/", raw)
		if err != nil {
			return value.Value{}, err
		}
		if n.instance == nil {
			return value.Value{}, errMissingAtPath(n.fullPath, "instance")
		}
		short, fq := n.instance.Descriptor().Name, n.instance.Descriptor().FQName
		if short != tag && fq != tag {
			return value.Value{}, errInvalidCast(pwd, raw, tag, tag, fq)
		}
		return value.NewInstance(n.instance), nil
	}
}

// validateArgs is the typed-argument counterpart to coerceArgs: arguments
// are already Values, so each is checked by type-tag equality against the
// declared parameter type instead of being parsed.
func (r *Registry) validateArgs(className, methodName string, paramTypes []string, args []value.Value) *Error {
	if len(paramTypes) != len(args) {
		return errInvalidNumberOfMethodParameters(className, methodName, len(paramTypes), len(args))
	}
	for i, tag := range paramTypes {
		short, fq := args[i].TypeTag()
		if short != tag && fq != tag {
			return errInvalidMethodParameter(className, methodName, i, tag, "param is of the wrong type")
		}
	}
	return nil
}
