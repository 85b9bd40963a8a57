package registry

// ErrKind enumerates the registry's error taxonomy. Every public Registry
// operation returns either nil or an *Error of one of these kinds.
type ErrKind int

const (
	ErrKindMissingAtPath ErrKind = iota
	ErrKindInvalidPathChildName
	ErrKindIllegalPathNavigation
	ErrKindDuplicatePath
	ErrKindClassChildNameConflict
	ErrKindDuplicateClass
	ErrKindUnknownClass
	ErrKindNoConstructor
	ErrKindInvalidNumberOfMethodParameters
	ErrKindInvalidMethodParameter
	ErrKindInvalidCast
	ErrKindInternalError
)

// Error is the registry's single error type. Only the fields relevant to Kind
// are populated; the rest are left at their zero value.
type Error struct {
	Kind ErrKind
	Msg  string

	Path     string
	Pwd, Cd  string
	Expected string
	Reason   string

	Class, Method string
	ParamIndex    int
	ParamType     string

	ExpectedN int
	Received  int

	CastType string
	Got      string

	Err error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func errMissingAtPath(path, expected string) *Error {
	return &Error{Kind: ErrKindMissingAtPath, Msg: "nothing at " + path + " (expected " + expected + ")", Path: path, Expected: expected}
}

func errInvalidPathChildName(pwd, child, reason string) *Error {
	return &Error{Kind: ErrKindInvalidPathChildName, Msg: "invalid child name " + child + ": " + reason, Pwd: pwd, Path: child, Reason: reason}
}

func errIllegalPathNavigation(pwd, cd, reason string) *Error {
	return &Error{Kind: ErrKindIllegalPathNavigation, Msg: "illegal path navigation: " + reason, Pwd: pwd, Cd: cd, Reason: reason}
}

func errDuplicatePath(path string) *Error {
	return &Error{Kind: ErrKindDuplicatePath, Msg: "duplicate path " + path, Path: path}
}

func errNoConstructor(class string) *Error {
	return &Error{Kind: ErrKindNoConstructor, Msg: "class " + class + " has no constructor", Class: class}
}

func errInvalidNumberOfMethodParameters(class, method string, expected, received int) *Error {
	return &Error{
		Kind: ErrKindInvalidNumberOfMethodParameters,
		Msg:  "wrong number of parameters for " + class + "::" + method,
		Class: class, Method: method, ExpectedN: expected, Received: received,
	}
}

func errInvalidMethodParameter(class, method string, idx int, paramType, reason string) *Error {
	return &Error{
		Kind: ErrKindInvalidMethodParameter,
		Msg:  "invalid parameter " + method + "[" + paramType + "]: " + reason,
		Class: class, Method: method, ParamIndex: idx, ParamType: paramType, Reason: reason,
	}
}

func errInvalidCast(pwd, cd, castType, expected, got string) *Error {
	return &Error{
		Kind: ErrKindInvalidCast, Msg: "cannot cast to " + castType,
		Pwd: pwd, Cd: cd, CastType: castType, Expected: expected, Got: got,
	}
}

func errInternal(reason string, cause error) *Error {
	return &Error{Kind: ErrKindInternalError, Msg: reason, Reason: reason, Err: cause}
}
