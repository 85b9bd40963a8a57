// Package demo provides a small set of host classes — Counter, Greeter, and
// Stopwatch — used to exercise the registry end to end: cmd/shellctl
// pre-registers them, cmd/shellexplorer uses them as example content, and
// cmd/shellexplorer's tests build on them as worked examples. They play the
// same role here that the User/Foo/Bar test fixtures play in
// original_source's own registry tests.
package demo

import (
	"fmt"
	"time"

	"github.com/joshuapare/shellkit/class"
	"github.com/joshuapare/shellkit/value"
)

// Register installs every demo class into host.
func Register(host *class.Host) error {
	for _, d := range []*class.Descriptor{
		counterDescriptor(),
		greeterDescriptor(),
		stopwatchDescriptor(),
	} {
		if err := host.Register(d); err != nil {
			return err
		}
	}
	return nil
}

// Counter is a mutable integer cell with increment/reset methods
// and a "value" attribute.
type Counter struct {
	n int64
}

func counterDescriptor() *class.Descriptor {
	typeID := counterTypeID
	d := &class.Descriptor{
		Name:   "Counter",
		FQName: "demo.Counter",
		TypeID: typeID,
		Attributes: map[string]class.Attribute{
			"value": {Get: func(inst *class.Instance) (value.Value, error) {
				c, _ := class.Downcast[*Counter](inst, typeID)
				return value.NewInteger(c.n), nil
			}},
		},
		Methods: map[string]class.Method{
			"increment": {
				ParamTypes: []string{"int"},
				Invoke: func(inst *class.Instance, args []value.Value) (value.Value, error) {
					c, _ := class.Downcast[*Counter](inst, typeID)
					n, _ := args[0].Integer()
					c.n += n
					return value.NewInteger(c.n), nil
				},
			},
			"reset": {
				Invoke: func(inst *class.Instance, _ []value.Value) (value.Value, error) {
					c, _ := class.Downcast[*Counter](inst, typeID)
					c.n = 0
					return value.NewInteger(0), nil
				},
			},
		},
	}
	d.Constructor = &class.Constructor{
		ParamTypes: []string{"int"},
		Invoke: func(args []value.Value) (*class.Instance, error) {
			start, _ := args[0].Integer()
			return class.NewInstance(d, &Counter{n: start}), nil
		},
	}
	return d
}

var counterTypeID = new(int)

// Greeter formats a greeting from a held name.
type Greeter struct {
	name string
}

func greeterDescriptor() *class.Descriptor {
	typeID := greeterTypeID
	d := &class.Descriptor{
		Name:   "Greeter",
		FQName: "demo.Greeter",
		TypeID: typeID,
		Attributes: map[string]class.Attribute{
			"name": {Get: func(inst *class.Instance) (value.Value, error) {
				g, _ := class.Downcast[*Greeter](inst, typeID)
				return value.NewString(g.name), nil
			}},
		},
		Methods: map[string]class.Method{
			"greet": {
				ParamTypes: []string{"string"},
				Invoke: func(inst *class.Instance, args []value.Value) (value.Value, error) {
					g, _ := class.Downcast[*Greeter](inst, typeID)
					salutation, _ := args[0].String()
					return value.NewString(fmt.Sprintf("%s, %s!", salutation, g.name)), nil
				},
			},
		},
	}
	d.Constructor = &class.Constructor{
		ParamTypes: []string{"string"},
		Invoke: func(args []value.Value) (*class.Instance, error) {
			name, _ := args[0].String()
			return class.NewInstance(d, &Greeter{name: name}), nil
		},
	}
	return d
}

var greeterTypeID = new(int)

// Stopwatch measures elapsed wall-clock time between start and stop.
type Stopwatch struct {
	started time.Time
	stopped time.Time
	running bool
}

func stopwatchDescriptor() *class.Descriptor {
	typeID := stopwatchTypeID
	d := &class.Descriptor{
		Name:   "Stopwatch",
		FQName: "demo.Stopwatch",
		TypeID: typeID,
		Attributes: map[string]class.Attribute{
			"running": {Get: func(inst *class.Instance) (value.Value, error) {
				s, _ := class.Downcast[*Stopwatch](inst, typeID)
				return value.NewBoolean(s.running), nil
			}},
			"elapsed_ms": {Get: func(inst *class.Instance) (value.Value, error) {
				s, _ := class.Downcast[*Stopwatch](inst, typeID)
				end := s.stopped
				if s.running {
					end = time.Now()
				}
				return value.NewInteger(end.Sub(s.started).Milliseconds()), nil
			}},
		},
		Methods: map[string]class.Method{
			"start": {
				Invoke: func(inst *class.Instance, _ []value.Value) (value.Value, error) {
					s, _ := class.Downcast[*Stopwatch](inst, typeID)
					s.started = time.Now()
					s.running = true
					return value.NewBoolean(true), nil
				},
			},
			"stop": {
				Invoke: func(inst *class.Instance, _ []value.Value) (value.Value, error) {
					s, _ := class.Downcast[*Stopwatch](inst, typeID)
					s.stopped = time.Now()
					s.running = false
					return value.NewBoolean(true), nil
				},
			},
		},
	}
	d.Constructor = &class.Constructor{
		ParamTypes: nil,
		Invoke: func(_ []value.Value) (*class.Instance, error) {
			return class.NewInstance(d, &Stopwatch{}), nil
		},
	}
	return d
}

var stopwatchTypeID = new(int)
