package value_test

import (
	"testing"

	"github.com/joshuapare/shellkit/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInstance struct {
	short, fq string
	id        int
}

func (f fakeInstance) ClassTag() (string, string) { return f.short, f.fq }
func (f fakeInstance) Identity() any              { return f.id }

func TestTypeTag(t *testing.T) {
	cases := []struct {
		name      string
		v         value.Value
		short, fq string
	}{
		{"bool", value.NewBoolean(true), "bool", "boolean"},
		{"int", value.NewInteger(7), "int", "integer"},
		{"float", value.NewFloat(1.5), "float", "float"},
		{"string", value.NewString("x"), "string", "string"},
		{"list", value.NewList(nil), "list", "vec"},
		{"map", value.NewMap(nil, nil), "map", "dict"},
		{"instance", value.NewInstance(fakeInstance{short: "User", fq: "demo.User", id: 1}), "User", "demo.User"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			short, fq := tc.v.TypeTag()
			assert.Equal(t, tc.short, short)
			assert.Equal(t, tc.fq, fq)
		})
	}
}

func TestEqualStructural(t *testing.T) {
	assert.True(t, value.NewInteger(4).Equal(value.NewInteger(4)))
	assert.False(t, value.NewInteger(4).Equal(value.NewInteger(5)))
	assert.False(t, value.NewInteger(4).Equal(value.NewFloat(4)))

	l1 := value.NewList([]value.Value{value.NewString("a"), value.NewInteger(1)})
	l2 := value.NewList([]value.Value{value.NewString("a"), value.NewInteger(1)})
	l3 := value.NewList([]value.Value{value.NewString("a"), value.NewInteger(2)})
	assert.True(t, l1.Equal(l2))
	assert.False(t, l1.Equal(l3))

	m1 := value.NewMap([]string{"k"}, []value.Value{value.NewInteger(1)})
	m2 := value.NewMap([]string{"k"}, []value.Value{value.NewInteger(1)})
	assert.True(t, m1.Equal(m2))
}

func TestEqualInstanceIsIdentity(t *testing.T) {
	a := value.NewInstance(fakeInstance{short: "User", fq: "demo.User", id: 1})
	b := value.NewInstance(fakeInstance{short: "User", fq: "demo.User", id: 1})
	c := value.NewInstance(fakeInstance{short: "User", fq: "demo.User", id: 2})
	assert.True(t, a.Equal(b), "same identity compares equal even as distinct handles")
	assert.False(t, a.Equal(c))
}

func TestParseInt32RejectsOverflow(t *testing.T) {
	_, err := value.ParseInt32("99999999999")
	require.Error(t, err)
}

func TestParseBoolAndFloat(t *testing.T) {
	b, err := value.ParseBool("true")
	require.NoError(t, err)
	got, _ := b.Boolean()
	assert.True(t, got)

	f, err := value.ParseFloat64("3.5")
	require.NoError(t, err)
	gf, _ := f.Float()
	assert.Equal(t, 3.5, gf)
}

func TestMapPreservesFirstInsertionOrder(t *testing.T) {
	m := value.NewMap([]string{"b", "a", "b"}, []value.Value{
		value.NewInteger(1), value.NewInteger(2), value.NewInteger(3),
	})
	keys, backing, ok := m.Map()
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, keys)
	v, _ := backing["b"].Integer()
	assert.Equal(t, int64(3), v, "later assignment to an existing key overwrites the value")
}
