package shell

import (
	"strconv"
	"strings"

	"github.com/joshuapare/shellkit/value"
)

// FormatValue renders v in the shell's wire serialization format: scalars
// print bare (strings quoted), lists as `[v,v,...]`, and maps/instances as
// `{{"key":v,...}}`. It is exported so other front ends (the TUI explorer's
// detail pane, in particular) can reuse the exact same rendering the `execute`
// built-in writes to a script's output.
func FormatValue(v value.Value) string {
	var b strings.Builder
	formatValueInto(&b, v)
	return b.String()
}

func formatValueInto(b *strings.Builder, v value.Value) {
	switch v.Kind() {
	case value.KindInteger:
		i, _ := v.Integer()
		b.WriteString(strconv.FormatInt(i, 10))
	case value.KindFloat:
		f, _ := v.Float()
		b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	case value.KindBoolean:
		bv, _ := v.Boolean()
		b.WriteString(strconv.FormatBool(bv))
	case value.KindString:
		s, _ := v.String()
		b.WriteByte('"')
		b.WriteString(s)
		b.WriteByte('"')
	case value.KindList:
		items, _ := v.List()
		b.WriteByte('[')
		for i, item := range items {
			if i != 0 {
				b.WriteByte(',')
			}
			formatValueInto(b, item)
		}
		b.WriteByte(']')
	case value.KindMap:
		keys, m, _ := v.Map()
		b.WriteString("{{")
		for i, k := range keys {
			if i != 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(k)
			b.WriteString(`":`)
			formatValueInto(b, m[k])
		}
		b.WriteString("}}")
	case value.KindInstance:
		formatInstanceInto(b, v)
	}
}

func formatInstanceInto(b *strings.Builder, v value.Value) {
	inst, _ := v.Instance()
	attrInst, ok := inst.(attributeReader)
	if !ok {
		short, _ := v.TypeTag()
		b.WriteByte('"')
		b.WriteString(short)
		b.WriteByte('"')
		return
	}

	names := attrInst.AttributeNames()
	b.WriteString("{{")
	for i, name := range names {
		if i != 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(name)
		b.WriteString(`":`)
		attrVal, err := attrInst.GetAttr(name)
		if err != nil {
			b.WriteString(`"<error>"`)
			continue
		}
		formatValueInto(b, attrVal)
	}
	b.WriteString("}}")
}
