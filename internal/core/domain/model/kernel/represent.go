package kernel

import (
	"fmt"
	"hash/fnv"
	"io"
	"strconv"
	"strings"
)

// Field is one named attribute of a value-object variant. Each variant
// declares its field list once, in declaration order, and that same list
// drives representation synthesis and hashing. This replaces any kind of
// runtime attribute probing: when a new variant is added, its field list is
// fixed at definition time.
type Field struct {
	Name  string
	Value any
}

// Represent renders the canonical debug representation of a variant:
//
//	VariantName(field1=value1, field2=value2)
//
// String values are quoted and escaped, nested value objects recurse through
// their own String method. The output is a deterministic function of the
// variant name and its field values, structured so the constructor arguments
// of an equivalent instance can be read back from it.
//
// Represent is an explicit, composable step: a variant opts in by calling it
// from its own String method, and overrides it by not calling it. Method
// shadowing in Go makes the outermost explicitly-defined String win, so a
// synthesized representation can never silently bypass a hand-written one or
// the other way around.
func Represent(variant string, fields ...Field) string {
	var b strings.Builder
	b.WriteString(variant)
	b.WriteByte('(')
	for i, f := range fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteByte('=')
		b.WriteString(formatFieldValue(f.Value))
	}
	b.WriteByte(')')
	return b.String()
}

// HashFields combines the variant name and exactly the fields equality uses,
// in the same fixed order, into a 64-bit FNV-1a hash. Equal instances of the
// same variant therefore always hash equally, and the variant name keeps
// identically-shaped variants apart. There is no identity-based fallback.
func HashFields(variant string, fields ...Field) uint64 {
	h := fnv.New64a()
	write := func(s string) {
		io.WriteString(h, s) //nolint:errcheck // fnv never fails
	}

	write(variant)
	for _, f := range fields {
		write("\x1f")
		write(f.Name)
		write("=")
		write(formatFieldValue(f.Value))
	}
	return h.Sum64()
}

func formatFieldValue(v any) string {
	switch value := v.(type) {
	case fmt.Stringer:
		return value.String()
	case string:
		return strconv.Quote(value)
	case float64:
		return strconv.FormatFloat(value, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", value)
	}
}
