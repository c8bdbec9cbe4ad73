// Package printer renders value.Value in the two textual forms the
// evaluator's print step and the str/pr-str primitives need: Repr (escaped,
// machine-readable) and Readable (raw, human-facing).
package printer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lumen-lang/lumen/internal/value"
)

// Repr renders v the way prn and pr-str do: strings quoted and escaped,
// keywords shown with their leading colon.
func Repr(v value.Value) string {
	b := strings.Builder{}
	write(&b, v, true)
	return b.String()
}

// Readable renders v the way println and str do: strings printed raw,
// keywords still shown with their leading colon.
func Readable(v value.Value) string {
	b := strings.Builder{}
	write(&b, v, false)
	return b.String()
}

func write(b *strings.Builder, v value.Value, repr bool) {
	switch n := v.(type) {
	case value.Int:
		fmt.Fprintf(b, "%d", int64(n))
	case value.Bool:
		if n {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case value.Nil:
		b.WriteString("nil")
	case value.Symbol:
		b.WriteString(string(n))
	case value.String:
		writeString(b, n, repr)
	case value.List:
		writeSeq(b, "(", ")", []value.Value(n), repr)
	case value.Vector:
		writeSeq(b, "[", "]", []value.Value(n), repr)
	case value.HashMap:
		writeHashMap(b, n, repr)
	case *value.Atom:
		b.WriteString("(atom ")
		write(b, n.Value, repr)
		b.WriteString(")")
	case *value.Lambda:
		if n.IsMacro {
			b.WriteString("#<macro>")
		} else {
			b.WriteString("#<function>")
		}
	case value.FunctionPtr:
		fmt.Fprintf(b, "<function %s>", n.Name)
	default:
		b.WriteString("#<unknown>")
	}
}

func writeString(b *strings.Builder, s value.String, repr bool) {
	if value.IsKeyword(s) {
		b.WriteString(":")
		b.WriteString(value.KeywordName(s))
		return
	}

	if !repr {
		b.WriteString(string(s))
		return
	}

	b.WriteByte('"')
	for _, r := range string(s) {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}

func writeSeq(b *strings.Builder, open, close string, items []value.Value, repr bool) {
	b.WriteString(open)
	for i, item := range items {
		if i > 0 {
			b.WriteString(" ")
		}
		write(b, item, repr)
	}
	b.WriteString(close)
}

func writeHashMap(b *strings.Builder, m value.HashMap, repr bool) {
	keys := make([]value.String, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	b.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(" ")
		}
		writeString(b, k, repr)
		b.WriteString(" ")
		write(b, m[k], repr)
	}
	b.WriteString("}")
}
