package promreg

import (
	"io"
	"strconv"
	"strings"
)

// Render produces the text exposition of every registered metric.
//
// The sort invariant guarantees entries with the same (name, kind) are
// contiguous; each such run is preceded by one HELP line (no description
// text) and one TYPE line, followed by one sample line per entry. Samples
// with no attributes render without a label block. An empty registry
// renders an empty string.
func (r *Registry) Render() string {
	var b strings.Builder
	b.Grow(64 * len(r.metrics))

	lastName := ""
	lastKind := Kind(0)
	first := true

	for _, m := range r.metrics {
		if first || m.name != lastName || m.kind != lastKind {
			b.WriteString("# HELP ")
			b.WriteString(m.name)
			b.WriteByte('\n')
			b.WriteString("# TYPE ")
			b.WriteString(m.name)
			b.WriteByte(' ')
			b.WriteString(m.kind.String())
			b.WriteByte('\n')
			lastName, lastKind, first = m.name, m.kind, false
		}

		b.WriteString(m.name)
		writeAttributes(&b, m.attributes)
		b.WriteByte(' ')
		b.WriteString(strconv.FormatUint(m.value.Load(), 10))
		b.WriteByte('\n')
	}

	return b.String()
}

// String implements fmt.Stringer.
func (r *Registry) String() string { return r.Render() }

// WriteTo writes the rendered exposition to w.
func (r *Registry) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.Render())
	return int64(n), err
}

func writeAttributes(b *strings.Builder, attrs []Attribute) {
	if len(attrs) == 0 {
		return
	}
	b.WriteByte('{')
	for i, a := range attrs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(a.Value)
		b.WriteByte('"')
	}
	b.WriteByte('}')
}
