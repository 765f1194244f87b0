package promreg

import "sync/atomic"

// Registration carries inherited name-prefix and attribute state into
// nested registration routines. It is produced by the registry for the
// outermost call; components narrow it with NamePrefix/BaseAttr and hand
// Child copies to their sub-components so the narrowing does not leak back.
type Registration struct {
	registry   *Registry
	prefix     string
	attributes []Attribute
}

// NamePrefix narrows the context by one prefix segment. Segments
// concatenate with "_" in context order, so narrowing an already-prefixed
// context extends the chain rather than replacing it.
func (reg *Registration) NamePrefix(segment string) *Registration {
	reg.prefix = joinPrefix(reg.prefix, segment)
	return reg
}

// BaseAttr appends an attribute inherited by every metric declared under
// this context, directly or through children.
func (reg *Registration) BaseAttr(key, value string) *Registration {
	reg.attributes = append(reg.attributes, Attribute{Key: key, Value: value})
	return reg
}

// Child returns an independent copy of the current prefix and attribute
// state, for passing into a nested component's registration routine.
func (reg *Registration) Child() *Registration {
	return &Registration{
		registry:   reg.registry,
		prefix:     reg.prefix,
		attributes: cloneAttributes(reg.attributes),
	}
}

// Group opens a declaration group scoped to the context prefix joined with
// the extra segment, and to the context attributes. An empty segment opens
// an unnamed group, used when metrics need no extra grouping level.
//
// The group commits on Done; either defer it or call it as the terminal
// link of the declaration chain.
func (reg *Registration) Group(prefix string) *Group {
	return &Group{
		registry:   reg.registry,
		prefix:     joinPrefix(reg.prefix, prefix),
		attributes: cloneAttributes(reg.attributes),
	}
}

// Count declares a single counter under the context prefix and commits it
// immediately. Use Group when attributes or several metrics are involved.
func (reg *Registration) Count(name string, c *Counter) {
	reg.Group("").Count(name, c).Done()
}

// Gauge declares a single gauge under the context prefix and commits it
// immediately.
func (reg *Registration) Gauge(name string, g *Gauge) {
	reg.Group("").Gauge(name, g).Done()
}

// Group is a scope-bound declaration buffer. Declarations accumulate with
// empty attributes; Done stamps every pending declaration with the full
// attribute chain and commits them to the registry, which is what allows
// Attr to be called after the declarations it applies to.
type Group struct {
	registry   *Registry
	prefix     string
	attributes []Attribute
	pending    []registeredMetric
	done       bool
}

// Attr appends an attribute applied to every metric declared in this
// group, regardless of ordering between Attr and the declarations.
func (g *Group) Attr(key, value string) *Group {
	g.attributes = append(g.attributes, Attribute{Key: key, Value: value})
	return g
}

// Count declares a counter named by the group prefix joined with name.
func (g *Group) Count(name string, c *Counter) *Group {
	return g.metric(KindCounter, name, &c.v)
}

// Gauge declares a gauge named by the group prefix joined with name.
func (g *Group) Gauge(name string, v *Gauge) *Group {
	return g.metric(KindGauge, name, &v.v)
}

func (g *Group) metric(kind Kind, name string, value *atomic.Uint64) *Group {
	g.pending = append(g.pending, registeredMetric{
		kind:  kind,
		name:  joinPrefix(g.prefix, name),
		value: value,
	})
	return g
}

// Done stamps the attribute chain onto every pending declaration and
// commits them; the registry list is then re-sorted by (name, kind).
// Calling Done more than once is a no-op.
func (g *Group) Done() {
	if g == nil || g.done {
		return
	}
	g.done = true
	for i := range g.pending {
		g.pending[i].attributes = cloneAttributes(g.attributes)
	}
	g.registry.commit(g.pending)
	g.pending = nil
}

func joinPrefix(prefix, name string) string {
	switch {
	case prefix == "":
		return name
	case name == "":
		return prefix
	default:
		return prefix + "_" + name
	}
}
