package config

import "strings"

// Identity is the no-op mapper: it answers every resolution with the current
// value unchanged, regardless of context contents. It is used for property
// names that have no registered mapping.
var Identity = &Mapper{identity: true, category: CategoryGeneral}

// Mapper resolves the effective value of one logical configuration property
// by consulting, in order: an explicit value for its source key, the value of
// a dependent property, and a static default, falling back to the value the
// caller already knows. Mappers are immutable after Build and hold no
// per-call state, so they may be used concurrently without coordination.
type Mapper struct {
	from           string
	to             string
	defaultValue   string
	transform      Transformer
	mapFrom        string
	buildTime      bool
	description    string
	mask           bool
	expectedValues []string
	category       Category
	paramLabel     string
	hidden         bool
	identity       bool
}

// Resolve produces the effective value for name.
//
// name is the property the caller was asked about; when empty it defaults to
// the mapper's source key. ctx resolves raw values for other keys. current is
// the value already known for the target property from a previous layer; it
// is the ultimate fallback. A nil result means no source produced a value and
// current (itself possibly nil) stands unchanged.
func (m *Mapper) Resolve(name string, ctx Context, current *Value) *Value {
	if m.identity {
		return current
	}

	if name == "" {
		name = m.from
	}

	from := m.from

	if strings.HasSuffix(m.to, ".") {
		// Mapping is based on prefixes instead of full property names: swap
		// the target prefix of the requested name for our own source prefix,
		// keeping the concrete suffix.
		toPrefix := m.to[:strings.LastIndex(m.to, ".")]
		fromPrefix := m.from[:strings.LastIndex(m.from, ".")]
		from = strings.Replace(name, toPrefix, fromPrefix, 1)
	}

	found := ctx.Lookup(from)
	if found == nil {
		if m.mapFrom != "" {
			// The property depends on another one: feed that property's
			// value through the transformer instead.
			if parent := ctx.Lookup(NSRoot + "." + m.mapFrom); parent != nil {
				if value := m.transformValue(parent.Value, ctx); value != nil {
					return value
				}
			}
		}

		return m.resolveDefault(ctx, current)
	}

	if m.mapFrom != "" {
		// A mapper that is itself the target of another mapping returns its
		// direct value verbatim: the value was already transformed when it
		// was produced under the mapper that owns mapFrom.
		return found
	}

	if found.Name == name {
		// Direct, unmapped hit: no rewrite of the reported name.
		return found
	}

	if value := m.transformValue(found.Value, ctx); value != nil {
		return value
	}

	// Transform vetoed the found value; the current value stands.
	return current
}

// resolveDefault applies the defaulting rules once neither the source key nor
// a dependency produced a value.
func (m *Mapper) resolveDefault(ctx Context, current *Value) *Value {
	if m.defaultValue == "" || (current != nil && current.ExplicitlySet()) {
		if m.defaultValue == "" && m.transform != nil {
			// No static default: let the transformer normalize whatever the
			// current value carries.
			var raw string
			if current != nil {
				raw = current.Value
			}

			mapped, ok := m.transform(raw, ctx)
			if !ok {
				return current
			}

			return &Value{Name: m.to, Value: mapped}
		}

		return current
	}

	if m.transform != nil {
		return m.transformValue(m.defaultValue, ctx)
	}

	return &Value{Name: m.to, Value: m.defaultValue}
}

// transformValue runs the transformer over value and labels the result with
// the target key. A nil result means the transformer yielded no value.
func (m *Mapper) transformValue(value string, ctx Context) *Value {
	if m.transform == nil {
		return &Value{Name: m.to, Value: value}
	}

	mapped, ok := m.transform(value, ctx)
	if !ok {
		return nil
	}

	return &Value{Name: m.to, Value: mapped}
}

// From returns the fully-qualified source key.
func (m *Mapper) From() string {
	return m.from
}

// To returns the fully-qualified target key the resolved value is reported
// under.
func (m *Mapper) To() string {
	return m.to
}

// DefaultValue returns the static default, or the empty string when none is
// configured.
func (m *Mapper) DefaultValue() string {
	return m.defaultValue
}

// Description returns the human-readable property description.
func (m *Mapper) Description() string {
	return m.description
}

// ExpectedValues returns the documented set of accepted values. The mapper
// does not enforce them.
func (m *Mapper) ExpectedValues() []string {
	return m.expectedValues
}

// Category returns the property's grouping category.
func (m *Mapper) Category() Category {
	return m.category
}

// ParamLabel returns the presentation label for the property's value.
func (m *Mapper) ParamLabel() string {
	return m.paramLabel
}

// BuildTime reports whether the property only applies at build time.
func (m *Mapper) BuildTime() bool {
	return m.buildTime
}

// Masked reports whether the property's value must be redacted when
// rendered. Masking itself happens at the rendering edge, not here.
func (m *Mapper) Masked() bool {
	return m.mask
}

// Hidden reports whether the property is excluded from user-facing listings.
func (m *Mapper) Hidden() bool {
	return m.hidden
}
