package config

// Builder accumulates construction parameters for a Mapper through chained
// setters. It performs no validation: inconsistent parameters (for example a
// dependency key that never resolves) are a configuration-authoring error,
// not a builder error.
type Builder struct {
	from           string
	to             string
	defaultValue   string
	transform      Transformer
	description    string
	mapFrom        string
	expectedValues []string
	buildTime      bool
	mask           bool
	category       Category
	paramLabel     string
	hidden         bool
}

// NewBuilder starts a builder for a mapping from the short source property
// name to the fully-qualified target key.
func NewBuilder(from, to string) *Builder {
	return &Builder{from: from, to: to, category: CategoryGeneral}
}

// NewBuilderFor starts a builder for a property in the given category.
func NewBuilderFor(category Category) *Builder {
	return &Builder{category: category}
}

// From sets the short source property name.
func (b *Builder) From(from string) *Builder {
	b.from = from

	return b
}

// To sets the fully-qualified target key.
func (b *Builder) To(to string) *Builder {
	b.to = to

	return b
}

// DefaultValue sets the static default.
func (b *Builder) DefaultValue(value string) *Builder {
	b.defaultValue = value

	return b
}

// Transformer sets the value transformer.
func (b *Builder) Transformer(transform Transformer) *Builder {
	b.transform = transform

	return b
}

// Description sets the human-readable description.
func (b *Builder) Description(description string) *Builder {
	b.description = description

	return b
}

// ParamLabel sets the presentation label for the property's value.
func (b *Builder) ParamLabel(label string) *Builder {
	b.paramLabel = label

	return b
}

// MapFrom sets the short name of the property this one depends on. When the
// source key has no explicit value, the dependency's value is fed through the
// transformer instead.
func (b *Builder) MapFrom(mapFrom string) *Builder {
	b.mapFrom = mapFrom

	return b
}

// ExpectedValues sets the documented set of accepted values.
func (b *Builder) ExpectedValues(values ...string) *Builder {
	b.expectedValues = values

	return b
}

// BuildTimeProperty marks the property as only applying at build time.
func (b *Builder) BuildTimeProperty(buildTime bool) *Builder {
	b.buildTime = buildTime

	return b
}

// Masked marks the property's value for redaction when rendered.
func (b *Builder) Masked(mask bool) *Builder {
	b.mask = mask

	return b
}

// Category sets the grouping category.
func (b *Builder) Category(category Category) *Builder {
	b.category = category

	return b
}

// Hidden excludes the property from user-facing listings.
func (b *Builder) Hidden(hidden bool) *Builder {
	b.hidden = hidden

	return b
}

// BooleanType seeds the builder for a boolean-valued property: expected
// values true/false, a true|false param label, and a false default. Values
// already set explicitly are left untouched.
func (b *Builder) BooleanType() *Builder {
	if len(b.expectedValues) == 0 {
		b.expectedValues = []string{"true", "false"}
	}

	if b.paramLabel == "" {
		if b.defaultValue != "" {
			b.paramLabel = b.defaultValue
		} else {
			b.paramLabel = "true|false"
		}
	}

	if b.defaultValue == "" {
		b.defaultValue = "false"
	}

	return b
}

// Build produces the immutable Mapper. The source key is namespaced here,
// once; the target key falls back to the namespaced source key when unset.
func (b *Builder) Build() *Mapper {
	from := NSPrefix + b.from

	to := b.to
	if to == "" {
		to = from
	}

	category := b.category
	if category == "" {
		category = CategoryGeneral
	}

	return &Mapper{
		from:           from,
		to:             to,
		defaultValue:   b.defaultValue,
		transform:      b.transform,
		mapFrom:        b.mapFrom,
		buildTime:      b.buildTime,
		description:    b.description,
		mask:           b.mask,
		expectedValues: b.expectedValues,
		category:       category,
		paramLabel:     b.paramLabel,
		hidden:         b.hidden,
	}
}
