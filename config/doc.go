// Package config resolves effective values for logical configuration
// properties from layered sources.
//
// The central type is Mapper: an immutable description of how one property's
// value is found. For each lookup a mapper consults, in strict order, an
// explicit value for its source key, the value of a dependent ("map from")
// property, and a static default, always falling back to the value the
// caller already knows. An optional Transformer is applied at the point a
// value is found and may veto it, pushing resolution to the next source.
//
// Raw values come from a Context, a one-method interface over the layered
// sources (see config/store for the in-repo implementation). Each value
// carries the name of the layer it came from; the layer named "default
// values" is the process-wide built-in defaults layer, and mappers treat
// values from it as weaker than any explicit setting.
//
// # Prefix mappings
//
// A mapper whose target key ends with a separator ("group.") answers lookups
// for a whole family of concrete names sharing that prefix: the requested
// name's target prefix is swapped for the mapper's own source prefix and the
// concrete suffix is preserved.
//
// # Construction
//
// Mappers are built once at startup through the fluent Builder and invoked
// repeatedly, concurrently, with no mutation:
//
//	mapper := config.NewBuilder("db-url", "quarkus.datasource.jdbc.url").
//		Description("The database JDBC URL.").
//		Category(config.CategoryDatabase).
//		Build()
//
//	value := mapper.Resolve("", store, nil)
package config
