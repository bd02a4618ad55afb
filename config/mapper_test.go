package config_test

import (
	"strings"
	"testing"

	"github.com/pbarbashov/keycloak/config"

	"github.com/stretchr/testify/require"
)

// fakeContext is a flat key/value lookup standing in for the layered store.
type fakeContext map[string]config.Value

func (c fakeContext) Lookup(key string) *config.Value {
	value, ok := c[key]
	if !ok {
		return nil
	}

	return &value
}

// ctxWith builds a context where every value is explicitly set by a layer
// named "test".
func ctxWith(values map[string]string) fakeContext {
	ctx := fakeContext{}

	for key, value := range values {
		ctx[key] = config.Value{Name: key, Value: value, Source: "test"}
	}

	return ctx
}

func upper(value string, _ config.Context) (string, bool) {
	return strings.ToUpper(value), true
}

func veto(_ string, _ config.Context) (string, bool) {
	return "", false
}

func TestResolve_DirectValueUnchanged(t *testing.T) {
	t.Parallel()

	mapper := config.NewBuilder("db-url", "").Build()
	ctx := ctxWith(map[string]string{"kc.db-url": "jdbc:postgresql://localhost/kc"})

	value := mapper.Resolve("kc.db-url", ctx, nil)

	require.NotNil(t, value)
	require.Equal(t, "kc.db-url", value.Name)
	require.Equal(t, "jdbc:postgresql://localhost/kc", value.Value)
	require.Equal(t, "test", value.Source, "direct hit must keep its source layer")
}

func TestResolve_EmptyNameDefaultsToSourceKey(t *testing.T) {
	t.Parallel()

	mapper := config.NewBuilder("db-url", "").Transformer(upper).Build()
	ctx := ctxWith(map[string]string{"kc.db-url": "jdbc"})

	value := mapper.Resolve("", ctx, nil)

	require.NotNil(t, value)
	require.Equal(t, "jdbc", value.Value, "exact match must skip the transformer")
	require.Equal(t, "kc.db-url", value.Name)
}

func TestResolve_MappedName_AppliesTransformer(t *testing.T) {
	t.Parallel()

	mapper := config.NewBuilder("db", "quarkus.datasource.db-kind").
		Transformer(func(value string, _ config.Context) (string, bool) {
			if value == "postgres" {
				return "postgresql", true
			}

			return value, true
		}).
		Build()
	ctx := ctxWith(map[string]string{"kc.db": "postgres"})

	value := mapper.Resolve("quarkus.datasource.db-kind", ctx, nil)

	require.NotNil(t, value)
	require.Equal(t, "quarkus.datasource.db-kind", value.Name)
	require.Equal(t, "postgresql", value.Value)
}

func TestResolve_TransformerVeto_FallsBackToCurrent(t *testing.T) {
	t.Parallel()

	mapper := config.NewBuilder("proxy", "quarkus.http.proxy").
		Transformer(veto).
		Build()
	ctx := ctxWith(map[string]string{"kc.proxy": "none"})
	current := &config.Value{Name: "quarkus.http.proxy", Value: "edge", Source: "test"}

	value := mapper.Resolve("quarkus.http.proxy", ctx, current)

	require.Same(t, current, value, "vetoed value must leave the current value standing")
}

// A mapper that is itself chained from another mapped property returns its
// direct value verbatim, transformer skipped; only the dependency-chasing
// path applies the transformer. The two paths are deliberately asymmetric.
func TestResolve_MapFrom(t *testing.T) {
	t.Parallel()

	t.Run("direct value short-circuits the transformer", func(t *testing.T) {
		t.Parallel()

		mapper := config.NewBuilder("hostname-strict", "").
			MapFrom("hostname").
			Transformer(upper).
			Build()
		ctx := ctxWith(map[string]string{"kc.hostname-strict": "false"})

		value := mapper.Resolve("kc.hostname-strict", ctx, nil)

		require.NotNil(t, value)
		require.Equal(t, "false", value.Value)
	})

	t.Run("absent value chases the dependency through the transformer", func(t *testing.T) {
		t.Parallel()

		mapper := config.NewBuilder("foo", "").
			MapFrom("other").
			Transformer(upper).
			Build()
		ctx := ctxWith(map[string]string{"kc.other": "hi"})

		value := mapper.Resolve("", ctx, nil)

		require.NotNil(t, value)
		require.Equal(t, "kc.foo", value.Name)
		require.Equal(t, "HI", value.Value)
	})

	t.Run("vetoed dependency falls through to the default", func(t *testing.T) {
		t.Parallel()

		mapper := config.NewBuilder("foo", "").
			MapFrom("other").
			Transformer(veto).
			Build()
		ctx := ctxWith(map[string]string{"kc.other": "hi"})

		value := mapper.Resolve("", ctx, nil)

		require.Nil(t, value, "no default and no current value resolves to no value")
	})

	t.Run("absent dependency resolves like any unset property", func(t *testing.T) {
		t.Parallel()

		mapper := config.NewBuilder("foo", "").
			MapFrom("other").
			DefaultValue("fallback").
			Build()

		value := mapper.Resolve("", fakeContext{}, nil)

		require.NotNil(t, value)
		require.Equal(t, "fallback", value.Value)
	})
}

func TestResolve_Defaulting(t *testing.T) {
	t.Parallel()

	t.Run("static default under the target name", func(t *testing.T) {
		t.Parallel()

		mapper := config.NewBuilder("foo", "bar").DefaultValue("baz").Build()

		value := mapper.Resolve("", fakeContext{}, nil)

		require.NotNil(t, value)
		require.Equal(t, "bar", value.Name)
		require.Equal(t, "baz", value.Value)
	})

	t.Run("static default runs through the transformer", func(t *testing.T) {
		t.Parallel()

		mapper := config.NewBuilder("foo", "bar").
			DefaultValue("baz").
			Transformer(upper).
			Build()

		value := mapper.Resolve("", fakeContext{}, nil)

		require.NotNil(t, value)
		require.Equal(t, "BAZ", value.Value)
	})

	t.Run("explicitly set current value wins over the default", func(t *testing.T) {
		t.Parallel()

		mapper := config.NewBuilder("foo", "bar").DefaultValue("baz").Build()
		current := &config.Value{Name: "bar", Value: "kept", Source: "env"}

		value := mapper.Resolve("", fakeContext{}, current)

		require.Same(t, current, value)
	})

	t.Run("default wins over a default-sourced current value", func(t *testing.T) {
		t.Parallel()

		mapper := config.NewBuilder("foo", "bar").DefaultValue("baz").Build()
		current := &config.Value{Name: "bar", Value: "stale", Source: config.SourceDefaultValues}

		value := mapper.Resolve("", fakeContext{}, current)

		require.NotNil(t, value)
		require.Equal(t, "baz", value.Value)
	})

	t.Run("no default lets the transformer normalize the current value", func(t *testing.T) {
		t.Parallel()

		mapper := config.NewBuilder("foo", "bar").Transformer(upper).Build()
		current := &config.Value{Name: "bar", Value: "inherited", Source: config.SourceDefaultValues}

		value := mapper.Resolve("", fakeContext{}, current)

		require.NotNil(t, value)
		require.Equal(t, "bar", value.Name)
		require.Equal(t, "INHERITED", value.Value)
	})

	t.Run("nothing configured returns the current value unchanged", func(t *testing.T) {
		t.Parallel()

		mapper := config.NewBuilder("foo", "bar").Build()
		current := &config.Value{Name: "bar", Value: "kept", Source: "cli"}

		value := mapper.Resolve("", fakeContext{}, current)

		require.Same(t, current, value)
	})

	t.Run("nothing configured and no current value resolves to no value", func(t *testing.T) {
		t.Parallel()

		mapper := config.NewBuilder("foo", "bar").Build()

		value := mapper.Resolve("", fakeContext{}, nil)

		require.Nil(t, value)
	})
}

func TestResolve_PrefixMapping(t *testing.T) {
	t.Parallel()

	mapper := config.NewBuilder("log.", "quarkus.log.").Build()
	ctx := ctxWith(map[string]string{"kc.log.category.level": "debug"})

	value := mapper.Resolve("quarkus.log.category.level", ctx, nil)

	require.NotNil(t, value)
	require.Equal(t, "debug", value.Value,
		"the requested suffix must be preserved when substituting the source prefix")
}

func TestResolve_PrefixMapping_MissesUnrelatedKey(t *testing.T) {
	t.Parallel()

	mapper := config.NewBuilder("log.", "quarkus.log.").Build()
	ctx := ctxWith(map[string]string{"kc.log.other": "x"})

	value := mapper.Resolve("quarkus.log.category.level", ctx, nil)

	require.Nil(t, value)
}

func TestResolve_Identity(t *testing.T) {
	t.Parallel()

	ctx := ctxWith(map[string]string{"kc.anything": "ignored"})
	current := &config.Value{Name: "kc.anything", Value: "kept", Source: "test"}

	require.Same(t, current, config.Identity.Resolve("kc.anything", ctx, current))
	require.Nil(t, config.Identity.Resolve("kc.anything", ctx, nil))
}
