package env

import (
	"strings"
)

// DefaultPrefix selects the environment variables this loader picks up.
const DefaultPrefix = "KC_"

// Parse maps environment entries to property keys. Variables carrying the
// prefix are translated by lowercasing and replacing underscores with the
// key separator: KC_DB_URL becomes kc.db-url. Entries without the prefix are
// ignored.
func Parse(environ []string, prefix string) map[string]string {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	values := map[string]string{}

	for _, entry := range environ {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(name, prefix) {
			continue
		}

		values[keyFor(name, prefix)] = value
	}

	return values
}

// keyFor translates KC_DB_URL into kc.db-url: the prefix becomes the
// namespace segment, the rest joins with dashes.
func keyFor(name, prefix string) string {
	ns := strings.ToLower(strings.TrimSuffix(prefix, "_"))
	rest := strings.TrimPrefix(name, prefix)

	return ns + "." + strings.ReplaceAll(strings.ToLower(rest), "_", "-")
}
