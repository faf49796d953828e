package rest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTemplate(t *testing.T) {
	tests := []struct {
		name     string
		template string
		params   []any
		expected string
	}{
		{
			name:     "path placeholders",
			template: "/servers/{0}/users/{1}/connections/{2}",
			params:   []any{"cocoMDS1", "erinoverview", "c-1"},
			expected: "/servers/cocoMDS1/users/erinoverview/connections/c-1",
		},
		{
			name:     "query placeholders",
			template: "/servers/{0}/users/{1}/connections/by-search-string?startFrom={2}&pageSize={3}",
			params:   []any{"cocoMDS1", "erinoverview", 0, 50},
			expected: "/servers/cocoMDS1/users/erinoverview/connections/by-search-string?startFrom=0&pageSize=50",
		},
		{
			name:     "path value is path escaped",
			template: "/servers/{0}/users/{1}/things/{2}",
			params:   []any{"s", "u", "a b/c"},
			expected: "/servers/s/users/u/things/a%20b%2Fc",
		},
		{
			name:     "query value is query escaped",
			template: "/servers/{0}/users/{1}/things?propertyName={2}",
			params:   []any{"s", "u", "a b&c"},
			expected: "/servers/s/users/u/things?propertyName=a+b%26c",
		},
		{
			name:     "booleans",
			template: "/servers/{0}/users/{1}/things/{2}/update?isMergeUpdate={3}",
			params:   []any{"s", "u", "g", true},
			expected: "/servers/s/users/u/things/g/update?isMergeUpdate=true",
		},
		{
			name:     "placeholders out of order",
			template: "/{1}/{0}",
			params:   []any{"a", "b"},
			expected: "/b/a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExpandTemplate(tt.template, tt.params...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestExpandTemplateErrors(t *testing.T) {
	_, err := ExpandTemplate("/servers/{0}/users/{1}", "only-server")
	assert.ErrorContains(t, err, "no parameter for placeholder {1}")

	_, err = ExpandTemplate("/servers/{0", "s")
	assert.ErrorContains(t, err, "unterminated")

	_, err = ExpandTemplate("/servers/{zero}", "s")
	assert.ErrorContains(t, err, "malformed")
}

func BenchmarkExpandTemplate(b *testing.B) {
	const template = "/servers/{0}/open-metadata/access-services/digital-architecture/users/{1}/connections/by-search-string?startFrom={2}&pageSize={3}"
	for i := 0; i < b.N; i++ {
		_, _ = ExpandTemplate(template, "cocoMDS1", "erinoverview", 0, 50)
	}
}
