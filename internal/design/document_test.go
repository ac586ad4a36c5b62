package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Document
	}{
		{
			name: "plain json",
			raw:  `{"designType":"logo","title":"Acme"}`,
			want: Document{"designType": "logo", "title": "Acme"},
		},
		{
			name: "json code fence",
			raw:  "```json\n{\"title\":\"Acme\"}\n```",
			want: Document{"title": "Acme"},
		},
		{
			name: "bare code fence",
			raw:  "```\n{\"title\":\"Acme\"}\n```",
			want: Document{"title": "Acme"},
		},
		{
			name: "prose around the object",
			raw:  "Here is your design:\n{\"title\":\"Acme\"}\nHope you like it!",
			want: Document{"title": "Acme"},
		},
		{
			name: "surrounding whitespace",
			raw:  "  \n\t{\"title\":\"Acme\"}\n  ",
			want: Document{"title": "Acme"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseDocument(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseDocumentEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\t", "```json\n```"} {
		_, err := parseDocument(raw)
		assert.ErrorIs(t, err, ErrEmptyResponse, "raw %q", raw)
	}
}

func TestParseDocumentMalformed(t *testing.T) {
	for _, raw := range []string{`{"title": }`, `{"a":1,}`, "{broken"} {
		_, err := parseDocument(raw)
		assert.ErrorIs(t, err, ErrMalformedResponse, "raw %q", raw)
	}
}
