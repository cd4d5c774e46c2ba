package pairs_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/simplehelpers/pkg/logger"
	"github.com/dmitrymomot/simplehelpers/pkg/pairs"
	"github.com/dmitrymomot/simplehelpers/pkg/validator"
)

func newExtractor(buf *bytes.Buffer) *pairs.Extractor {
	return pairs.NewExtractor(validator.NewChecker(logger.New(logger.WithOutput(buf))), nil)
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		key   string
		opts  []pairs.Option
		want  []string
	}{
		{
			name:  "cookie header",
			input: "foo=bar; baz=qux",
			key:   "foo",
			want:  []string{"bar"},
		},
		{
			name:  "second pair",
			input: "foo=bar; baz=qux",
			key:   "baz",
			want:  []string{"qux"},
		},
		{
			name:  "longer key sharing prefix is not matched",
			input: "foobar=1",
			key:   "foo",
			want:  []string{},
		},
		{
			name:  "duplicates kept in order",
			input: "a=1; b=2; a=3",
			key:   "a",
			want:  []string{"1", "3"},
		},
		{
			name:  "empty value",
			input: "a=; b=2",
			key:   "a",
			want:  []string{""},
		},
		{
			name:  "value keeps separator",
			input: "token=a=b",
			key:   "token",
			want:  []string{"a=b"},
		},
		{
			name:  "key containing separator matches by prefix",
			input: "a=b=c",
			key:   "a=b",
			want:  []string{"c"},
		},
		{
			name:  "query string delimiter",
			input: "a=1&b=2",
			key:   "b",
			opts:  []pairs.Option{pairs.WithDelimiter("&")},
			want:  []string{"2"},
		},
		{
			name:  "custom separator",
			input: "a:1,b:2",
			key:   "a",
			opts:  []pairs.Option{pairs.WithSeparator(":"), pairs.WithDelimiter(",")},
			want:  []string{"1"},
		},
		{
			name:  "internal whitespace collapsed",
			input: "msg=hello   world",
			key:   "msg",
			want:  []string{"hello world"},
		},
		{
			name:  "empty options fall back to defaults",
			input: "a=1; b=2",
			key:   "b",
			opts:  []pairs.Option{pairs.WithSeparator(""), pairs.WithDelimiter("")},
			want:  []string{"2"},
		},
		{
			name:  "no match",
			input: "a=1",
			key:   "z",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newExtractor(&bytes.Buffer{})
			got := e.Extract(tt.input, tt.key, tt.opts...)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractor_InvalidArguments(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		buf := &bytes.Buffer{}
		got := newExtractor(buf).Extract("", "a")
		assert.NotNil(t, got)
		assert.Empty(t, got)
		assert.Contains(t, buf.String(), "Parameter 'input' is not valid.")
	})

	t.Run("empty key", func(t *testing.T) {
		buf := &bytes.Buffer{}
		got := newExtractor(buf).Extract("a=1", "")
		assert.Empty(t, got)
		assert.Contains(t, buf.String(), "Parameter 'key' is not valid.")
	})

	t.Run("single space key", func(t *testing.T) {
		buf := &bytes.Buffer{}
		assert.Empty(t, newExtractor(buf).Extract("a=1", " "))
		assert.Contains(t, buf.String(), "Parameter 'key' is not valid.")
	})
}

func TestExtractor_First(t *testing.T) {
	e := newExtractor(&bytes.Buffer{})
	assert.Equal(t, "1", e.First("a=1; a=2", "a"))
	assert.Equal(t, "", e.First("a=1", "b"))
}
