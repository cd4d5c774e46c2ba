package querystring_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/simplehelpers/pkg/logger"
	"github.com/dmitrymomot/simplehelpers/pkg/querystring"
	"github.com/dmitrymomot/simplehelpers/pkg/validator"
)

func newService(buf *bytes.Buffer, loc querystring.Location) *querystring.Service {
	check := validator.NewChecker(logger.New(logger.WithOutput(buf), logger.WithLevelName("debug")))
	return querystring.New(loc, check, nil)
}

func TestService_GetFrom(t *testing.T) {
	t.Parallel()
	s := newService(&bytes.Buffer{}, nil)

	tests := []struct {
		name string
		qs   string
		key  string
		want []string
	}{
		{"second key", "a=1&b=2", "b", []string{"2"}},
		{"leading question mark", "?a=1&b=2", "a", []string{"1"}},
		{"duplicates", "a=1&a=2", "a", []string{"1", "2"}},
		{"raw value", "c=x%20y", "c", []string{"x%20y"}},
		{"prefix key not matched", "ab=1", "a", []string{}},
		{"missing key", "a=1", "z", []string{}},
		{"empty query", "", "missing-key", []string{}},
		{"only question mark", "?", "a", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := s.GetFrom(tt.qs, tt.key)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Get_UsesLocation(t *testing.T) {
	s := newService(&bytes.Buffer{}, querystring.StaticLocation{Query: "?utm=mail&id=7"})
	assert.Equal(t, []string{"7"}, s.Get("id"))
	assert.Equal(t, map[string]string{"utm": "mail", "id": "7"}, s.ToMap())
	assert.Equal(t, "?utm=mail&id=7&x=1", s.Add("x", "1"))
}

func TestService_Get_InvalidKey(t *testing.T) {
	buf := &bytes.Buffer{}
	s := newService(buf, nil)
	assert.Empty(t, s.GetFrom("a=1", ""))
	assert.Contains(t, buf.String(), "Parameter 'key' is not valid.")
}

func TestService_AddTo(t *testing.T) {
	s := newService(&bytes.Buffer{}, nil)

	t.Run("appends to existing query", func(t *testing.T) {
		assert.Equal(t, "a=1&b=2&c=x%20y", s.AddTo("a=1&b=2", "c", "x y"))
	})

	t.Run("starts a query when empty", func(t *testing.T) {
		assert.Equal(t, "?c=x%20y", s.AddTo("", "c", "x y"))
	})

	t.Run("does not deduplicate", func(t *testing.T) {
		qs := s.AddTo("", "a", "1")
		qs = s.AddTo(qs, "a", "2")
		assert.Equal(t, "?a=1&a=2", qs)
	})

	t.Run("round trip through get", func(t *testing.T) {
		for _, v := range []string{"x y", "a&b", "100%", "ü"} {
			qs := s.AddTo("a=1", "k", v)
			got := s.GetFrom(qs, "k")
			require.Len(t, got, 1)
			decoded, err := querystring.DecodeURIComponent(got[0])
			require.NoError(t, err)
			assert.Equal(t, v, decoded)
		}
	})
}

func TestService_AddTo_Validation(t *testing.T) {
	t.Run("empty key aborts", func(t *testing.T) {
		buf := &bytes.Buffer{}
		assert.Equal(t, "", newService(buf, nil).AddTo("a=1", "", "v"))
		assert.Contains(t, buf.String(), "Parameter 'key' is not valid.")
	})

	t.Run("empty value aborts", func(t *testing.T) {
		buf := &bytes.Buffer{}
		assert.Equal(t, "", newService(buf, nil).AddTo("a=1", "k", ""))
		assert.Contains(t, buf.String(), "Parameter 'value' is not valid.")
	})

	t.Run("whitespace key is reported but used", func(t *testing.T) {
		buf := &bytes.Buffer{}
		got := newService(buf, nil).AddTo("a=1", "my key", "v")
		assert.Equal(t, "a=1&my key=v", got)
		assert.Contains(t, buf.String(), "Parameter 'key' is not valid.")
	})
}

func TestService_ToMapFrom(t *testing.T) {
	s := newService(&bytes.Buffer{}, nil)

	tests := []struct {
		name string
		qs   string
		want map[string]string
	}{
		{"simple", "a=1&b=2", map[string]string{"a": "1", "b": "2"}},
		{"leading question mark", "?a=1", map[string]string{"a": "1"}},
		{"decodes values", "c=x%20y", map[string]string{"c": "x y"}},
		{"raw keys", "my%20key=1", map[string]string{"my%20key": "1"}},
		{"later duplicate wins", "a=1&a=2", map[string]string{"a": "2"}},
		{"splits on first separator", "a=b=c", map[string]string{"a": "b=c"}},
		{"pair without separator", "flag&a=1", map[string]string{"flag": "", "a": "1"}},
		{"empty segments skipped", "a=1&&b=2&", map[string]string{"a": "1", "b": "2"}},
		{"malformed escape kept raw", "a=%zz", map[string]string{"a": "%zz"}},
		{"empty", "", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.ToMapFrom(tt.qs)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_ToMapFrom_RepeatedAdd(t *testing.T) {
	s := newService(&bytes.Buffer{}, nil)

	qs := s.AddTo("", "a", "first")
	qs = s.AddTo(qs, "b", "x y")
	qs = s.AddTo(qs, "a", "second")

	got := s.ToMapFrom(qs)
	assert.Equal(t, map[string]string{"a": "second", "b": "x y"}, got)
}
