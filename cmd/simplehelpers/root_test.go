package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/simplehelpers"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestClean(t *testing.T) {
	t.Run("arguments", func(t *testing.T) {
		out, _, err := run(t, "", "clean", "  hello \t  world ", " again")
		require.NoError(t, err)
		assert.Equal(t, "hello world again\n", out)
	})

	t.Run("stdin lines", func(t *testing.T) {
		out, _, err := run(t, "  a   b \n\tc\n", "clean")
		require.NoError(t, err)
		assert.Equal(t, "a b\nc\n", out)
	})
}

func TestExtract(t *testing.T) {
	out, _, err := run(t, "", "extract", "foo=bar; baz=qux", "foo")
	require.NoError(t, err)
	assert.Equal(t, "bar\n", out)

	out, _, err = run(t, "", "extract", "a:1,b:2,a:3", "a", "--separator", ":", "--delimiter", ",")
	require.NoError(t, err)
	assert.Equal(t, "1\n3\n", out)

	out, _, err = run(t, "", "extract", "foobar=1", "foo")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, _, err = run(t, "", "extract", "only-one-arg")
	assert.Error(t, err)
}

func TestQueryString(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		out, _, err := run(t, "", "qs", "get", "a", "--query", "?a=1&b=2&a=3")
		require.NoError(t, err)
		assert.Equal(t, "1\n3\n", out)
	})

	t.Run("get from url", func(t *testing.T) {
		out, _, err := run(t, "", "qs", "get", "b", "--url", "https://example.com/?a=1&b=2")
		require.NoError(t, err)
		assert.Equal(t, "2\n", out)
	})

	t.Run("add", func(t *testing.T) {
		out, _, err := run(t, "", "qs", "add", "q", "hello world", "--query", "?page=2")
		require.NoError(t, err)
		assert.Equal(t, "?page=2&q=hello%20world\n", out)
	})

	t.Run("add to empty", func(t *testing.T) {
		out, _, err := run(t, "", "qs", "add", "a", "1")
		require.NoError(t, err)
		assert.Equal(t, "?a=1\n", out)
	})

	t.Run("tojson", func(t *testing.T) {
		out, _, err := run(t, "", "qs", "tojson", "--query", "?a=1&b=hello%20world&a=2")
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":"2","b":"hello world"}`, out)
	})

	t.Run("tojson yaml", func(t *testing.T) {
		out, _, err := run(t, "", "qs", "tojson", "--query", "?b=hello%20world", "--format", "yaml")
		require.NoError(t, err)
		assert.Equal(t, "b: hello world\n", out)
	})

	t.Run("tojson unknown format", func(t *testing.T) {
		_, _, err := run(t, "", "qs", "tojson", "--query", "?a=1", "--format", "xml")
		assert.Error(t, err)
	})
}

func TestQueryStringAppendTo(t *testing.T) {
	const page = `<html><head></head><body>` +
		`<a href="/home">Home</a>` +
		`<a href="https://other.org/x?y=1#frag">Other</a>` +
		`<a href="#top">Top</a>` +
		`</body></html>`

	t.Run("exit scope", func(t *testing.T) {
		out, _, err := run(t, page, "qs", "appendto", "?ref=mail", "--url", "https://example.com/")
		require.NoError(t, err)
		assert.Contains(t, out, `href="/home"`)
		assert.Contains(t, out, `href="https://other.org/x?y=1&amp;ref=mail#frag"`)
		assert.Contains(t, out, `href="#top"`)
	})

	t.Run("all scope", func(t *testing.T) {
		out, _, err := run(t, page, "qs", "appendto", "ref=mail", "--url", "https://example.com/", "--scope", "all")
		require.NoError(t, err)
		assert.Contains(t, out, `href="https://example.com/home?ref=mail"`)
		assert.Contains(t, out, `href="#top"`)
	})

	t.Run("logs with command path", func(t *testing.T) {
		_, stderr, err := run(t, page, "qs", "appendto", "ref=mail", "--url", "https://example.com/")
		require.NoError(t, err)
		assert.Contains(t, stderr, "Querystring appended.")
		assert.Contains(t, stderr, `command="simplehelpers qs appendto"`)
	})

	t.Run("url required", func(t *testing.T) {
		_, _, err := run(t, page, "qs", "appendto", "ref=mail")
		assert.Error(t, err)
	})
}

func TestRandom(t *testing.T) {
	out, _, err := run(t, "", "random", "1")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)

	out, stderr, err := run(t, "", "random", "0")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
	assert.Contains(t, stderr, "Parameter 'max' is not valid.")

	_, _, err = run(t, "", "random", "many")
	assert.Error(t, err)
}

func TestCookieRoundTrip(t *testing.T) {
	out, _, err := run(t, "", "cookie", "roundtrip", "theme", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "set:    theme=dark;path=/\n")
	assert.Contains(t, out, "get:    dark\n")
	assert.Contains(t, out, "header: theme=dark\n")
	assert.Contains(t, out, "delete: Cookie deleted.\n")

	_, stderr, err := run(t, "", "cookie", "roundtrip", "theme", "dark", "--disabled")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cookies disabled.")
	assert.Contains(t, stderr, `command="simplehelpers cookie roundtrip"`)
}

func TestInvalidLogFormat(t *testing.T) {
	_, _, err := run(t, "", "--log-format", "xml", "clean", "x")
	assert.ErrorIs(t, err, simplehelpers.ErrInvalidConfig)
}
