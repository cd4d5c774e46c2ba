// Package simplehelpers bundles small helpers for page scripts behind one value.
//
// A Helpers value is built for a Page, which supplies the page address, its cookie
// store and its links:
//
//	page, err := simplehelpers.NewPage("https://example.com/?utm_source=mail", body)
//	if err != nil {
//		return err
//	}
//	h := simplehelpers.New(page, simplehelpers.WithLogger(log))
//
//	h.Text.Clean("  hello   world ")           // "hello world"
//	h.QueryString.Get("utm_source")            // []string{"mail"}
//	h.Cookies.Set("theme", "dark")             // "theme", nil
//	h.AppendQueryString("?ref=home")           // rewrites outbound links
//	h.Random.Int(6)                            // 1..6
//
// The sub-helpers live in their own packages under pkg/ and can be used directly:
// validator (presence checks), sanitizer (text cleanup), pairs (delimited key/value
// extraction), cookie, querystring, random and dom (an HTML-backed page).
//
// Invalid parameters never panic. Operations return a neutral result (empty string,
// empty slice, 0) and log a warning through the configured slog.Logger; operations with
// side effects also return an error.
package simplehelpers
