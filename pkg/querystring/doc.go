// Package querystring reads, builds and propagates URL query strings.
//
// Service holds the page Location used when no explicit query string is given:
//
//	qs := querystring.New(loc, check, extractor)
//	qs.GetFrom("a=1&b=2", "b")           // []string{"2"}
//	qs.AddTo("a=1&b=2", "c", "x y")      // "a=1&b=2&c=x%20y"
//	qs.ToMapFrom("?a=1&b=2")             // map[a:1 b:2]
//	qs.AppendTo(doc, "utm_source=mail")  // rewrites outbound <a href>s
//
// Values returned by Get are raw; ToMap decodes them with DecodeURIComponent.
// EncodeURIComponent and DecodeURIComponent follow URI component rules, so spaces are
// %20 and '+' is a literal plus.
package querystring
